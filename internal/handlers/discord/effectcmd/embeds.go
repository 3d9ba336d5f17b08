package effectcmd

import (
	"fmt"
	"slices"
	"strings"

	apperr "github.com/KirkDiggler/bedrock-effects/internal/errors"
	"github.com/KirkDiggler/bedrock-effects/internal/services/effect"
	"github.com/KirkDiggler/bedrock-effects/internal/tick"
	"github.com/bwmarrin/discordgo"
)

const (
	colorSuccess = 0x2ecc71 // Green
	colorInfo    = 0x3498db // Blue
	colorWarning = 0xf39c12 // Orange
	colorError   = 0xe74c3c // Red

	// Discord rejects field values longer than this
	maxFieldLength = 1024
)

// BuildApplyEmbed reports the outcome of an apply
func BuildApplyEmbed(entityID, definitionID string) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       "✨ Effect Applied",
		Description: fmt.Sprintf("Applied `%s` to `%s`", definitionID, entityID),
		Color:       colorSuccess,
	}
}

// BuildChargeEmbed reports a started charge, or a release when itemID is empty
func BuildChargeEmbed(entityID, itemID string) *discordgo.MessageEmbed {
	if itemID == "" {
		return &discordgo.MessageEmbed{
			Title:       "💥 Charge Released",
			Description: fmt.Sprintf("`%s` released its charge", entityID),
			Color:       colorSuccess,
		}
	}
	return &discordgo.MessageEmbed{
		Title:       "⚡ Charging",
		Description: fmt.Sprintf("`%s` is charging `%s`", entityID, itemID),
		Color:       colorInfo,
	}
}

// BuildErrorEmbed explains a failed request
func BuildErrorEmbed(action string, err error) *discordgo.MessageEmbed {
	title := "❌ " + action + " failed"
	color := colorError

	switch apperr.GetCode(err) {
	case apperr.CodeNotFound:
		title = "🔍 Not found"
		color = colorWarning
	case apperr.CodeFailedPrecondition, apperr.CodeInvalidArgument:
		title = "⚠️ " + action + " rejected"
		color = colorWarning
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: err.Error(),
		Color:       color,
	}
}

// BuildStatusEmbed lists everything running on an entity
func BuildStatusEmbed(status *effect.EntityStatus) *discordgo.MessageEmbed {
	state := "alive"
	if !status.Valid {
		state = "dead"
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("📊 %s", status.EntityID),
		Description: fmt.Sprintf("`%s` (%s) at tick %d", status.TypeID, state, status.Tick),
		Color:       colorInfo,
	}

	var custom []string
	for _, active := range status.Custom {
		custom = append(custom, fmt.Sprintf("`%s` amp %d, %s left",
			active.Effect.Type, active.Effect.Amplifier, formatTicks(active.RemainingTicks)))
	}
	embed.Fields = append(embed.Fields, field("🧪 Custom Effects", custom))

	var visual []string
	for _, defID := range sortedKeys(status.Visual.Durations) {
		visual = append(visual, fmt.Sprintf("`%s` %s", defID, formatTicks(status.Visual.Durations[defID])))
	}
	if pending := status.Visual.PendingHandles(); pending > 0 {
		visual = append(visual, fmt.Sprintf("%d scheduled emissions", pending))
	}
	embed.Fields = append(embed.Fields, field("🎆 Visuals", visual))

	var statuses []string
	for _, s := range status.StatusEffects {
		statuses = append(statuses, fmt.Sprintf("`%s` %d", s.Type, s.Amplifier))
	}
	embed.Fields = append(embed.Fields, field("💊 Status Effects", statuses))

	if status.Charging != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "⚡ Charging",
			Value: fmt.Sprintf("`%s`", status.Charging),
		})
	}

	return embed
}

// BuildDefinitionsEmbed lists the catalog
func BuildDefinitionsEmbed(ids []string) *discordgo.MessageEmbed {
	lines := make([]string, 0, len(ids))
	for _, id := range ids {
		lines = append(lines, fmt.Sprintf("`%s`", id))
	}

	return &discordgo.MessageEmbed{
		Title:       "📖 Effect Definitions",
		Description: fmt.Sprintf("%d definitions available", len(ids)),
		Color:       colorInfo,
		Fields:      []*discordgo.MessageEmbedField{field("Definitions", lines)},
	}
}

func field(name string, lines []string) *discordgo.MessageEmbedField {
	value := "None"
	if len(lines) > 0 {
		value = strings.Join(lines, "\n")
	}
	if len(value) > maxFieldLength {
		value = value[:maxFieldLength-3] + "..."
	}
	return &discordgo.MessageEmbedField{Name: name, Value: value}
}

func formatTicks(ticks int) string {
	return fmt.Sprintf("%.1fs", float64(ticks)/tick.TicksPerSecond)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
