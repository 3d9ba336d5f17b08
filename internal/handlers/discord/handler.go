package discord

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/KirkDiggler/bedrock-effects/internal/handlers/discord/effectcmd"
	"github.com/KirkDiggler/bedrock-effects/internal/services"
	"github.com/bwmarrin/discordgo"
)

const (
	commandName = "effects"

	// Discord caps option choices at 25
	maxChoices = 25

	requestTimeout = 5 * time.Second
)

// Handler handles all Discord interactions
type Handler struct {
	ServiceProvider    *services.Provider
	applyHandler       *effectcmd.ApplyHandler
	statusHandler      *effectcmd.StatusHandler
	definitionsHandler *effectcmd.DefinitionsHandler
	chargeHandler      *effectcmd.ChargeHandler
}

// HandlerConfig holds configuration for the Discord handler
type HandlerConfig struct {
	ServiceProvider *services.Provider
}

// NewHandler creates a new Discord handler
func NewHandler(cfg *HandlerConfig) *Handler {
	svc := cfg.ServiceProvider.EffectService
	return &Handler{
		ServiceProvider: cfg.ServiceProvider,
		applyHandler: effectcmd.NewApplyHandler(&effectcmd.ApplyHandlerConfig{
			EffectService: svc,
		}),
		statusHandler: effectcmd.NewStatusHandler(&effectcmd.StatusHandlerConfig{
			EffectService: svc,
		}),
		definitionsHandler: effectcmd.NewDefinitionsHandler(&effectcmd.DefinitionsHandlerConfig{
			EffectService: svc,
		}),
		chargeHandler: effectcmd.NewChargeHandler(&effectcmd.ChargeHandlerConfig{
			EffectService: svc,
		}),
	}
}

// Commands builds the /effects command. Definition ids become option
// choices while they fit.
func Commands(definitionIDs, chargeItemIDs []string) []*discordgo.ApplicationCommand {
	entityOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "entity",
		Description: "Entity id",
		Required:    true,
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        commandName,
			Description: "Inspect and drive the effect engine",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Name:        "apply",
					Description: "Apply an effect definition to an entity",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						entityOption,
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "definition",
							Description: "Definition id",
							Required:    true,
							Choices:     choices(definitionIDs),
						},
					},
				},
				{
					Name:        "status",
					Description: "Show the effects running on an entity",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options:     []*discordgo.ApplicationCommandOption{entityOption},
				},
				{
					Name:        "definitions",
					Description: "List the effect definitions",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
				},
				{
					Name:        "charge",
					Description: "Start charging an item",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options: []*discordgo.ApplicationCommandOption{
						entityOption,
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "item",
							Description: "Charge item id",
							Required:    true,
							Choices:     choices(chargeItemIDs),
						},
					},
				},
				{
					Name:        "release",
					Description: "Release the current charge",
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Options:     []*discordgo.ApplicationCommandOption{entityOption},
				},
			},
		},
	}
}

func choices(ids []string) []*discordgo.ApplicationCommandOptionChoice {
	if len(ids) == 0 || len(ids) > maxChoices {
		return nil
	}
	out := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(ids))
	for _, id := range ids {
		out = append(out, &discordgo.ApplicationCommandOptionChoice{Name: id, Value: id})
	}
	return out
}

// RegisterCommands registers slash commands with Discord
func (h *Handler) RegisterCommands(s *discordgo.Session, guildID string) error {
	catalog := h.ServiceProvider.Catalog
	for _, cmd := range Commands(catalog.IDs(), catalog.ChargeItemIDs()) {
		_, err := s.ApplicationCommandCreate(s.State.User.ID, guildID, cmd)
		if err != nil {
			return fmt.Errorf("failed to create command %s: %w", cmd.Name, err)
		}
		log.Printf("Registered command: %s", cmd.Name)
	}

	return nil
}

// HandleInteraction handles all Discord interactions
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	if err := h.handleCommand(s, i); err != nil {
		log.Printf("Error handling /%s command: %v", commandName, err)
	}
}

func (h *Handler) handleCommand(s effectcmd.Responder, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	if data.Name != commandName || len(data.Options) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	sub := data.Options[0]
	opts := optionMap(sub.Options)

	switch sub.Name {
	case "apply":
		return h.applyHandler.Handle(ctx, &effectcmd.ApplyRequest{
			Session:      s,
			Interaction:  i,
			EntityID:     opts["entity"],
			DefinitionID: opts["definition"],
		})
	case "status":
		return h.statusHandler.Handle(ctx, &effectcmd.StatusRequest{
			Session:     s,
			Interaction: i,
			EntityID:    opts["entity"],
		})
	case "definitions":
		return h.definitionsHandler.Handle(&effectcmd.DefinitionsRequest{
			Session:     s,
			Interaction: i,
		})
	case "charge":
		return h.chargeHandler.Handle(ctx, &effectcmd.ChargeRequest{
			Session:     s,
			Interaction: i,
			EntityID:    opts["entity"],
			ItemID:      opts["item"],
		})
	case "release":
		return h.chargeHandler.Handle(ctx, &effectcmd.ChargeRequest{
			Session:     s,
			Interaction: i,
			EntityID:    opts["entity"],
		})
	}

	return fmt.Errorf("unknown subcommand %s", sub.Name)
}

func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]string {
	out := make(map[string]string, len(options))
	for _, opt := range options {
		if opt.Type == discordgo.ApplicationCommandOptionString {
			out[opt.Name] = opt.StringValue()
		}
	}
	return out
}
