// Package effectcmd implements the /effects debug subcommands
package effectcmd

import (
	"context"
	"log"

	"github.com/KirkDiggler/bedrock-effects/internal/services/effect"
	"github.com/bwmarrin/discordgo"
)

// Responder is the part of *discordgo.Session the handlers use
type Responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
}

func respond(r Responder, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) error {
	return r.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral, // Only visible to the user
		},
	})
}

type ApplyRequest struct {
	Session      Responder
	Interaction  *discordgo.InteractionCreate
	EntityID     string
	DefinitionID string
}

type ApplyHandler struct {
	service effect.Service
}

type ApplyHandlerConfig struct {
	EffectService effect.Service
}

func NewApplyHandler(cfg *ApplyHandlerConfig) *ApplyHandler {
	return &ApplyHandler{service: cfg.EffectService}
}

// Handle applies a definition and reports the outcome
func (h *ApplyHandler) Handle(ctx context.Context, req *ApplyRequest) error {
	embed := BuildApplyEmbed(req.EntityID, req.DefinitionID)
	if err := h.service.ApplyByID(ctx, req.EntityID, req.DefinitionID); err != nil {
		log.Printf("Effects: Apply %s to %s failed: %v", req.DefinitionID, req.EntityID, err)
		embed = BuildErrorEmbed("Apply", err)
	}
	return respond(req.Session, req.Interaction, embed)
}

type StatusRequest struct {
	Session     Responder
	Interaction *discordgo.InteractionCreate
	EntityID    string
}

type StatusHandler struct {
	service effect.Service
}

type StatusHandlerConfig struct {
	EffectService effect.Service
}

func NewStatusHandler(cfg *StatusHandlerConfig) *StatusHandler {
	return &StatusHandler{service: cfg.EffectService}
}

// Handle shows what is running on an entity
func (h *StatusHandler) Handle(ctx context.Context, req *StatusRequest) error {
	status, err := h.service.Status(ctx, req.EntityID)
	if err != nil {
		return respond(req.Session, req.Interaction, BuildErrorEmbed("Status", err))
	}
	return respond(req.Session, req.Interaction, BuildStatusEmbed(status))
}

type DefinitionsRequest struct {
	Session     Responder
	Interaction *discordgo.InteractionCreate
}

type DefinitionsHandler struct {
	service effect.Service
}

type DefinitionsHandlerConfig struct {
	EffectService effect.Service
}

func NewDefinitionsHandler(cfg *DefinitionsHandlerConfig) *DefinitionsHandler {
	return &DefinitionsHandler{service: cfg.EffectService}
}

func (h *DefinitionsHandler) Handle(req *DefinitionsRequest) error {
	return respond(req.Session, req.Interaction, BuildDefinitionsEmbed(h.service.Definitions()))
}

type ChargeRequest struct {
	Session     Responder
	Interaction *discordgo.InteractionCreate
	EntityID    string
	// ItemID starts a charge; empty releases the current one
	ItemID string
}

type ChargeHandler struct {
	service effect.Service
}

type ChargeHandlerConfig struct {
	EffectService effect.Service
}

func NewChargeHandler(cfg *ChargeHandlerConfig) *ChargeHandler {
	return &ChargeHandler{service: cfg.EffectService}
}

func (h *ChargeHandler) Handle(ctx context.Context, req *ChargeRequest) error {
	if req.ItemID == "" {
		if err := h.service.ReleaseCharge(ctx, req.EntityID); err != nil {
			return respond(req.Session, req.Interaction, BuildErrorEmbed("Release", err))
		}
		return respond(req.Session, req.Interaction, BuildChargeEmbed(req.EntityID, ""))
	}

	if err := h.service.StartCharge(ctx, req.EntityID, req.ItemID); err != nil {
		return respond(req.Session, req.Interaction, BuildErrorEmbed("Charge", err))
	}
	return respond(req.Session, req.Interaction, BuildChargeEmbed(req.EntityID, req.ItemID))
}
