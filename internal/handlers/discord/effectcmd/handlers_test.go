package effectcmd

import (
	"context"
	"testing"

	apperr "github.com/KirkDiggler/bedrock-effects/internal/errors"
	"github.com/KirkDiggler/bedrock-effects/internal/services/effect"
	mockeffect "github.com/KirkDiggler/bedrock-effects/internal/services/effect/mock"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type recordingResponder struct {
	responses []*discordgo.InteractionResponse
	err       error
}

func (r *recordingResponder) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	r.responses = append(r.responses, resp)
	return r.err
}

func (r *recordingResponder) lastEmbed() *discordgo.MessageEmbed {
	resp := r.responses[len(r.responses)-1]
	return resp.Data.Embeds[0]
}

type HandlersTestSuite struct {
	suite.Suite
	ctx         context.Context
	ctrl        *gomock.Controller
	service     *mockeffect.MockService
	responder   *recordingResponder
	interaction *discordgo.InteractionCreate
}

func (s *HandlersTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.service = mockeffect.NewMockService(s.ctrl)
	s.responder = &recordingResponder{}
	s.interaction = &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{ID: "interaction-1"}}
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (s *HandlersTestSuite) TestApply() {
	s.service.EXPECT().ApplyByID(s.ctx, "entity-0001", "frost_walker").Return(nil)

	err := NewApplyHandler(&ApplyHandlerConfig{EffectService: s.service}).Handle(s.ctx, &ApplyRequest{
		Session:      s.responder,
		Interaction:  s.interaction,
		EntityID:     "entity-0001",
		DefinitionID: "frost_walker",
	})

	s.Require().NoError(err)
	resp := s.responder.responses[0]
	s.Equal(discordgo.MessageFlagsEphemeral, resp.Data.Flags)
	s.Equal(colorSuccess, s.responder.lastEmbed().Color)
}

func (s *HandlersTestSuite) TestApplyFailureIsReported() {
	s.service.EXPECT().ApplyByID(s.ctx, "entity-0001", "missing").
		Return(apperr.NotFoundf("definition missing not found"))

	err := NewApplyHandler(&ApplyHandlerConfig{EffectService: s.service}).Handle(s.ctx, &ApplyRequest{
		Session:      s.responder,
		Interaction:  s.interaction,
		EntityID:     "entity-0001",
		DefinitionID: "missing",
	})

	s.Require().NoError(err)
	s.Equal(colorWarning, s.responder.lastEmbed().Color)
	s.Contains(s.responder.lastEmbed().Description, "definition missing not found")
}

func (s *HandlersTestSuite) TestStatus() {
	s.service.EXPECT().Status(s.ctx, "entity-0001").Return(&effect.EntityStatus{
		EntityID: "entity-0001",
		TypeID:   "minecraft:player",
		Valid:    true,
	}, nil)

	err := NewStatusHandler(&StatusHandlerConfig{EffectService: s.service}).Handle(s.ctx, &StatusRequest{
		Session:     s.responder,
		Interaction: s.interaction,
		EntityID:    "entity-0001",
	})

	s.Require().NoError(err)
	s.Equal("📊 entity-0001", s.responder.lastEmbed().Title)
}

func (s *HandlersTestSuite) TestStatusError() {
	s.service.EXPECT().Status(s.ctx, "entity-0404").Return(nil, apperr.NotFoundf("entity entity-0404 not found"))

	err := NewStatusHandler(&StatusHandlerConfig{EffectService: s.service}).Handle(s.ctx, &StatusRequest{
		Session:     s.responder,
		Interaction: s.interaction,
		EntityID:    "entity-0404",
	})

	s.Require().NoError(err)
	s.Equal("🔍 Not found", s.responder.lastEmbed().Title)
}

func (s *HandlersTestSuite) TestDefinitions() {
	s.service.EXPECT().Definitions().Return([]string{"fire", "frost_walker"})

	err := NewDefinitionsHandler(&DefinitionsHandlerConfig{EffectService: s.service}).Handle(&DefinitionsRequest{
		Session:     s.responder,
		Interaction: s.interaction,
	})

	s.Require().NoError(err)
	s.Equal("2 definitions available", s.responder.lastEmbed().Description)
}

func (s *HandlersTestSuite) TestChargeAndRelease() {
	handler := NewChargeHandler(&ChargeHandlerConfig{EffectService: s.service})

	s.service.EXPECT().StartCharge(s.ctx, "entity-0001", "storm_staff").Return(nil)
	s.Require().NoError(handler.Handle(s.ctx, &ChargeRequest{
		Session:     s.responder,
		Interaction: s.interaction,
		EntityID:    "entity-0001",
		ItemID:      "storm_staff",
	}))
	s.Equal("⚡ Charging", s.responder.lastEmbed().Title)

	s.service.EXPECT().ReleaseCharge(s.ctx, "entity-0001").Return(apperr.FailedPrecondition("entity is not charging"))
	s.Require().NoError(handler.Handle(s.ctx, &ChargeRequest{
		Session:     s.responder,
		Interaction: s.interaction,
		EntityID:    "entity-0001",
	}))
	s.Equal("⚠️ Release rejected", s.responder.lastEmbed().Title)
}
