package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mishasvintus/teams_slackbot/internal/domain"
	"github.com/mishasvintus/teams_slackbot/internal/logging"
)

// TeamHandler handles team slash commands.
type TeamHandler struct {
	teamService TeamServiceInterface
	userService UserServiceInterface
}

// NewTeamHandler creates a new team handler.
func NewTeamHandler(teamService TeamServiceInterface, userService UserServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
		userService: userService,
	}
}

// HandleCommand handles POST /v1/commands/teams/:command.
func (h *TeamHandler) HandleCommand(c *gin.Context) {
	var req SlashCommandRequest

	if err := c.ShouldBind(&req); err != nil {
		BadRequest(c, "invalid slash command")
		return
	}

	ctx := c.Request.Context()
	log := logging.FromContext(ctx)
	log.Debug().Str("command", c.Param("command")).Str("user_name", req.UserName).
		Str("text", req.Text).Msg("Received slash command")

	kind, err := domain.NewCommandKind(c.Param("command"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	slackNames, err := h.teamService.Execute(ctx, kind, domain.SlackCommand{
		From: req.UserName,
		Text: req.Text,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}

	InChannel(c, successText(kind, slackNames))
}

func (h *TeamHandler) respondError(c *gin.Context, err error) {
	ctx := c.Request.Context()
	log := logging.FromContext(ctx)

	message := domain.UserMessage(err)
	switch {
	case errors.Is(err, domain.ErrNotImplemented):
		log.Warn().Err(err).Msg("Command is not implemented")
		message = fmt.Sprintf("Sorry, this command is not supported: %s", err)
	case errors.Is(err, domain.ErrMalformedCommand):
		log.Warn().Err(err).Msg("Malformed command")
	case errors.Is(err, domain.ErrTeamExchange):
		log.Error().Err(err).Msg("Teams service exchange failed")
		message = h.userService.ReplaceUUIDsWithSlackNames(ctx, message)
	default:
		log.Error().Err(err).Msg("Command failed")
	}

	Ephemeral(c, message)
}

func successText(kind domain.CommandKind, slackNames []string) string {
	members := strings.Join(slackNames, ", ")
	switch kind {
	case domain.CommandActivate:
		return "Thanks, new team activated: " + members
	case domain.CommandDeactivate:
		return "Thanks, team deactivated: " + members
	default:
		return "Active team members: " + members
	}
}
