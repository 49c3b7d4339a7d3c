package handler

import (
	"context"

	"github.com/mishasvintus/teams_slackbot/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// TeamServiceInterface defines the interface for team commands.
type TeamServiceInterface interface {
	Execute(ctx context.Context, kind domain.CommandKind, cmd domain.SlackCommand) ([]string, error)
}

// UserServiceInterface defines the interface for presenting identities to slack users.
type UserServiceInterface interface {
	ReplaceUUIDsWithSlackNames(ctx context.Context, message string) string
}
