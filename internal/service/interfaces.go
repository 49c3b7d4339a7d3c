package service

import (
	"context"

	"github.com/mishasvintus/teams_slackbot/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// UserRepository looks users up in the Users Service.
type UserRepository interface {
	FindUsersBySlackNames(ctx context.Context, slackNames []string) ([]domain.User, error)
	FindUsersByUUIDs(ctx context.Context, uuids []string) ([]domain.User, error)
}

// TeamRepository talks to the Teams Service.
type TeamRepository interface {
	ActivateTeam(ctx context.Context, req domain.ActivateTeamRequest) (*domain.Team, error)
	DeactivateTeam(ctx context.Context, req domain.DeactivateTeamRequest) (*domain.Team, error)
	GetTeam(ctx context.Context, uuid string) (*domain.Team, error)
}

// IdentityResolver converts between slack names and user identities.
type IdentityResolver interface {
	FindUsersBySlackNames(ctx context.Context, slackNames []string) ([]domain.User, error)
	FindUsersByUUIDs(ctx context.Context, uuids []string) ([]domain.User, error)
}

// Compile-time check that UserService implements IdentityResolver.
var _ IdentityResolver = (*UserService)(nil)
