package team

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/mishasvintus/teams_slackbot/internal/domain"
	"github.com/mishasvintus/teams_slackbot/internal/logging"
	"github.com/mishasvintus/teams_slackbot/internal/repository"
)

// Config holds Teams Service endpoints. An empty path disables the operation.
type Config struct {
	BaseURL        string
	APIVersion     string
	ActivatePath   string
	DeactivatePath string
	GetPath        string
}

// Repository talks to the Teams Service.
type Repository struct {
	doer repository.Doer
	cfg  Config
}

// New creates a Teams Service client.
func New(doer repository.Doer, cfg Config) *Repository {
	return &Repository{doer: doer, cfg: cfg}
}

// ActivateTeam creates a team from the request members.
func (r *Repository) ActivateTeam(ctx context.Context, req domain.ActivateTeamRequest) (*domain.Team, error) {
	if r.cfg.ActivatePath == "" {
		return nil, fmt.Errorf("activate team: %w", domain.ErrNotImplemented)
	}
	endpoint := repository.JoinURL(r.cfg.BaseURL, r.cfg.APIVersion, r.cfg.ActivatePath)

	team, err := r.exchange(ctx, http.MethodPost, endpoint, req)
	if err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info().Str("team_id", team.ID).Msg("Team activated")
	return team, nil
}

// DeactivateTeam deactivates the team the user belongs to.
func (r *Repository) DeactivateTeam(ctx context.Context, req domain.DeactivateTeamRequest) (*domain.Team, error) {
	if r.cfg.DeactivatePath == "" {
		return nil, fmt.Errorf("deactivate team: %w", domain.ErrNotImplemented)
	}
	endpoint := repository.JoinURL(r.cfg.BaseURL, r.cfg.APIVersion, r.cfg.DeactivatePath)

	team, err := r.exchange(ctx, http.MethodPut, endpoint, req)
	if err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info().Str("team_id", team.ID).Msg("Team deactivated")
	return team, nil
}

// GetTeam returns the active team of the user.
func (r *Repository) GetTeam(ctx context.Context, uuid string) (*domain.Team, error) {
	if r.cfg.GetPath == "" {
		return nil, fmt.Errorf("get team: %w", domain.ErrNotImplemented)
	}
	endpoint := repository.JoinURL(r.cfg.BaseURL, r.cfg.APIVersion, r.cfg.GetPath, url.PathEscape(uuid))

	team, err := r.exchange(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info().Str("team_id", team.ID).Msg("Team got")
	return team, nil
}

func (r *Repository) exchange(ctx context.Context, method, endpoint string, body any) (*domain.Team, error) {
	var team domain.Team
	if err := repository.DoJSON(ctx, r.doer, method, endpoint, body, &team); err != nil {
		exchangeErr := &domain.TeamExchangeError{Err: err}
		var apiErr *domain.APIError
		if errors.As(err, &apiErr) {
			exchangeErr.API = apiErr
			logging.FromContext(ctx).Warn().Int("status", apiErr.HTTPStatus).
				Str("code", apiErr.InternalErrorCode).Msg("Teams service returned an error")
		}
		return nil, exchangeErr
	}
	return &team, nil
}
