package user

import (
	"context"
	"errors"
	"net/http"

	"github.com/mishasvintus/teams_slackbot/internal/domain"
	"github.com/mishasvintus/teams_slackbot/internal/repository"
)

// Config holds Users Service endpoints.
type Config struct {
	BaseURL          string
	BySlackNamesPath string
	ByUUIDsPath      string
}

// Repository looks users up in the Users Service.
type Repository struct {
	doer repository.Doer
	cfg  Config
}

// New creates a Users Service client.
func New(doer repository.Doer, cfg Config) *Repository {
	return &Repository{doer: doer, cfg: cfg}
}

type slackNamesRequest struct {
	SlackNames []string `json:"slackNames"`
}

type uuidsRequest struct {
	UUIDs []string `json:"uuids"`
}

// FindUsersBySlackNames resolves slack names in one batch call.
func (r *Repository) FindUsersBySlackNames(ctx context.Context, slackNames []string) ([]domain.User, error) {
	endpoint := repository.JoinURL(r.cfg.BaseURL, r.cfg.BySlackNamesPath)
	return r.find(ctx, endpoint, slackNamesRequest{SlackNames: slackNames})
}

// FindUsersByUUIDs resolves identities in one batch call.
func (r *Repository) FindUsersByUUIDs(ctx context.Context, uuids []string) ([]domain.User, error) {
	endpoint := repository.JoinURL(r.cfg.BaseURL, r.cfg.ByUUIDsPath)
	return r.find(ctx, endpoint, uuidsRequest{UUIDs: uuids})
}

func (r *Repository) find(ctx context.Context, endpoint string, body any) ([]domain.User, error) {
	users := make([]domain.User, 0)
	if err := repository.DoJSON(ctx, r.doer, http.MethodPost, endpoint, body, &users); err != nil {
		exchangeErr := &domain.DirectoryExchangeError{Err: err}
		var apiErr *domain.APIError
		if errors.As(err, &apiErr) {
			exchangeErr.API = apiErr
		}
		return nil, exchangeErr
	}
	return users, nil
}
