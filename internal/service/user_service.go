package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/mishasvintus/teams_slackbot/internal/domain"
	"github.com/mishasvintus/teams_slackbot/internal/logging"
)

// DefaultIdentityDelimiter matches comma-separated identities wrapped in '#',
// the form the Teams Service uses in its error messages.
var DefaultIdentityDelimiter = regexp.MustCompile(`#([^#]+)#`)

// UserService resolves slack names and identities through the Users Service.
type UserService struct {
	userRepo UserRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// FindUsersBySlackNames resolves slack names to users. The result is returned as the
// Users Service sent it; callers check counts.
func (s *UserService) FindUsersBySlackNames(ctx context.Context, slackNames []string) ([]domain.User, error) {
	log := logging.FromContext(ctx)
	log.Debug().Strs("slack_names", slackNames).Msg("Started find users by slack names")

	users, err := s.userRepo.FindUsersBySlackNames(ctx, slackNames)
	if err != nil {
		return nil, err
	}

	log.Debug().Int("count", len(users)).Msg("Finished find users by slack names")
	return users, nil
}

// FindUsersByUUIDs resolves identities to users.
func (s *UserService) FindUsersByUUIDs(ctx context.Context, uuids []string) ([]domain.User, error) {
	log := logging.FromContext(ctx)
	log.Debug().Strs("uuids", uuids).Msg("Started find users by uuids")

	users, err := s.userRepo.FindUsersByUUIDs(ctx, uuids)
	if err != nil {
		return nil, err
	}

	log.Debug().Int("count", len(users)).Msg("Finished find users by uuids")
	return users, nil
}

// ReplaceUUIDsWithSlackNames substitutes '#uuid1,uuid2#' tokens in message with slack names.
func (s *UserService) ReplaceUUIDsWithSlackNames(ctx context.Context, message string) string {
	return s.SubstituteIdentities(ctx, message, DefaultIdentityDelimiter)
}

// SubstituteIdentities replaces every match of pattern with the slack names of the
// comma-separated identities in its first capture group.
// It is best effort: on any lookup problem the message is returned unchanged.
func (s *UserService) SubstituteIdentities(ctx context.Context, message string, pattern *regexp.Regexp) string {
	if pattern == nil || pattern.NumSubexp() < 1 {
		return message
	}

	matches := pattern.FindAllStringSubmatch(message, -1)
	if len(matches) == 0 {
		return message
	}

	uuids := make([]string, 0)
	seen := make(map[string]struct{})
	for _, m := range matches {
		for _, id := range splitIdentities(m[1]) {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			uuids = append(uuids, id)
		}
	}
	if len(uuids) == 0 {
		return message
	}

	log := logging.FromContext(ctx)

	users, err := s.userRepo.FindUsersByUUIDs(ctx, uuids)
	if err != nil {
		log.Warn().Err(err).Msg("Could not resolve identities in message")
		return message
	}
	if err := assertCount(len(uuids), len(users), directoryMismatch); err != nil {
		log.Warn().Err(err).Msg("Could not resolve identities in message")
		return message
	}

	slackByUUID := make(map[string]string, len(users))
	for _, u := range users {
		slackByUUID[u.UUID] = u.Slack
	}
	for _, id := range uuids {
		if _, ok := slackByUUID[id]; !ok {
			log.Warn().Str("uuid", id).Msg("Users service did not return requested identity")
			return message
		}
	}

	return pattern.ReplaceAllStringFunc(message, func(token string) string {
		sub := pattern.FindStringSubmatch(token)
		if len(sub) < 2 {
			return token
		}
		ids := splitIdentities(sub[1])
		names := make([]string, len(ids))
		for i, id := range ids {
			names[i] = slackByUUID[id]
		}
		return strings.Join(names, ",")
	})
}

func splitIdentities(s string) []string {
	parts := strings.Split(s, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}
