package service

import (
	"context"
	"fmt"

	"github.com/mishasvintus/teams_slackbot/internal/domain"
	"github.com/mishasvintus/teams_slackbot/internal/logging"
)

// TeamService handles team commands: it validates mentions, talks to the Teams
// Service by identity and reports results by slack name.
type TeamService struct {
	teamRepo TeamRepository
	users    IdentityResolver
}

// NewTeamService creates a new team service.
func NewTeamService(teamRepo TeamRepository, users IdentityResolver) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		users:    users,
	}
}

// Execute runs the command of the given kind and returns slack names of the team members.
func (s *TeamService) Execute(ctx context.Context, kind domain.CommandKind, cmd domain.SlackCommand) ([]string, error) {
	switch kind {
	case domain.CommandActivate:
		_, slackNames, err := s.activate(ctx, cmd)
		return slackNames, err
	case domain.CommandDeactivate:
		return s.DeactivateTeam(ctx, cmd)
	case domain.CommandGetTeam:
		return s.GetTeam(ctx, cmd)
	default:
		return nil, fmt.Errorf("command %q: %w", kind, domain.ErrNotImplemented)
	}
}

// ActivateTeam activates a team of the requester and the users mentioned in the command.
//
// The requester joins implicitly when they mention the other three members. When the
// requester and the mentions do not form a team of exactly TeamSize, the requester is
// dropped, so mentioning four other users activates a team without the requester.
func (s *TeamService) ActivateTeam(ctx context.Context, cmd domain.SlackCommand) (*domain.Team, error) {
	team, _, err := s.activate(ctx, cmd)
	return team, err
}

func (s *TeamService) activate(ctx context.Context, cmd domain.SlackCommand) (*domain.Team, []string, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("from", cmd.From).Str("text", cmd.Text).Msg("Started activate team")

	from := domain.NormalizeSlackName(cmd.From)
	mentions := domain.ParseMentions(cmd.Text)

	slackNames := make([]string, 0, len(mentions)+1)
	if from != "" {
		slackNames = append(slackNames, from)
	}
	for _, m := range mentions {
		if m != from {
			slackNames = append(slackNames, m)
		}
	}

	if len(slackNames) == 0 {
		return nil, nil, errNoSlackNames(cmd.Text)
	}

	users, err := s.users.FindUsersBySlackNames(ctx, slackNames)
	if err != nil {
		return nil, nil, err
	}
	bySlack, err := indexUsers(slackNames, users, func(u domain.User) string { return u.Slack })
	if err != nil {
		return nil, nil, err
	}

	requester := bySlack[from]
	memberUsers := make([]domain.User, 0, len(slackNames))
	if from != "" && !contains(mentions, from) {
		memberUsers = append(memberUsers, requester)
	}
	for _, m := range mentions {
		memberUsers = append(memberUsers, bySlack[m])
	}

	found := len(mentions)
	if len(memberUsers) != domain.TeamSize {
		memberUsers = withoutUser(memberUsers, requester.UUID)
	}
	if len(memberUsers) == 0 {
		log.Warn().Str("text", cmd.Text).Msg("No members found in command")
		return nil, nil, errNoSlackNames(cmd.Text)
	}
	if len(memberUsers) != domain.TeamSize {
		log.Warn().Int("found", found).Str("text", cmd.Text).Msg("Members count does not match team size")
		return nil, nil, errWrongTeamSize(found, cmd.Text)
	}

	members := domain.UUIDs(memberUsers)
	team, err := s.teamRepo.ActivateTeam(ctx, domain.ActivateTeamRequest{From: requester.UUID, Members: members})
	if err != nil {
		return nil, nil, err
	}
	if team == nil {
		return nil, nil, &domain.TeamExchangeError{Message: "Teams Service returned an empty team"}
	}
	if err := sameMembers(members, team.Members); err != nil {
		log.Warn().Strs("sent", members).Strs("received", team.Members).Msg("Team members mismatch")
		return nil, nil, err
	}

	log.Debug().Str("team_id", team.ID).Msg("Finished activate team")
	return team, domain.SlackNames(memberUsers), nil
}

// DeactivateTeam deactivates the team of the single user mentioned in the command
// and returns slack names of its members.
func (s *TeamService) DeactivateTeam(ctx context.Context, cmd domain.SlackCommand) ([]string, error) {
	return s.singleUserTeam(ctx, cmd, "deactivate team", func(ctx context.Context, uuid string) (*domain.Team, error) {
		return s.teamRepo.DeactivateTeam(ctx, domain.DeactivateTeamRequest{UUID: uuid})
	})
}

// GetTeam returns slack names of the members of the single user's active team.
func (s *TeamService) GetTeam(ctx context.Context, cmd domain.SlackCommand) ([]string, error) {
	return s.singleUserTeam(ctx, cmd, "get team", s.teamRepo.GetTeam)
}

func (s *TeamService) singleUserTeam(
	ctx context.Context,
	cmd domain.SlackCommand,
	op string,
	call func(ctx context.Context, uuid string) (*domain.Team, error),
) ([]string, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("text", cmd.Text).Msgf("Started %s", op)

	mentions := domain.ParseMentions(cmd.Text)
	if len(mentions) != 1 {
		log.Warn().Int("found", len(mentions)).Str("text", cmd.Text).Msg("Expected one slack name")
		return nil, errExpectOneSlackName(len(mentions), cmd.Text)
	}

	users, err := s.users.FindUsersBySlackNames(ctx, mentions)
	if err != nil {
		return nil, err
	}
	if err := assertCount(len(mentions), len(users), directoryMismatch); err != nil {
		return nil, err
	}

	team, err := call(ctx, users[0].UUID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, &domain.TeamExchangeError{Message: "Teams Service returned an empty team"}
	}

	members, err := s.users.FindUsersByUUIDs(ctx, team.Members)
	if err != nil {
		return nil, err
	}
	byUUID, err := indexUsers(team.Members, members, func(u domain.User) string { return u.UUID })
	if err != nil {
		return nil, err
	}

	ordered := make([]domain.User, len(team.Members))
	for i, id := range team.Members {
		ordered[i] = byUUID[id]
	}

	log.Debug().Str("team_id", team.ID).Msgf("Finished %s", op)
	return domain.SlackNames(ordered), nil
}

// indexUsers maps requested keys to users, failing when the Users Service answered
// with a different count or without one of the requested keys.
func indexUsers(requested []string, users []domain.User, key func(domain.User) string) (map[string]domain.User, error) {
	if err := assertCount(len(requested), len(users), directoryMismatch); err != nil {
		return nil, err
	}
	index := make(map[string]domain.User, len(users))
	for _, u := range users {
		index[key(u)] = u
	}
	matched := 0
	for _, k := range requested {
		if _, ok := index[k]; ok {
			matched++
		}
	}
	if err := assertCount(len(requested), matched, directoryMismatch); err != nil {
		return nil, err
	}
	return index, nil
}

// sameMembers checks that the Teams Service echoed exactly the submitted members.
func sameMembers(sent, received []string) error {
	if err := assertCount(len(sent), len(received), membersMismatch); err != nil {
		return err
	}
	got := make(map[string]struct{}, len(received))
	for _, id := range received {
		got[id] = struct{}{}
	}
	if len(got) != len(received) {
		return membersMismatch(len(sent), len(got))
	}
	for _, id := range sent {
		if _, ok := got[id]; !ok {
			return membersMismatch(len(sent), len(received))
		}
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func withoutUser(users []domain.User, uuid string) []domain.User {
	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		if u.UUID != uuid {
			out = append(out, u)
		}
	}
	return out
}
