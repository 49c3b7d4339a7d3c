package service_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mishasvintus/teams_slackbot/internal/domain"
	"github.com/mishasvintus/teams_slackbot/internal/service"
	"github.com/mishasvintus/teams_slackbot/internal/service/mocks"
)

func setupUserService(t *testing.T) (*service.UserService, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUserRepository(ctrl)
	return service.NewUserService(repo), repo
}

func TestUserService_FindUsers(t *testing.T) {
	t.Run("find by slack names forwards repository result", func(t *testing.T) {
		svc, repo := setupUserService(t)
		ctx := context.Background()
		expected := []domain.User{{UUID: "uuid1", Slack: "@user11"}, {UUID: "uuid2", Slack: "user2"}}

		repo.EXPECT().FindUsersBySlackNames(ctx, []string{"@user11", "@user22"}).Return(expected, nil)

		got, err := svc.FindUsersBySlackNames(ctx, []string{"@user11", "@user22"})
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	})

	t.Run("find by uuids forwards repository result", func(t *testing.T) {
		svc, repo := setupUserService(t)
		ctx := context.Background()
		expected := []domain.User{{UUID: "uuid1", Slack: "@user11"}}

		repo.EXPECT().FindUsersByUUIDs(ctx, []string{"uuid1", "uuid2"}).Return(expected, nil)

		got, err := svc.FindUsersByUUIDs(ctx, []string{"uuid1", "uuid2"})
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	})

	t.Run("repository error is returned unchanged", func(t *testing.T) {
		svc, repo := setupUserService(t)
		ctx := context.Background()
		exchangeErr := &domain.DirectoryExchangeError{Err: errors.New("connection reset")}

		repo.EXPECT().FindUsersByUUIDs(ctx, gomock.Any()).Return(nil, exchangeErr)

		_, err := svc.FindUsersByUUIDs(ctx, []string{"uuid1"})
		assert.Same(t, exchangeErr, err)
	})
}

func TestUserService_RoundTrip(t *testing.T) {
	directory := []domain.User{
		{UUID: "u1", Slack: "@alice"},
		{UUID: "u2", Slack: "@bob"},
		{UUID: "u3", Slack: "@carol"},
	}
	bySlack := map[string]domain.User{}
	byUUID := map[string]domain.User{}
	for _, u := range directory {
		bySlack[u.Slack] = u
		byUUID[u.UUID] = u
	}

	svc, repo := setupUserService(t)
	ctx := context.Background()

	repo.EXPECT().FindUsersBySlackNames(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, names []string) ([]domain.User, error) {
			out := make([]domain.User, 0, len(names))
			for i := len(names) - 1; i >= 0; i-- {
				out = append(out, bySlack[names[i]])
			}
			return out, nil
		})
	repo.EXPECT().FindUsersByUUIDs(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, ids []string) ([]domain.User, error) {
			out := make([]domain.User, 0, len(ids))
			for _, id := range ids {
				out = append(out, byUUID[id])
			}
			return out, nil
		})

	handles := []string{"@carol", "@alice", "@bob"}

	users, err := svc.FindUsersBySlackNames(ctx, handles)
	require.NoError(t, err)
	require.Len(t, users, len(handles))

	back, err := svc.FindUsersByUUIDs(ctx, domain.UUIDs(users))
	require.NoError(t, err)
	assert.ElementsMatch(t, handles, domain.SlackNames(back))
}

func TestUserService_ReplaceUUIDsWithSlackNames(t *testing.T) {
	users := []domain.User{
		{UUID: "uuid1", Slack: "@slack1"},
		{UUID: "uuid2", Slack: "@slack2"},
		{UUID: "uuid3", Slack: "@slack3"},
		{UUID: "uuid4", Slack: "@slack4"},
	}

	tests := []struct {
		name      string
		message   string
		lookup    []string
		found     []domain.User
		lookupErr error
		expected  string
	}{
		{
			name:     "success - replaces delimited identities",
			message:  "User(s) '#uuid1,uuid2,uuid3,uuid4#' exist(s) in another teams",
			lookup:   []string{"uuid1", "uuid2", "uuid3", "uuid4"},
			found:    users,
			expected: "User(s) '@slack1,@slack2,@slack3,@slack4' exist(s) in another teams",
		},
		{
			name:     "success - several tokens share one lookup",
			message:  "#uuid2# cannot join, #uuid1, uuid2# already active",
			lookup:   []string{"uuid2", "uuid1"},
			found:    []domain.User{users[0], users[1]},
			expected: "@slack2 cannot join, @slack1,@slack2 already active",
		},
		{
			name:     "unchanged - no delimited identities",
			message:  "Teams service is unavailable",
			expected: "Teams service is unavailable",
		},
		{
			name:     "unchanged - users service returns different count",
			message:  "User(s) '#uuid1,uuid2#' exist(s) in another teams",
			lookup:   []string{"uuid1", "uuid2"},
			found:    users[:1],
			expected: "User(s) '#uuid1,uuid2#' exist(s) in another teams",
		},
		{
			name:     "unchanged - users service answers for other identities",
			message:  "User(s) '#uuid1,uuid2#' exist(s) in another teams",
			lookup:   []string{"uuid1", "uuid2"},
			found:    []domain.User{users[2], users[3]},
			expected: "User(s) '#uuid1,uuid2#' exist(s) in another teams",
		},
		{
			name:      "unchanged - users service fails",
			message:   "User(s) '#uuid1#' exist(s) in another teams",
			lookup:    []string{"uuid1"},
			lookupErr: &domain.DirectoryExchangeError{Err: errors.New("down")},
			expected:  "User(s) '#uuid1#' exist(s) in another teams",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := setupUserService(t)
			ctx := context.Background()

			if tt.lookup != nil {
				repo.EXPECT().FindUsersByUUIDs(ctx, tt.lookup).Return(tt.found, tt.lookupErr)
			}

			assert.Equal(t, tt.expected, svc.ReplaceUUIDsWithSlackNames(ctx, tt.message))
		})
	}
}

func TestUserService_SubstituteIdentities_CustomPattern(t *testing.T) {
	svc, repo := setupUserService(t)
	ctx := context.Background()

	repo.EXPECT().FindUsersByUUIDs(ctx, []string{"uuid7"}).
		Return([]domain.User{{UUID: "uuid7", Slack: "@slack7"}}, nil)

	got := svc.SubstituteIdentities(ctx, "member [[uuid7]] is busy", regexp.MustCompile(`\[\[([^\]]+)\]\]`))
	assert.Equal(t, "member @slack7 is busy", got)

	assert.Equal(t, "no group", svc.SubstituteIdentities(ctx, "no group", regexp.MustCompile(`#`)))
	assert.Equal(t, "nil pattern", svc.SubstituteIdentities(ctx, "nil pattern", nil))
}
