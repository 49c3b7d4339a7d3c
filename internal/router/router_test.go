package router_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/mishasvintus/teams_slackbot/internal/domain"
	"github.com/mishasvintus/teams_slackbot/internal/handler"
	"github.com/mishasvintus/teams_slackbot/internal/handler/mocks"
	"github.com/mishasvintus/teams_slackbot/internal/logging"
	"github.com/mishasvintus/teams_slackbot/internal/router"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter(t *testing.T) (*gin.Engine, *mocks.MockTeamServiceInterface) {
	ctrl := gomock.NewController(t)
	teams := mocks.NewMockTeamServiceInterface(ctrl)
	users := mocks.NewMockUserServiceInterface(ctrl)
	return router.SetupRoutes(handler.NewTeamHandler(teams, users), handler.NewHealthHandler()), teams
}

func TestSetupRoutes_Health(t *testing.T) {
	r, _ := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	_, err := uuid.Parse(w.Header().Get(router.RequestIDHeader))
	assert.NoError(t, err)
}

func TestSetupRoutes_Command(t *testing.T) {
	r, teams := setupRouter(t)
	const requestID = "req-42"

	teams.EXPECT().Execute(gomock.Any(), domain.CommandGetTeam, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ domain.CommandKind, cmd domain.SlackCommand) ([]string, error) {
			assert.Equal(t, "alice", cmd.From)
			assert.Equal(t, "@bob", cmd.Text)
			return []string{"@alice", "@bob"}, nil
		})

	form := url.Values{"user_name": {"alice"}, "text": {"@bob"}}
	req := httptest.NewRequest(http.MethodPost, "/v1/commands/teams/get", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set(router.RequestIDHeader, requestID)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"response_type":"in_channel","text":"Active team members: @alice, @bob"}`, w.Body.String())
	assert.Equal(t, requestID, w.Header().Get(router.RequestIDHeader))
}

func TestRequestLogger_PropagatesRequestID(t *testing.T) {
	r := gin.New()
	r.Use(router.RequestLogger())

	var seen string
	r.GET("/ping", func(c *gin.Context) {
		seen = logging.RequestID(c.Request.Context())
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(router.RequestIDHeader))
}

func TestSetupRoutes_UnknownPath(t *testing.T) {
	r, _ := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/team/get", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
