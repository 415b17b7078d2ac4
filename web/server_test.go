/* server_test.go
 * Contains unit tests for the web handlers
 * Authors: Zachary Bower
 */

package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teammatch-bot/api/api"
	"teammatch-bot/api/shared"
)

func newTestServer() (*Server, *api.API) {
	a := api.NewTestAPI(api.NewMockStore(), api.NewMockNotifier())
	return &Server{api: a}, a
}

// region Config tests

func TestConfig_DefaultValues(t *testing.T) {
	cfg := Config{
		Addr: ":8080",
		API:  nil,
	}

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Nil(t, cfg.API)
}

// endregion

// region health tests

func TestHealthHandler_ReportsPoolCounts(t *testing.T) {
	s, a := newTestServer()
	a.State.AddMember(shared.PendingMember{
		UserID: "m1", Username: "alice", Track: "django",
		Rating: 14, University: "Cairo University", Department: shared.DepartmentCS,
		RegisteredAt: time.Now(),
	})
	a.State.AddLeader(shared.PendingLeader{
		UserID: "l1", Username: "bob", Track: "django", TeamName: "code crushers",
		University: "Cairo University", Department: shared.DepartmentCS,
	})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.HealthHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var status HealthStatus
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&status))
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, 1, status.PendingMembers)
	assert.Equal(t, 1, status.PendingLeaders)
	assert.Equal(t, 0, status.MatchedMembers)
}

func TestHealthHandler_RejectsPost(t *testing.T) {
	s, _ := newTestServer()

	req := httptest.NewRequest(http.MethodPost, "/healthz", nil)
	rec := httptest.NewRecorder()
	s.HealthHandler(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

// endregion

// region match tests

func TestMatchHandler_RunsSweep(t *testing.T) {
	s, a := newTestServer()
	a.StartRunner()
	defer a.StopRunner()
	a.State.AddLeader(shared.PendingLeader{
		UserID: "l1", Username: "bob", Track: "django", TeamName: "code crushers",
		University: "Cairo University", Department: shared.DepartmentCS,
	})
	a.State.AddMember(shared.PendingMember{
		UserID: "m1", Username: "alice", Track: "django",
		Rating: 14, University: "Cairo University", Department: shared.DepartmentCS,
		RegisteredAt: time.Now(),
	})

	req := httptest.NewRequest(http.MethodPost, "/match", nil)
	rec := httptest.NewRecorder()
	s.MatchHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp MatchResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 1, resp.Matched)
	assert.True(t, a.State.HasMatched("m1"))
}

func TestMatchHandler_RejectsGet(t *testing.T) {
	s, _ := newTestServer()

	req := httptest.NewRequest(http.MethodGet, "/match", nil)
	rec := httptest.NewRecorder()
	s.MatchHandler(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

// endregion
