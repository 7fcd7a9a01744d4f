package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
	"github.com/pitchbridge/pitchbridge-api/internal/core/service"
	"github.com/pitchbridge/pitchbridge-api/internal/infrastructure/db/memory"
)

const testSecret = "e2e-secret"

type scriptedAnalyzer struct {
	result *ports.AnalysisResult
	err    error
}

func (s *scriptedAnalyzer) Analyze(context.Context, ports.PitchInput) (*ports.AnalysisResult, error) {
	return s.result, s.err
}

func newTestServer(t *testing.T, analyzer ports.PitchAnalyzer) (*echo.Echo, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	log := zerolog.Nop()

	fanout := service.NewNotificationFanout(store.Notifications(), store.Dedup(), log)
	feedbackSvc := service.NewFeedbackService(store.Feedback(), store.Startups(), fanout, log)

	e := NewRouter(Services{
		Auth:          service.NewAuthService(store.Users(), testSecret, time.Hour, log),
		Users:         service.NewUserService(store.Users()),
		Startups:      service.NewStartupService(store.Startups(), store.Users(), store.Interests(), store.Feedback(), log),
		Interests:     service.NewInterestService(store.Interests(), store.Startups(), store.Users(), fanout, log),
		Events:        service.NewEventService(store.Events(), log),
		Feedback:      feedbackSvc,
		Notifications: service.NewNotificationService(store.Notifications()),
		Analyzer:      service.NewAnalyzerService(store.Startups(), feedbackSvc, analyzer, log),
	}, RouterOptions{
		JWTSecret: testSecret,
		Log:       log,
		Registry:  prometheus.NewRegistry(),
	})
	return e, store
}

func doJSON(t *testing.T, e *echo.Echo, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return out
}

func registerAndLogin(t *testing.T, e *echo.Echo, username, role string) (token, userID string) {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"password":"hunter2hunter2","full_name":"Test %s","email":"%s@example.com","role":%q}`,
		username, username, username, role)
	rec := doJSON(t, e, http.MethodPost, "/api/auth/register", "", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d: %s", username, rec.Code, rec.Body.String())
	}

	rec = doJSON(t, e, http.MethodPost, "/api/auth/login", "",
		fmt.Sprintf(`{"username":%q,"password":"hunter2hunter2"}`, username))
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d: %s", username, rec.Code, rec.Body.String())
	}
	resp := decodeBody(t, rec)
	token, _ = resp["token"].(string)
	user, _ := resp["user"].(map[string]any)
	userID, _ = user["id"].(string)
	if token == "" || userID == "" {
		t.Fatalf("missing token or user id in login response: %v", resp)
	}
	return token, userID
}

func createStartup(t *testing.T, e *echo.Echo, token string) string {
	t.Helper()
	rec := doJSON(t, e, http.MethodPost, "/api/startups", token,
		`{"name":"Acme Robotics","description":"Robots for warehouses","industry":"robotics","funding_min":100000,"funding_max":500000,"funding_stage":"seed","tags":["robotics","b2b"]}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create startup: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	id, _ := decodeBody(t, rec)["id"].(string)
	if id == "" {
		t.Fatalf("missing startup id")
	}
	return id
}

func TestAPI_InterestFlowNotifiesOwner(t *testing.T) {
	e, _ := newTestServer(t, &scriptedAnalyzer{})

	founderToken, founderID := registerAndLogin(t, e, "founder", domain.RoleEntrepreneur)
	investorToken, _ := registerAndLogin(t, e, "angel", domain.RoleInvestor)
	startupID := createStartup(t, e, founderToken)

	rec := doJSON(t, e, http.MethodPost, "/api/interests", investorToken,
		fmt.Sprintf(`{"startup_id":%q,"notes":"interesting space"}`, startupID))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create interest: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// Duplicate interest for the same pair conflicts.
	rec = doJSON(t, e, http.MethodPost, "/api/interests", investorToken,
		fmt.Sprintf(`{"startup_id":%q}`, startupID))
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate interest: expected 409, got %d", rec.Code)
	}

	// The founder sees exactly one notification with the deep link.
	rec = doJSON(t, e, http.MethodGet, "/api/users/"+founderID+"/notifications", founderToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list notifications: expected 200, got %d", rec.Code)
	}
	var feed []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &feed); err != nil {
		t.Fatalf("invalid feed json: %v", err)
	}
	if len(feed) != 1 {
		t.Fatalf("expected one notification, got %d", len(feed))
	}
	if feed[0]["title"] != "New Interest in Your Startup" {
		t.Fatalf("unexpected title %v", feed[0]["title"])
	}
	if feed[0]["link"] != "/startup/"+startupID {
		t.Fatalf("unexpected link %v", feed[0]["link"])
	}

	// Mark the notification read, twice; both succeed.
	id, _ := feed[0]["id"].(string)
	for i := 0; i < 2; i++ {
		rec = doJSON(t, e, http.MethodPatch, "/api/notifications/"+id+"/read", founderToken, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("mark read attempt %d: expected 200, got %d", i+1, rec.Code)
		}
	}
}

func TestAPI_AnalyzeStoresFeedbackAndNotifies(t *testing.T) {
	e, _ := newTestServer(t, &scriptedAnalyzer{
		result: &ports.AnalysisResult{
			Clarity: 72, MarketNeed: 64, TeamStrength: 81, OverallScore: 72,
			Suggestion: "expand the team slide",
			Swot: domain.SwotAnalysis{
				Strengths:     []string{"strong team"},
				Weaknesses:    []string{},
				Opportunities: []string{},
				Threats:       []string{},
			},
		},
	})

	founderToken, founderID := registerAndLogin(t, e, "founder", domain.RoleEntrepreneur)
	startupID := createStartup(t, e, founderToken)

	rec := doJSON(t, e, http.MethodPost, "/api/startups/"+startupID+"/analyze", founderToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("analyze: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := decodeBody(t, rec)
	if result["overall_score"] != float64(72) {
		t.Fatalf("unexpected analysis payload: %v", result)
	}

	rec = doJSON(t, e, http.MethodGet, "/api/startups/"+startupID+"/ai-feedback", founderToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get feedback: expected 200, got %d", rec.Code)
	}

	rec = doJSON(t, e, http.MethodGet, "/api/users/"+founderID+"/notifications", founderToken, "")
	var feed []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &feed); err != nil {
		t.Fatalf("invalid feed json: %v", err)
	}
	if len(feed) != 1 || feed[0]["title"] != "New AI Analysis Complete" {
		t.Fatalf("expected analysis notification, got %v", feed)
	}
}

func TestAPI_AnalyzeUpstreamFailure(t *testing.T) {
	e, _ := newTestServer(t, &scriptedAnalyzer{
		err: fmt.Errorf("status 503: %w", ports.ErrUpstream),
	})

	founderToken, _ := registerAndLogin(t, e, "founder", domain.RoleEntrepreneur)
	startupID := createStartup(t, e, founderToken)

	rec := doJSON(t, e, http.MethodPost, "/api/startups/"+startupID+"/analyze", founderToken, "")
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAPI_AuthAndRBAC(t *testing.T) {
	e, _ := newTestServer(t, &scriptedAnalyzer{})

	// No token: 401.
	rec := doJSON(t, e, http.MethodGet, "/api/startups", "", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	// An investor may not create startups: 403 at the route boundary.
	investorToken, _ := registerAndLogin(t, e, "angel", domain.RoleInvestor)
	rec = doJSON(t, e, http.MethodPost, "/api/startups", investorToken,
		`{"name":"Nope","description":"x","industry":"misc","funding_stage":"seed"}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	// An entrepreneur may not register interest.
	founderToken, _ := registerAndLogin(t, e, "founder", domain.RoleEntrepreneur)
	rec = doJSON(t, e, http.MethodPost, "/api/interests", founderToken, `{"startup_id":"whatever"}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	// Only admins create events.
	rec = doJSON(t, e, http.MethodPost, "/api/events", founderToken,
		`{"title":"Pitch Night","event_date":"2026-10-01T18:00:00Z"}`)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestAPI_InterestStatusTransition(t *testing.T) {
	e, _ := newTestServer(t, &scriptedAnalyzer{})

	founderToken, _ := registerAndLogin(t, e, "founder", domain.RoleEntrepreneur)
	investorToken, _ := registerAndLogin(t, e, "angel", domain.RoleInvestor)
	startupID := createStartup(t, e, founderToken)

	rec := doJSON(t, e, http.MethodPost, "/api/interests", investorToken,
		fmt.Sprintf(`{"startup_id":%q}`, startupID))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create interest: expected 201, got %d", rec.Code)
	}
	interestID, _ := decodeBody(t, rec)["id"].(string)

	rec = doJSON(t, e, http.MethodPatch, "/api/interests/"+interestID, founderToken,
		`{"status":"accepted"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("accept: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	// Accepted is terminal; rejecting afterwards is unprocessable.
	rec = doJSON(t, e, http.MethodPatch, "/api/interests/"+interestID, founderToken,
		`{"status":"rejected"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestAPI_EventsUpcomingFilter(t *testing.T) {
	e, store := newTestServer(t, &scriptedAnalyzer{})
	ctx := context.Background()

	now := time.Now().UTC()
	for _, d := range []time.Time{now.Add(-24 * time.Hour), now.Add(24 * time.Hour)} {
		if _, err := store.Events().Create(ctx, &domain.Event{
			Title: "Pitch Night", EventDate: d, CreatedAt: now,
		}); err != nil {
			t.Fatalf("seed event: %v", err)
		}
	}

	token, _ := registerAndLogin(t, e, "angel", domain.RoleInvestor)

	rec := doJSON(t, e, http.MethodGet, "/api/events", token, "")
	var all []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &all); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 events, got %d", len(all))
	}

	rec = doJSON(t, e, http.MethodGet, "/api/events?upcoming=true", token, "")
	var upcoming []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &upcoming); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(upcoming) != 1 {
		t.Fatalf("expected 1 upcoming event, got %d", len(upcoming))
	}
}

func TestAPI_ListStartupsByOwner(t *testing.T) {
	e, _ := newTestServer(t, &scriptedAnalyzer{})

	founderToken, founderID := registerAndLogin(t, e, "founder", domain.RoleEntrepreneur)
	rivalToken, _ := registerAndLogin(t, e, "rival", domain.RoleEntrepreneur)

	startupID := createStartup(t, e, founderToken)
	rec := doJSON(t, e, http.MethodPost, "/api/startups", rivalToken,
		`{"name":"Beta Biotech","description":"Gene therapies","industry":"biotech","funding_stage":"series-a"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create rival startup: expected 201, got %d", rec.Code)
	}

	rec = doJSON(t, e, http.MethodGet, "/api/users/"+founderID+"/startups", founderToken, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list by owner: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var owned []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &owned); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(owned) != 1 {
		t.Fatalf("expected exactly the owner's startup, got %d records", len(owned))
	}
	if owned[0]["id"] != startupID || owned[0]["user_id"] != founderID {
		t.Fatalf("unexpected record: %v", owned[0])
	}
}

func TestAPI_StartupFilters(t *testing.T) {
	e, _ := newTestServer(t, &scriptedAnalyzer{})

	founderToken, _ := registerAndLogin(t, e, "founder", domain.RoleEntrepreneur)
	createStartup(t, e, founderToken) // robotics, seed

	rec := doJSON(t, e, http.MethodPost, "/api/startups", founderToken,
		`{"name":"Beta Biotech","description":"Gene therapies","industry":"biotech","funding_min":1000000,"funding_max":5000000,"funding_stage":"series-a"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create second startup: expected 201, got %d", rec.Code)
	}

	rec = doJSON(t, e, http.MethodGet, "/api/startups?industry=biotech", founderToken, "")
	var filtered []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &filtered); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(filtered) != 1 || filtered[0]["name"] != "Beta Biotech" {
		t.Fatalf("unexpected filter result: %v", filtered)
	}

	// Funding range overlap: asking for up to 600k excludes the biotech pitch.
	rec = doJSON(t, e, http.MethodGet, "/api/startups?funding_max=600000", founderToken, "")
	if err := json.Unmarshal(rec.Body.Bytes(), &filtered); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(filtered) != 1 || filtered[0]["name"] != "Acme Robotics" {
		t.Fatalf("unexpected range filter result: %v", filtered)
	}
}

func TestAPI_StartupDeleteValidation(t *testing.T) {
	e, _ := newTestServer(t, &scriptedAnalyzer{})

	founderToken, _ := registerAndLogin(t, e, "founder", domain.RoleEntrepreneur)
	otherToken, _ := registerAndLogin(t, e, "rival", domain.RoleEntrepreneur)
	startupID := createStartup(t, e, founderToken)

	// Invalid funding range caught at creation.
	rec := doJSON(t, e, http.MethodPost, "/api/startups", founderToken,
		`{"name":"Backwards","description":"x","industry":"misc","funding_min":500000,"funding_max":100000,"funding_stage":"seed"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for inverted range, got %d", rec.Code)
	}

	// Another founder may not delete the startup.
	rec = doJSON(t, e, http.MethodDelete, "/api/startups/"+startupID, otherToken, "")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	rec = doJSON(t, e, http.MethodDelete, "/api/startups/"+startupID, founderToken, "")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	rec = doJSON(t, e, http.MethodDelete, "/api/startups/"+startupID, founderToken, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for repeat delete, got %d", rec.Code)
	}
}

func TestAPI_HealthAndMetrics(t *testing.T) {
	e, _ := newTestServer(t, &scriptedAnalyzer{})

	rec := doJSON(t, e, http.MethodGet, "/health", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", rec.Code)
	}
	rec = doJSON(t, e, http.MethodGet, "/metrics", "", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", rec.Code)
	}
}
