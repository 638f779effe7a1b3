package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"lifevibes/internal/application/usecase"
	"lifevibes/internal/infrastructure/ai"
	"lifevibes/internal/infrastructure/repository"
	"lifevibes/internal/infrastructure/security"
	"lifevibes/internal/logging"
	"lifevibes/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEventSecret = "hook-secret"

type testAPI struct {
	router *gin.Engine
	tokens *security.TokenManager
	mem    *repository.Memory
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mem := repository.NewMemory()
	logger := logging.NewDiscard()

	profileUC := usecase.NewProfileUseCase(mem, logger)
	ledgerUC := usecase.NewLedgerUseCase(mem, logger)
	questUC := usecase.NewQuestUseCase(mem, ledgerUC, logger)
	matchUC := usecase.NewMatchUseCase(mem, mem, logger)
	coachUC := usecase.NewCoachUseCase(mem, mem, ai.NewTemplateGenerator(), logger)

	tokens := security.NewTokenManager("test-secret")
	// Unreachable redis: the limiter fails open, which is what we want here.
	limiter := middleware.NewRateLimiter(redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"}))

	router := NewRouter(
		NewEventHandler(profileUC, testEventSecret),
		NewMatchHandler(matchUC),
		NewQuestHandler(questUC),
		NewCoachHandler(coachUC),
		limiter,
		tokens,
		"http://localhost:3000",
	)

	return &testAPI{router: router, tokens: tokens, mem: mem}
}

func (a *testAPI) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testAPI) signup(t *testing.T, userID string) string {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/events/user-created",
		bytes.NewBufferString(fmt.Sprintf(`{"userId":%q,"email":"%s@example.com","displayName":%q}`, userID, userID, userID)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Event-Secret", testEventSecret)
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)

	token, err := a.tokens.Generate(userID)
	require.NoError(t, err)
	return token
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRequestsWithoutTokenAreRejected(t *testing.T) {
	api := newTestAPI(t)

	for _, path := range []string{
		"/api/v1/match/calculate",
		"/api/v1/quests/daily",
		"/api/v1/quests/validate",
		"/api/v1/coach/chat",
		"/api/v1/avatar/manifesto",
	} {
		w := api.do(t, http.MethodPost, path, "", gin.H{})
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestUserCreatedRejectsBadSecret(t *testing.T) {
	api := newTestAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events/user-created",
		bytes.NewBufferString(`{"userId":"u1"}`))
	req.Header.Set("X-Event-Secret", "wrong")
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUserCreatedDuplicateConflicts(t *testing.T) {
	api := newTestAPI(t)
	api.signup(t, "u1")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/events/user-created",
		bytes.NewBufferString(`{"userId":"u1"}`))
	req.Header.Set("X-Event-Secret", testEventSecret)
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestMatchCalculate(t *testing.T) {
	api := newTestAPI(t)
	token := api.signup(t, "alice")
	api.signup(t, "bob")

	w := api.do(t, http.MethodPost, "/api/v1/match/calculate", token, gin.H{"targetUserId": "bob"})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Equal(t, "alice_bob", body["matchId"])
	score := body["matchScore"].(float64)
	assert.GreaterOrEqual(t, score, 60.0)
	assert.LessOrEqual(t, score, 100.0)

	target := body["targetUser"].(map[string]any)
	assert.Equal(t, "bob", target["displayName"])
	_, hasEmail := target["email"]
	assert.False(t, hasEmail, "redacted profile must not leak the email")
}

func TestMatchCalculateUnknownTarget(t *testing.T) {
	api := newTestAPI(t)
	token := api.signup(t, "alice")

	w := api.do(t, http.MethodPost, "/api/v1/match/calculate", token, gin.H{"targetUserId": "ghost"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCoachChat(t *testing.T) {
	api := newTestAPI(t)
	token := api.signup(t, "u1")

	w := api.do(t, http.MethodPost, "/api/v1/coach/chat", token, gin.H{"message": "necesito un plan"})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Contains(t, body["response"], "necesito un plan")
}

func TestManifesto(t *testing.T) {
	api := newTestAPI(t)
	token := api.signup(t, "u1")

	w := api.do(t, http.MethodPost, "/api/v1/avatar/manifesto", token, gin.H{
		"usuario":    "Ana",
		"valores":    "claridad",
		"proposito":  "enseñar",
		"superpoder": "paciencia",
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decodeBody(t, w)
	assert.Contains(t, body["manifesto"], "Manifiesto de Ana")
}

func TestQuestLifecycleEndToEnd(t *testing.T) {
	api := newTestAPI(t)
	token := api.signup(t, "u1")

	// Day one: assign and complete.
	w := api.do(t, http.MethodPost, "/api/v1/quests/daily", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	first := decodeBody(t, w)
	questID := first["questId"].(string)
	xpReward := int(first["quest"].(map[string]any)["xpReward"].(float64))

	// Idempotent re-assignment.
	w = api.do(t, http.MethodPost, "/api/v1/quests/daily", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, questID, decodeBody(t, w)["questId"])

	w = api.do(t, http.MethodPost, "/api/v1/quests/validate", token, gin.H{"questId": questID})
	require.Equal(t, http.StatusOK, w.Code)
	completion := decodeBody(t, w)
	assert.Equal(t, true, completion["success"])
	assert.Equal(t, float64(xpReward), completion["xpAwarded"])

	// Double completion conflicts and awards nothing extra.
	w = api.do(t, http.MethodPost, "/api/v1/quests/validate", token, gin.H{"questId": questID})
	assert.Equal(t, http.StatusConflict, w.Code)

	profile, err := api.mem.GetProfile(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, xpReward, profile.XP)

	stats, err := api.mem.GetStats(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalQuestsCompleted)
}

func TestQuestValidateForeignQuestForbidden(t *testing.T) {
	api := newTestAPI(t)
	ownerToken := api.signup(t, "owner")
	intruderToken := api.signup(t, "intruder")

	w := api.do(t, http.MethodPost, "/api/v1/quests/daily", ownerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	questID := decodeBody(t, w)["questId"].(string)

	w = api.do(t, http.MethodPost, "/api/v1/quests/validate", intruderToken, gin.H{"questId": questID})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestQuestValidateUnknownQuest(t *testing.T) {
	api := newTestAPI(t)
	token := api.signup(t, "u1")

	w := api.do(t, http.MethodPost, "/api/v1/quests/validate", token, gin.H{"questId": "6ba7b810-9dad-11d1-80b4-00c04fd430c8"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
