package handler

import (
	"algofit-storefront/internal/app/backend"
	"algofit-storefront/internal/app/config"
	"algofit-storefront/internal/app/countdown"
	"algofit-storefront/internal/app/repository"
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPassword = "Secret#123"

func init() {
	gin.SetMode(gin.TestMode)
	RegisterValidations()
}

// fakeBackend is an httptest stand-in for the remote fitness API.
type fakeBackend struct {
	mu         sync.Mutex
	planParams url.Values
	staff      bool
}

func (f *fakeBackend) lastPlanParams() url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.planParams
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	reply := func(status int, body string) {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}
	var payload map[string]string
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&payload)
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/plans/":
		q := r.URL.Query()
		f.mu.Lock()
		f.planParams = q
		f.mu.Unlock()
		switch {
		case q.Get("search") == "boom":
			reply(http.StatusInternalServerError, `<html>oops</html>`)
		case q.Get("page") == "7":
			reply(http.StatusNotFound, `{"detail": "Invalid page."}`)
		default:
			reply(http.StatusOK, `{"count": 12, "results": [
				{"id": 1, "name": "Starter", "price": 19, "membership": 2, "slot": 3},
				{"id": 2, "name": "Pro", "price": 49, "membership": 2, "slot": 0}
			]}`)
		}
	case r.Method == http.MethodGet && r.URL.Path == "/plans/1/":
		reply(http.StatusOK, `{"id": 1, "name": "Starter", "price": 19, "price_with_tax": 20.9, "membership": 2, "slot": 3}`)
	case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/plans/"):
		reply(http.StatusNotFound, `{"detail": "No Plan matches the given query."}`)
	case r.Method == http.MethodGet && r.URL.Path == "/memberships":
		reply(http.StatusOK, `[{"id": 2, "name": "Gold", "plan_count": 2}]`)
	case r.Method == http.MethodGet && r.URL.Path == "/reviews/":
		reply(http.StatusOK, `[
			{"id": 1, "rating": 5, "comment": "Great coach", "user": {"id": 3, "name": "Ann"}, "plan": {"id": 1, "name": "Starter"}},
			{"id": 2, "rating": 3, "comment": "Fine", "user": {"id": 4, "name": "Bob"}, "plan": {"id": 2, "name": "Pro"}}
		]`)
	case r.Method == http.MethodPost && r.URL.Path == "/auth/users/":
		if payload["email"] == "taken@example.com" {
			reply(http.StatusBadRequest, `{"email": ["user with this email already exists."]}`)
			return
		}
		reply(http.StatusCreated, `{"id": 7, "email": "`+payload["email"]+`", "first_name": "`+payload["first_name"]+`"}`)
	case r.Method == http.MethodPost && r.URL.Path == "/auth/users/activation/":
		if payload["token"] == "good" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		reply(http.StatusBadRequest, `{"uid": ["Invalid user id or user doesn't exist."]}`)
	case r.Method == http.MethodPost && r.URL.Path == "/auth/users/resend_activation/":
		w.WriteHeader(http.StatusNoContent)
	case r.Method == http.MethodPost && r.URL.Path == "/auth/jwt/create/":
		if payload["password"] != testPassword {
			reply(http.StatusUnauthorized, `{"detail": "No active account found with the given credentials"}`)
			return
		}
		reply(http.StatusOK, `{"access": "backend-access", "refresh": "backend-refresh"}`)
	case r.Method == http.MethodPost && r.URL.Path == "/auth/jwt/refresh/":
		reply(http.StatusOK, `{"access": "backend-access"}`)
	case r.URL.Path == "/auth/users/me/":
		if r.Header.Get("Authorization") != "JWT backend-access" {
			reply(http.StatusUnauthorized, `{"detail": "Given token not valid for any token type"}`)
			return
		}
		f.mu.Lock()
		staff := f.staff
		f.mu.Unlock()
		if r.Method == http.MethodPatch {
			reply(http.StatusOK, `{"id": 7, "email": "jane@example.com", "first_name": "`+payload["first_name"]+`"}`)
			return
		}
		if staff {
			reply(http.StatusOK, `{"id": 7, "email": "jane@example.com", "first_name": "Jane", "is_staff": true}`)
			return
		}
		reply(http.StatusOK, `{"id": 7, "email": "jane@example.com", "first_name": "Jane"}`)
	case r.Method == http.MethodPost && r.URL.Path == "/auth/users/set_password/":
		if payload["current_password"] != testPassword {
			reply(http.StatusBadRequest, `{"current_password": ["Invalid password."]}`)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		reply(http.StatusNotFound, `{"detail": "Not found."}`)
	}
}

type testEnv struct {
	router  *gin.Engine
	backend *fakeBackend
}

func newTestEnv(t *testing.T, tweak ...func(*config.Config)) *testEnv {
	t.Helper()
	fb := &fakeBackend{}
	srv := httptest.NewServer(fb)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpire:  time.Hour,
		JWTRefreshExpire: 2 * time.Hour,
		RateLimit:        config.RateLimitConfig{PerSecond: 100, Burst: 100},
	}
	for _, fn := range tweak {
		fn(cfg)
	}

	repo := repository.New(backend.NewClient(srv.URL, time.Second), repository.NewMemoryStore(), repository.Options{PageSize: 10})
	router := gin.New()
	discount := countdown.NewDiscount(time.Now(), time.Hour, time.Time{})
	RegisterHandlers(router, repo, cfg, discount)
	return &testEnv{router: router, backend: fb}
}

func (e *testEnv) do(method, target, token string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func (e *testEnv) login(t *testing.T) map[string]interface{} {
	t.Helper()
	w := e.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "jane@example.com", "password": testPassword})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode(t, w)
}

func TestGetShop(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/shop?sort=price_desc&search=yoga&membership=2", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp ShopResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ready", string(resp.State))
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
	assert.Equal(t, "-price", resp.Filters.Ordering)
	assert.True(t, resp.Pager.Visible)

	labels := make([]string, 0, len(resp.Badges))
	for _, b := range resp.Badges {
		labels = append(labels, b.Label)
	}
	assert.Equal(t, []string{"Membership: Gold", "Search: yoga", "Sort: High to Low"}, labels)

	params := env.backend.lastPlanParams()
	assert.Equal(t, "-price", params.Get("ordering"))
	assert.Equal(t, "yoga", params.Get("search"))
	assert.Equal(t, "2", params.Get("membership_id"))
	assert.Equal(t, "0", params.Get("price__gt"))
	assert.Equal(t, "1000", params.Get("price__lt"))
}

func TestGetShopBackendFailure(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/shop?search=boom", "", nil)
	require.Equal(t, http.StatusBadGateway, w.Code)

	body := decode(t, w)
	assert.Equal(t, "error", body["state"])
	assert.Equal(t, "Failed to load plans. Please try again.", body["error"])
	assert.Empty(t, body["items"])
	assert.NotNil(t, body["notice"])
}

func TestGetShopPastLastPage(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/shop?page=7", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Equal(t, "empty", body["state"])
	assert.Equal(t, "No plans found", body["message"])
}

func TestApplyIntentResetsPage(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/shop/intents", "", map[string]interface{}{
		"state":  map[string]interface{}{"price_min": 0, "price_max": 1000, "page": 2},
		"intent": map[string]interface{}{"type": "set_sort", "key": "price_asc"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp ShopResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Query.Page)
	require.NotNil(t, resp.Changed)
	assert.True(t, *resp.Changed)
	assert.Equal(t, "sort=price_asc", resp.QueryString)
	assert.Equal(t, "price", env.backend.lastPlanParams().Get("ordering"))
}

func TestApplyIntentClampsPrice(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/shop/intents", "", map[string]interface{}{
		"state":  map[string]interface{}{"price_min": 0, "price_max": 100, "page": 1},
		"intent": map[string]interface{}{"type": "set_price_range", "index": 0, "value": "250"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp ShopResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 90, resp.Query.PriceMin)
	assert.Equal(t, 100, resp.Query.PriceMax)
}

func TestApplyIntentKeepsTypedPrice(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/shop/intents", "", map[string]interface{}{
		"intent": map[string]interface{}{"type": "set_price_range", "index": 0, "value": "123"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp ShopResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 123, resp.Query.PriceMin)
	assert.Equal(t, "123", env.backend.lastPlanParams().Get("price__gt"))
}

func TestApplyIntentRejectsUnknownType(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/shop/intents", "", map[string]interface{}{
		"intent": map[string]interface{}{"type": "explode"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["error"], "explode")
}

func TestGetPlan(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/plans/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "Starter", body["name"])
	assert.Equal(t, true, body["in_slot"])
	assert.EqualValues(t, 1, body["review_count"])

	w = env.do(http.MethodGet, "/api/plans/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodGet, "/api/plans/404", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Plan Not Found", decode(t, w)["error"])
}

func TestGetReviews(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/reviews?rating=5", "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.EqualValues(t, 1, body["count"])
	top, ok := body["top_plans"].([]interface{})
	require.True(t, ok)
	require.NotEmpty(t, top)
	assert.Equal(t, "Starter", top[0].(map[string]interface{})["name"])

	w = env.do(http.MethodGet, "/api/reviews?rating=9", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/auth/register", "", map[string]string{
		"first_name":       "J",
		"last_name":        "Doe",
		"email":            "not-an-email",
		"password":         "short",
		"confirm_password": "different",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	body := decode(t, w)
	fields, ok := body["fields"].(map[string]interface{})
	require.True(t, ok, w.Body.String())
	assert.Equal(t, "First name must be at least 2 characters", fields["first_name"])
	assert.Equal(t, "Invalid email address", fields["email"])
	assert.Equal(t, "Password must be at least 8 characters", fields["password"])
	assert.Equal(t, "Passwords do not match", fields["confirm_password"])
	assert.Len(t, body["password_requirements"], 5)
}

func TestRegister(t *testing.T) {
	env := newTestEnv(t)
	form := map[string]string{
		"first_name":       "Jane",
		"last_name":        "Doe",
		"email":            "jane@example.com",
		"phone_number":     "+1 (555) 123-4567",
		"password":         testPassword,
		"confirm_password": testPassword,
	}

	w := env.do(http.MethodPost, "/api/auth/register", "", form)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	redirect := decode(t, w)["redirect"].(map[string]interface{})
	assert.Equal(t, "/login", redirect["to"])
	assert.EqualValues(t, 3, redirect["after_seconds"])

	form["email"] = "taken@example.com"
	w = env.do(http.MethodPost, "/api/auth/register", "", form)
	require.Equal(t, http.StatusBadRequest, w.Code)
	fields := decode(t, w)["fields"].(map[string]interface{})
	assert.Equal(t, "user with this email already exists.", fields["email"])
}

func TestActivate(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/auth/activate", "", map[string]string{"uid": "MQ", "token": "good"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decode(t, w)
	assert.Equal(t, "Account activated successfully!", body["message"])
	assert.EqualValues(t, ActivationRedirectSeconds, body["redirect"].(map[string]interface{})["after_seconds"])

	w = env.do(http.MethodPost, "/api/auth/activate", "", map[string]string{"uid": "MQ", "token": "stale"})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, activationFailedMessage, decode(t, w)["error"])

	w = env.do(http.MethodPost, "/api/auth/activate/resend", "", map[string]string{"email": "jane@example.com"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/api/auth/login", "", map[string]string{"email": "jane@example.com", "password": "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", decode(t, w)["error"])
}

func TestSessionLifecycle(t *testing.T) {
	env := newTestEnv(t)
	tokens := env.login(t)
	access := tokens["access_token"].(string)
	assert.Equal(t, "Bearer", tokens["token_type"])

	w := env.do(http.MethodGet, "/api/auth/me", access, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "jane@example.com", decode(t, w)["email"])

	w = env.do(http.MethodPut, "/api/auth/me", access, map[string]string{"first_name": "Janet"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Janet", decode(t, w)["user"].(map[string]interface{})["first_name"])

	w = env.do(http.MethodPost, "/api/auth/password", access, map[string]string{"current_password": "wrong", "new_password": "Another#456"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = env.do(http.MethodPost, "/api/auth/password", access, map[string]string{"current_password": testPassword, "new_password": "Another#456"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodPost, "/api/auth/logout", access, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodGet, "/api/auth/me", access, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Token is invalidated", decode(t, w)["error"])
}

func TestRefreshRotatesTokens(t *testing.T) {
	env := newTestEnv(t)
	tokens := env.login(t)
	refresh := tokens["refresh_token"].(string)

	w := env.do(http.MethodPost, "/api/auth/refresh", "", map[string]string{"refresh_token": refresh})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	rotated := decode(t, w)
	assert.NotEqual(t, refresh, rotated["refresh_token"])

	w = env.do(http.MethodPost, "/api/auth/refresh", "", map[string]string{"refresh_token": refresh})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(http.MethodPost, "/api/auth/refresh", "", map[string]string{"refresh_token": tokens["access_token"].(string)})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCart(t *testing.T) {
	env := newTestEnv(t)
	access := env.login(t)["access_token"].(string)

	w := env.do(http.MethodGet, "/api/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(http.MethodPost, "/api/cart/items", access, map[string]interface{}{"plan_id": 1, "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = env.do(http.MethodPost, "/api/cart/items", access, map[string]interface{}{"plan_id": 1})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.EqualValues(t, 3, decode(t, w)["item_count"])

	w = env.do(http.MethodPost, "/api/cart/items", access, map[string]interface{}{"plan_id": 404})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(http.MethodDelete, "/api/cart/items/1", access, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 0, decode(t, w)["item_count"])

	w = env.do(http.MethodDelete, "/api/cart", access, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestStaffOnlyRoute(t *testing.T) {
	env := newTestEnv(t)
	access := env.login(t)["access_token"].(string)

	w := env.do(http.MethodDelete, "/api/memberships/cache", access, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	env.backend.mu.Lock()
	env.backend.staff = true
	env.backend.mu.Unlock()
	access = env.login(t)["access_token"].(string)

	w = env.do(http.MethodDelete, "/api/memberships/cache", access, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestLoginIsRateLimited(t *testing.T) {
	env := newTestEnv(t, func(cfg *config.Config) {
		cfg.RateLimit = config.RateLimitConfig{PerSecond: 0.001, Burst: 2}
	})
	creds := map[string]string{"email": "jane@example.com", "password": "nope"}

	assert.Equal(t, http.StatusUnauthorized, env.do(http.MethodPost, "/api/auth/login", "", creds).Code)
	assert.Equal(t, http.StatusUnauthorized, env.do(http.MethodPost, "/api/auth/login", "", creds).Code)

	w := env.do(http.MethodPost, "/api/auth/login", "", creds)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
}

func TestDiscount(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/discount", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, false, body["expired"])
	assert.EqualValues(t, 59, body["remaining"].(map[string]interface{})["minutes"])
}

func TestDiscountStreamEndsWhenExpired(t *testing.T) {
	h := NewDiscountHandler(countdown.NewDiscount(time.Now().Add(-2*time.Hour), time.Hour, time.Time{}))
	router := gin.New()
	router.GET("/stream", h.StreamDiscount)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stream", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, strings.Count(w.Body.String(), "event:tick"))
	assert.Contains(t, w.Body.String(), `"expired":true`)
}
