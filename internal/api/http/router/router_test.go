package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpContext "github.com/dtroode/homestock-server/internal/api/http/context"
	"github.com/dtroode/homestock-server/internal/metrics"
	"github.com/dtroode/homestock-server/internal/mocks"
	"github.com/dtroode/homestock-server/internal/model"
	"github.com/dtroode/homestock-server/internal/testutil"
)

type routerDeps struct {
	auth      *mocks.AuthService
	authn     *mocks.Authenticator
	user      *mocks.UserService
	inventory *mocks.InventoryService
	lists     *mocks.ShoppingListService
	db        *mocks.Pinger
}

func newTestRouter(t *testing.T) (http.Handler, routerDeps) {
	d := routerDeps{
		auth:      mocks.NewAuthService(t),
		authn:     mocks.NewAuthenticator(t),
		user:      mocks.NewUserService(t),
		inventory: mocks.NewInventoryService(t),
		lists:     mocks.NewShoppingListService(t),
		db:        mocks.NewPinger(t),
	}
	reg := prometheus.NewRegistry()
	r := New(Services{
		Auth:         d.auth,
		Authn:        d.authn,
		User:         d.user,
		Category:     mocks.NewCategoryService(t),
		Inventory:    d.inventory,
		ShoppingList: d.lists,
		Chatbot:      mocks.NewChatbotService(t),
		DB:           d.db,
	}, Options{
		CORSOrigins:       []string{"http://localhost:3000"},
		LowStockThreshold: 5,
		Metrics:           metrics.New(reg),
		Gatherer:          reg,
	}, httpContext.NewManager(), testutil.MakeNoopLogger())
	return r.Register(), d
}

func do(h http.Handler, method, target, token string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_PublicRoutes(t *testing.T) {
	h, d := newTestRouter(t)

	d.auth.On("Login", mock.Anything, "a@b.c", "pw").Return(model.AuthResult{Token: "tok"}, nil)
	d.db.On("Ping", mock.Anything).Return(nil)

	rec := do(h, http.MethodPost, "/users/login", "", `{"email":"a@b.c","password":"pw"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(h, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(h, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `homestock_http_requests_total{method="POST",route="/users/login",status="200"} 1`)
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	h, _ := newTestRouter(t)

	for _, target := range []string{"/users/profile", "/inventory", "/categories", "/admin/users"} {
		rec := do(h, http.MethodGet, target, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
		assert.JSONEq(t, `{"message":"Not authorized"}`, rec.Body.String(), target)
	}
}

func TestRouter_ExpiredToken(t *testing.T) {
	h, d := newTestRouter(t)

	d.authn.On("VerifyToken", "old").Return(model.Claims{}, model.ErrTokenExpired)

	rec := do(h, http.MethodGet, "/users/profile", "old", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Not authorized"}`, rec.Body.String())
}

func TestRouter_AdminGate(t *testing.T) {
	h, d := newTestRouter(t)

	user := model.Claims{UserID: uuid.New(), Role: model.RoleUser}
	admin := model.Claims{UserID: uuid.New(), Role: model.RoleAdmin}

	d.authn.On("VerifyToken", "user").Return(user, nil)
	d.authn.On("VerifyToken", "admin").Return(admin, nil)
	d.authn.On("Authorize", user, []model.Role{model.RoleAdmin}).Return(model.ErrForbidden)
	d.authn.On("Authorize", admin, []model.Role{model.RoleAdmin}).Return(nil)
	d.user.On("ListUsers", mock.Anything).Return([]model.PublicUser{}, nil)

	rec := do(h, http.MethodGet, "/admin/users", "user", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = do(h, http.MethodGet, "/admin/users", "admin", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_StaticInventoryRoutesWinOverID(t *testing.T) {
	h, d := newTestRouter(t)

	claims := model.Claims{UserID: uuid.New(), Role: model.RoleUser}
	d.authn.On("VerifyToken", "tok").Return(claims, nil)
	d.inventory.On("Expired", mock.Anything).Return(nil, nil)
	d.inventory.On("LowStock", mock.Anything, 5.0).Return(nil, nil)

	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/inventory/expired", "tok", "").Code)
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/inventory/low-stock", "tok", "").Code)
}

func TestRouter_ShoppingListOwnership(t *testing.T) {
	h, d := newTestRouter(t)

	claims := model.Claims{UserID: uuid.New(), Role: model.RoleUser}
	d.authn.On("VerifyToken", "tok").Return(claims, nil)
	d.lists.On("GetList", mock.Anything, claims.UserID).Return(model.ShoppingList{UserID: claims.UserID}, nil)

	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/shopping-list/"+claims.UserID.String(), "tok", "").Code)
	assert.Equal(t, http.StatusForbidden, do(h, http.MethodGet, "/shopping-list/"+uuid.NewString(), "tok", "").Code)
}

func TestRouter_NotFound(t *testing.T) {
	h, _ := newTestRouter(t)

	rec := do(h, http.MethodGet, "/nope", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"route not found"}`, rec.Body.String())
}

func TestRouter_CORSPreflight(t *testing.T) {
	h, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/inventory", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
