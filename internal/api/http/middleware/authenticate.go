package middleware

import (
	"net/http"
	"strings"

	"github.com/dtroode/homestock-server/internal/api/http/response"
	"github.com/dtroode/homestock-server/internal/logger"
	"github.com/dtroode/homestock-server/internal/model"
)

const notAuthorized = "Not authorized"

// Authenticator verifies session tokens and checks roles.
type Authenticator interface {
	VerifyToken(token string) (model.Claims, error)
	Authorize(claims model.Claims, allowed ...model.Role) error
}

// Authenticate validates bearer tokens and injects claims into the request context.
type Authenticate struct {
	auth           Authenticator
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(auth Authenticator, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{auth: auth, contextManager: contextManager, logger: logger}
}

// Handle rejects requests without a valid bearer token with 401.
// Expired and invalid tokens get the same response.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			response.Message(w, http.StatusUnauthorized, notAuthorized)
			return
		}

		claims, err := m.auth.VerifyToken(token)
		if err != nil {
			m.logger.Debug("Authenticate middleware: token rejected",
				"path", r.URL.Path,
				"error", err.Error())
			response.Message(w, http.StatusUnauthorized, notAuthorized)
			return
		}

		ctx := m.contextManager.SetClaimsToContext(r.Context(), claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole allows only callers whose claims carry one of roles.
// It must run after Handle.
func (m *Authenticate) RequireRole(roles ...model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := m.contextManager.GetClaimsFromContext(r.Context())
			if !ok {
				response.Message(w, http.StatusUnauthorized, notAuthorized)
				return
			}
			if err := m.auth.Authorize(claims, roles...); err != nil {
				m.logger.Info("Authenticate middleware: access denied",
					"user_id", claims.UserID,
					"role", claims.Role,
					"path", r.URL.Path)
				response.Message(w, http.StatusForbidden, "Access denied")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

