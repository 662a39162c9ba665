package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dtroode/homestock-server/internal/api/http/handler"
	"github.com/dtroode/homestock-server/internal/api/http/middleware"
	"github.com/dtroode/homestock-server/internal/api/http/response"
	"github.com/dtroode/homestock-server/internal/logger"
	"github.com/dtroode/homestock-server/internal/metrics"
	"github.com/dtroode/homestock-server/internal/model"
)

const requestTimeout = 30 * time.Second

// Services groups the dependencies served over HTTP.
type Services struct {
	Auth         handler.AuthService
	Authn        middleware.Authenticator
	User         handler.UserService
	Category     handler.CategoryService
	Inventory    handler.InventoryService
	ShoppingList handler.ShoppingListService
	Chatbot      handler.ChatbotService
	DB           handler.Pinger
}

// Options configures cross-cutting router behavior.
type Options struct {
	CORSOrigins       []string
	LowStockThreshold float64
	Metrics           *metrics.Metrics
	Gatherer          prometheus.Gatherer
}

// Router wires handlers and middleware into a chi mux.
type Router struct {
	services       Services
	options        Options
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates a new HTTP Router instance.
func New(services Services, options Options, contextManager model.ContextManager, logger *logger.Logger) *Router {
	return &Router{
		services:       services,
		options:        options,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the HTTP handler with all routes and middleware.
func (r *Router) Register() http.Handler {
	mux := chi.NewRouter()

	mux.Use(chiMiddleware.RequestID)
	mux.Use(middleware.NewLogging(r.logger).Handle)
	if r.options.Metrics != nil {
		mux.Use(middleware.NewMetrics(r.options.Metrics).Handle)
	}
	mux.Use(chiMiddleware.Recoverer)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   r.options.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	mux.Use(chiMiddleware.Timeout(requestTimeout))

	mux.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.Message(w, http.StatusNotFound, "route not found")
	})
	mux.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.Message(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.registerPublicRoutes(mux)

	authn := middleware.NewAuthenticate(r.services.Authn, r.contextManager, r.logger)
	mux.Group(func(protected chi.Router) {
		protected.Use(authn.Handle)
		r.registerUserRoutes(protected)
		r.registerCategoryRoutes(protected)
		r.registerInventoryRoutes(protected)
		r.registerShoppingListRoutes(protected)
		r.registerChatbotRoutes(protected)

		protected.Group(func(admin chi.Router) {
			admin.Use(authn.RequireRole(model.RoleAdmin))
			r.registerAdminRoutes(admin)
		})
	})

	return mux
}

func (r *Router) registerPublicRoutes(mux chi.Router) {
	auth := handler.NewAuth(r.services.Auth, r.logger)
	mux.Post("/users/signup", auth.Signup)
	mux.Post("/users/login", auth.Login)

	health := handler.NewHealth(r.services.DB, r.logger)
	mux.Get("/health", health.Check)

	if r.options.Gatherer != nil {
		mux.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(r.options.Gatherer, promhttp.HandlerOpts{}))
	}
}

func (r *Router) registerUserRoutes(mux chi.Router) {
	user := handler.NewUser(r.services.User, r.contextManager, r.logger)
	mux.Get("/users/profile", user.GetProfile)
	mux.Put("/users/profile/image", user.UpdateProfile)
	mux.Get("/users/{id}/picture", user.GetProfilePicture)
}

func (r *Router) registerAdminRoutes(mux chi.Router) {
	user := handler.NewUser(r.services.User, r.contextManager, r.logger)
	mux.Route("/admin/users", func(admin chi.Router) {
		admin.Get("/", user.ListUsers)
		admin.Delete("/{id}", user.DeleteUser)
		admin.Put("/{id}/role", user.ChangeRole)
	})
}

func (r *Router) registerCategoryRoutes(mux chi.Router) {
	category := handler.NewCategory(r.services.Category, r.logger)
	mux.Route("/categories", func(c chi.Router) {
		c.Get("/", category.List)
		c.Post("/", category.Create)
		c.Get("/{id}", category.Get)
		c.Put("/{id}", category.Update)
		c.Delete("/{id}", category.Delete)
	})
}

func (r *Router) registerInventoryRoutes(mux chi.Router) {
	inventory := handler.NewInventory(r.services.Inventory, r.options.LowStockThreshold, r.logger)
	mux.Route("/inventory", func(inv chi.Router) {
		inv.Get("/", inventory.List)
		inv.Post("/", inventory.Create)
		inv.Get("/expiring", inventory.Expiring)
		inv.Get("/expired", inventory.Expired)
		inv.Get("/low-stock", inventory.LowStock)
		inv.Get("/{id}", inventory.Get)
		inv.Put("/{id}", inventory.Update)
		inv.Delete("/{id}", inventory.Delete)
	})
}

func (r *Router) registerShoppingListRoutes(mux chi.Router) {
	list := handler.NewShoppingList(r.services.ShoppingList, r.contextManager, r.options.LowStockThreshold, r.logger)
	mux.Route("/shopping-list", func(sl chi.Router) {
		sl.Post("/add", list.Add)
		sl.Delete("/remove/{userId}/{itemName}", list.Remove)
		sl.Post("/auto-add/{userId}", list.AutoAdd)
		sl.Get("/{userId}", list.Get)
	})
}

func (r *Router) registerChatbotRoutes(mux chi.Router) {
	chatbot := handler.NewChatbot(r.services.Chatbot, r.logger)
	mux.Post("/chatbot", chatbot.Reply)
}
