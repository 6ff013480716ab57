// internal/wire/wire.go
package wire

import (
	"net/http"

	"store-rating/internal/adaptor"
	"store-rating/internal/data/repository"
	"store-rating/internal/usecase"
	"store-rating/pkg/database"
	"store-rating/pkg/middleware"
	"store-rating/pkg/token"
	"store-rating/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// App holds the wired router and the services it serves
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds services, handlers and routes on top of the repositories
func Wiring(
	repo *repository.Repository,
	tx database.TxManager,
	tokens token.Manager,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	service := usecase.NewService(repo, tx, tokens, config, logger)
	handler := adaptor.NewHandler(service, logger)

	return &App{
		Router:  setupRouter(handler, tokens, config, logger),
		Service: service,
	}
}

// setupRouter mounts every API route under the configured base path; /health stays at the root
func setupRouter(
	handler *adaptor.Handler,
	tokens token.Manager,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.CORSOrigins))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseNotFound(w, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseJSON(w, http.StatusMethodNotAllowed, utils.ErrorBody{Error: "Method not allowed"})
	})

	api := func(r chi.Router) {
		authenticated := middleware.Authenticate(tokens, logger)

		wireAuth(r, handler.Auth)
		wireUser(r, handler.User, authenticated, logger)
		wireStore(r, handler.Store, authenticated)
		wireRating(r, handler.Rating, authenticated, logger)
		wireAdmin(r, handler.Admin, authenticated, logger)
		wireOwner(r, handler.Owner, authenticated, logger)
	}

	if config.App.BasePath == "" {
		r.Group(api)
	} else {
		r.Route(config.App.BasePath, api)
	}

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	return r
}
