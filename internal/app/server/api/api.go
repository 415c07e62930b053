//POST  /user/register                     # Registration (public)
//POST  /user/login                        # Login (public)
//POST  /translate                         # Translate a phrase (auth)
//POST  /vocabularies                      # Save a flashcard (auth)
//GET   /vocabularies                      # List flashcards grouped by language (auth)
//PATCH /vocabularies/{id}                 # Edit a flashcard (auth)
//DELETE /vocabularies/{id}                # Delete a flashcard (auth)
//GET   /vocabularies/learn                # Progress overview (auth)
//GET   /vocabularies/learn/{language}     # Start a practice session (auth)
//PATCH /vocabularies/update_learning_status # Report a practice answer (auth)
//GET   /admin/users                       # Account list with stats (admin)
//GET   /admin/activity_log                # Audit log view (admin)
//PATCH /admin/users/{id}/...              # Account management (admin)

package api

import (
	adminAPI "vokabular/internal/app/server/api/http/admin"
	healthAPI "vokabular/internal/app/server/api/http/health"
	"vokabular/internal/app/server/api/http/middleware"
	"vokabular/internal/app/server/api/http/middleware/auth"
	"vokabular/internal/app/server/api/http/middleware/logger"
	translateAPI "vokabular/internal/app/server/api/http/translate"
	userAPI "vokabular/internal/app/server/api/http/user"
	vocabularyAPI "vokabular/internal/app/server/api/http/vocabulary"
	"vokabular/internal/app/server/config"
	"vokabular/internal/domain/admin"
	"vokabular/internal/domain/changelog"
	"vokabular/internal/domain/session"
	"vokabular/internal/domain/translation"
	"vokabular/internal/domain/user"
	"vokabular/internal/domain/vocabulary"
	"vokabular/internal/infrastructure/storage/postgres"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health     *healthAPI.Handler
	User       *userAPI.Handler
	Translate  *translateAPI.Handler
	Vocabulary *vocabularyAPI.Handler
	Admin      *adminAPI.Handler
}

// New builds a *chi.Mux with every operation registered through huma.
func New(storage *postgres.Storage, cfg *config.Config, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	apiConfig := huma.DefaultConfig("Vokabular API", "1.0.0")
	apiConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer"},
	}

	API := humachi.New(mux, apiConfig)

	h := handlers(storage, cfg, log)
	h.Health.SetupRoutes(API)
	h.User.SetupRoutes(API)
	h.Translate.SetupRoutes(API)
	h.Vocabulary.SetupRoutes(API)
	h.Admin.SetupRoutes(API)

	return mux
}

func handlers(storage *postgres.Storage, cfg *config.Config, log *slog.Logger) *Handlers {
	pool := storage.Pool()

	userRepo := postgres.NewUserRepository(pool, log)
	sessionRepo := postgres.NewSessionRepository(pool, log)
	sessionService := session.NewService(sessionRepo, log)
	authMW := auth.New(sessionService, userRepo, log)
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(log, middlewares.GetAllAndClear())

	userService := user.NewService(userRepo, user.NewCredentialsValidator(), log)
	middlewares.Add(loggerMW.Middleware())
	userHandler := userAPI.NewHandler(userService, sessionService, log, middlewares.GetAllAndClear())

	translationService := translation.NewService(cfg.DeepL.APIKey, cfg.DeepL.APIURL, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	translateHandler := translateAPI.NewHandler(translationService, log, middlewares.GetAllAndClear())

	vocabularyRepo := postgres.NewVocabularyRepository(pool, log)
	vocabularyService := vocabulary.NewService(vocabularyRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	vocabularyHandler := vocabularyAPI.NewHandler(vocabularyService, log, middlewares.GetAllAndClear())

	adminRepo := postgres.NewAdminRepository(pool, log)
	adminService := admin.NewService(adminRepo, log)
	changelogRepo := postgres.NewChangelogRepository(pool, log)
	changelogService := changelog.NewService(changelogRepo, log)
	middlewares.Add(authMW.Middleware())
	middlewares.Add(authMW.AdminOnly())
	middlewares.Add(loggerMW.Middleware())
	adminHandler := adminAPI.NewHandler(adminService, changelogService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health:     healthHandler,
		User:       userHandler,
		Translate:  translateHandler,
		Vocabulary: vocabularyHandler,
		Admin:      adminHandler,
	}
}
