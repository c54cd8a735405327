// cmd/main.go
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"go_5_fit_keep/internal/config"
	"go_5_fit_keep/internal/handlers"
	"go_5_fit_keep/internal/middleware"
	"go_5_fit_keep/internal/model"
	"go_5_fit_keep/internal/repository"
	"go_5_fit_keep/internal/service"
	"go_5_fit_keep/internal/store"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)
	log.Println("Log Config Loading...")

	// Configを読み込み
	if err := config.LoadConfig("configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// === 設定に基づいて slog ロガーを初期化 ===
	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	// 開発環境ではtint、それ以外はJSONでログを出す
	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		tintOpts := &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		}
		handler = tint.NewHandler(os.Stderr, tintOpts)
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		jsonOpts := &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		}
		handler = slog.NewJSONHandler(os.Stderr, jsonOpts)
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...", slog.String("app", config.AppName), slog.String("version", config.AppVersion))

	// 2. Initialize Database Connection (GORM)
	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	// スキーマはユーザーテーブルとドキュメントテーブルの2つだけ
	if err := db.AutoMigrate(&model.User{}, &store.Document{}); err != nil {
		slog.Error("Error migrating database schema", slog.Any("error", err))
		os.Exit(1)
	}

	// 3. Dependency Injection
	hub := store.NewHub()
	docStore := store.NewGormDocumentStore(db, hub,
		config.Cfg.App.SyncRetryAttempts,
		time.Duration(config.Cfg.App.SyncRetryBaseMs)*time.Millisecond,
	)

	userRepo := repository.NewGormUserRepository()
	progressRepo := repository.NewDocumentProgressRepository(docStore)
	catalogRepo := repository.NewDocumentCatalogRepository(docStore)
	nutritionLogRepo := repository.NewDocumentNutritionLogRepository(docStore)

	mailer := service.NewMailer(&config.Cfg)
	catalogService := service.NewCatalogService(catalogRepo, config.Cfg.App.CatalogCacheTTLSeconds)
	trackerService := service.NewTrackerService(db, progressRepo, catalogRepo, userRepo, mailer)
	nutritionService := service.NewNutritionService(db, nutritionLogRepo, catalogRepo, userRepo, &config.Cfg)
	sessionService := service.NewSessionService(db, catalogService, trackerService, userRepo)
	userService := service.NewUserService(db, userRepo, mailer, &config.Cfg)

	userHandler := handlers.NewUserHandler(userService, logger)
	catalogHandler := handlers.NewCatalogHandler(catalogService, logger)
	progressHandler := handlers.NewProgressHandler(trackerService, logger)
	nutritionHandler := handlers.NewNutritionHandler(nutritionService, logger)
	sessionHandler := handlers.NewSessionHandler(sessionService, logger)
	wsHandler := handlers.NewWSHandler(hub, logger)

	// 4. Setup Router
	r := chi.NewRouter()

	// Middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-User-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	r.Use(cors.New(corsOptions).Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Post("/users", userHandler.Register)

		// --- Protected routes ---
		r.Group(func(r chi.Router) {
			if config.Cfg.Auth.Enabled {
				slog.Info("Applying JWT authentication middleware")
				r.Use(middleware.JWTAuthMiddleware(&config.Cfg))
			} else {
				slog.Warn("Authentication disabled, applying development user middleware")
				r.Use(middleware.DevUserContextMiddleware)
			}

			// Profile routes
			r.Get("/users/me", userHandler.GetMe)
			r.Patch("/users/me", userHandler.PatchMe)

			// Workout catalog routes
			r.Route("/programs", func(r chi.Router) {
				r.Get("/", catalogHandler.ListPrograms)
				r.Route("/{programID}", func(r chi.Router) {
					r.Get("/", catalogHandler.GetProgram)
					r.Get("/status", progressHandler.GetProgramStatus)
					r.Route("/weeks/{weekID}", func(r chi.Router) {
						r.Get("/", catalogHandler.GetWeek)
						r.Get("/status", progressHandler.GetWeekStatus)
						r.Route("/days/{dayID}", func(r chi.Router) {
							r.Get("/", catalogHandler.GetDay)
							r.Route("/progress", func(r chi.Router) {
								r.Get("/", progressHandler.GetDayProgress)
								r.Post("/toggle", progressHandler.ToggleExercise)
								r.Post("/notes", progressHandler.AddNote)
								r.Post("/complete", progressHandler.CompleteDay)
							})
						})
					})
				})
			})

			// Food catalog routes
			r.Route("/foods", func(r chi.Router) {
				r.Get("/", catalogHandler.ListFoods)
				r.Get("/{foodID}", catalogHandler.GetFood)
			})

			// Nutrition routes
			r.Route("/nutrition", func(r chi.Router) {
				r.Get("/targets", nutritionHandler.GetTargets)
				r.Route("/{date}", func(r chi.Router) {
					r.Get("/", nutritionHandler.GetDailyLog)
					r.Post("/meals", nutritionHandler.PostMeal)
					r.Put("/meals/{mealID}", nutritionHandler.PutMeal)
					r.Delete("/meals/{mealID}", nutritionHandler.DeleteMeal)
				})
			})

			// Session routes
			r.Route("/session", func(r chi.Router) {
				r.Get("/", sessionHandler.GetSession)
				r.Post("/select-program", sessionHandler.SelectProgram)
				r.Post("/start-program", sessionHandler.StartProgram)
				r.Post("/select-week", sessionHandler.SelectWeek)
				r.Post("/select-day", sessionHandler.SelectDay)
				r.Post("/back", sessionHandler.Back)
				r.Post("/calendar/open", sessionHandler.OpenCalendar)
				r.Post("/calendar/close", sessionHandler.CloseCalendar)
			})

			// Document change feed
			r.Get("/ws", wsHandler.Stream)
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sqlDB, err := db.DB()
		if err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not get DB object", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// 5. Start Server
	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
