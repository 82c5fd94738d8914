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

	"go_5_level_reader/internal/adapt"
	"go_5_level_reader/internal/config"
	"go_5_level_reader/internal/handlers"
	"go_5_level_reader/internal/llm"
	"go_5_level_reader/internal/middleware"
	"go_5_level_reader/internal/repository"
	"go_5_level_reader/internal/scheduler"
	"go_5_level_reader/internal/service"
	"go_5_level_reader/internal/tts"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	//　設定ファイル読み込み用の一時的なロガー設定
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	if err := config.LoadConfig("./configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(tempLogger)
	slog.SetDefault(logger)

	slog.Info("Application starting...")

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

	if err := repository.AutoMigrate(db); err != nil {
		slog.Error("Error migrating database schema", slog.Any("error", err))
		os.Exit(1)
	}

	// Dependency Injection
	contentRepo := repository.NewGormContentRepository()
	sourceRepo := repository.NewGormSourceRepository()

	generator := llm.NewClient(&config.Cfg)
	pacer := adapt.NewPacer(time.Duration(config.Cfg.LLM.RequestIntervalSeconds) * time.Second)
	engine := adapt.NewEngine(generator, pacer)
	mailer := service.NewMailer(&config.Cfg)

	var synthesizer tts.Synthesizer
	if config.Cfg.TTS.APIKey != "" {
		synthesizer = tts.NewGoogleClient(config.Cfg.TTS.APIKey, config.Cfg.TTS.LanguageCode)
	} else {
		slog.Warn("TTS API key is not set. Audio endpoints will be unavailable.")
	}

	contentService := service.NewContentService(db, contentRepo, synthesizer)
	ingestionService := service.NewIngestionService(db, engine, contentRepo, sourceRepo, mailer)

	contentHandler := handlers.NewContentHandler(contentService, logger)
	adminHandler := handlers.NewAdminHandler(ingestionService, logger)

	// Setup Router
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewStructuredLogger(logger))

	corsOptions := cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
		Debug:            false,
	}
	corsHandler := cors.New(corsOptions)
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// API Routes
	r.Route("/api/v1", func(r chi.Router) {
		// --- Public routes ---
		r.Route("/contents", func(r chi.Router) {
			r.Get("/", contentHandler.GetContents)
			r.Get("/{slug}", contentHandler.GetContentDetail)
			r.Get("/{slug}/levels/{level}", contentHandler.GetLeveledText)
			r.Get("/{slug}/levels/{level}/exercises", contentHandler.GetExercises)
			r.Get("/{slug}/levels/{level}/audio", contentHandler.GetAudio)
			r.Get("/{slug}/vocabulary", contentHandler.GetVocabulary)
		})

		// --- Admin routes (require JWT) ---
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.AdminAuthMiddleware(config.Cfg.Auth.Secret))
			// 取り込みはLLM呼び出しの連続で60秒を超えうるのでタイムアウトを広げる
			r.Use(chimiddleware.Timeout(15 * time.Minute))
			r.Route("/sources", func(r chi.Router) {
				r.Post("/", adminHandler.PostSource)
				r.Post("/{source_id}/process", adminHandler.ProcessSource)
			})
		})
	})

	// Health Check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Scheduler
	if config.Cfg.Scheduler.Enabled {
		sched := scheduler.New(ingestionService, logger)
		if err := sched.Start(config.Cfg.Scheduler.IntervalMinutes); err != nil {
			slog.Error("Error starting scheduler", slog.Any("error", err))
			os.Exit(1)
		}
		defer sched.Stop()
	}

	// Start Server
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

// newLogger はconfigのレベル/環境に応じたslogロガーを構築します
func newLogger(tempLogger *slog.Logger) *slog.Logger {
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
		tempLogger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

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
	return slog.New(handler)
}
