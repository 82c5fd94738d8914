// cmd/ingest/main.go
//
// 取り込みキューをコマンドラインから操作するツール。
//
//	ingest -limit 5          pending のソースを最大5件処理する
//	ingest -token admin@ops  管理APIのJWTを発行して標準出力に表示する
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"go_5_level_reader/internal/adapt"
	"go_5_level_reader/internal/config"
	"go_5_level_reader/internal/llm"
	"go_5_level_reader/internal/middleware"
	"go_5_level_reader/internal/repository"
	"go_5_level_reader/internal/service"
)

func main() {
	limit := flag.Int("limit", 1, "number of pending sources to process")
	tokenSubject := flag.String("token", "", "mint an admin JWT for the given subject and exit")
	configPath := flag.String("config", "./configs", "config directory")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := config.LoadConfig(*configPath); err != nil {
		logger.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	if *tokenSubject != "" {
		token, err := middleware.MintAdminToken(config.Cfg.Auth.Secret, *tokenSubject, 24*time.Hour)
		if err != nil {
			logger.Error("Error minting admin token", slog.Any("error", err))
			os.Exit(1)
		}
		fmt.Println(token)
		return
	}

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		logger.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := repository.AutoMigrate(db); err != nil {
		logger.Error("Error migrating database schema", slog.Any("error", err))
		os.Exit(1)
	}

	contentRepo := repository.NewGormContentRepository()
	sourceRepo := repository.NewGormSourceRepository()
	generator := llm.NewClient(&config.Cfg)
	pacer := adapt.NewPacer(time.Duration(config.Cfg.LLM.RequestIntervalSeconds) * time.Second)
	engine := adapt.NewEngine(generator, pacer)
	mailer := service.NewMailer(&config.Cfg)
	ingestion := service.NewIngestionService(db, engine, contentRepo, sourceRepo, mailer)

	ctx := middleware.WithLogger(context.Background(), logger)
	processed, failed, err := ingestion.ProcessPending(ctx, *limit)
	if err != nil {
		logger.Error("Error processing pending sources", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("Done", slog.Int("processed", processed), slog.Int("failed", failed))
	if failed > 0 {
		os.Exit(1)
	}
}
