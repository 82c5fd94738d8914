// internal/scheduler/scheduler.go
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"go_5_level_reader/internal/service"

	"github.com/go-co-op/gocron"
)

// 1回の実行で取り込むソース数の上限。LLM呼び出しが長いので控えめにする
const drainBatchSize = 3

// Scheduler は取り込みキューを定期的に処理します
type Scheduler struct {
	scheduler *gocron.Scheduler
	ingestion service.IngestionService
	logger    *slog.Logger
}

func New(ingestion service.IngestionService, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		ingestion: ingestion,
		logger:    logger,
	}
}

// Start は intervalMinutes 間隔のドレインジョブを登録して非同期に開始します。
// gocronのSingletonModeで実行の重なりを防ぐ
func (s *Scheduler) Start(intervalMinutes int) error {
	_, err := s.scheduler.Every(intervalMinutes).Minutes().SingletonMode().Do(s.drainPending)
	if err != nil {
		return err
	}
	s.scheduler.StartAsync()
	s.logger.Info("Ingestion scheduler started", slog.Int("interval_minutes", intervalMinutes))
	return nil
}

func (s *Scheduler) Stop() {
	s.scheduler.Stop()
	s.logger.Info("Ingestion scheduler stopped")
}

func (s *Scheduler) drainPending() {
	ctx := context.Background()
	processed, failed, err := s.ingestion.ProcessPending(ctx, drainBatchSize)
	if err != nil {
		s.logger.Error("Failed to drain pending sources", slog.Any("error", err))
		return
	}
	if processed > 0 || failed > 0 {
		s.logger.Info("Pending sources processed", slog.Int("processed", processed), slog.Int("failed", failed))
	}
}
