// internal/service/ingestion_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"go_5_level_reader/internal/adapt"
	"go_5_level_reader/internal/config"
	"go_5_level_reader/internal/middleware"
	"go_5_level_reader/internal/model"
	"go_5_level_reader/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IngestionService はソーステキストから5レベル分の成果物一式を生成して保存します。
// 保存はオール・オア・ナッシング: どこか1レベルでも失敗したらDBには何も残さない。
type IngestionService interface {
	EnqueueSource(ctx context.Context, req *model.PostSourceRequest) (*model.Source, error)
	ProcessSource(ctx context.Context, sourceID uuid.UUID) error
	// ProcessPending は pending のソースを古い順に最大 limit 件処理し、
	// 成功件数と失敗件数を返す。個々の失敗はソース側に記録して次へ進む
	ProcessPending(ctx context.Context, limit int) (processed, failed int, err error)
}

type ingestionService struct {
	db          *gorm.DB
	engine      *adapt.Engine
	contentRepo repository.ContentRepository
	sourceRepo  repository.SourceRepository
	mailer      Mailer
}

func NewIngestionService(db *gorm.DB, engine *adapt.Engine, contentRepo repository.ContentRepository, sourceRepo repository.SourceRepository, mailer Mailer) IngestionService {
	return &ingestionService{
		db:          db,
		engine:      engine,
		contentRepo: contentRepo,
		sourceRepo:  sourceRepo,
		mailer:      mailer,
	}
}

func (s *ingestionService) EnqueueSource(ctx context.Context, req *model.PostSourceRequest) (*model.Source, error) {
	logger := middleware.GetLogger(ctx).With("slug", req.Slug)

	// slugはキューと公開済みコンテンツの両方に対して一意
	exists, err := s.sourceRepo.CheckSlugExists(ctx, s.db, req.Slug)
	if err != nil {
		return nil, model.ErrInternalServer
	}
	if !exists {
		exists, err = s.contentRepo.CheckSlugExists(ctx, s.db, req.Slug)
		if err != nil {
			return nil, model.ErrInternalServer
		}
	}
	if exists {
		logger.Warn("Slug already in use")
		return nil, model.NewAppError("SLUG_CONFLICT", "このスラッグは既に使用されています。", "slug", model.ErrConflict)
	}

	source := &model.Source{
		SourceID: uuid.New(),
		Slug:     req.Slug,
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Text:     req.Text,
		Status:   model.SourceStatusPending,
	}
	if err := s.sourceRepo.Create(ctx, s.db, source); err != nil {
		return nil, model.ErrInternalServer
	}

	logger.Info("Source enqueued", "source_id", source.SourceID.String())
	return source, nil
}

func (s *ingestionService) ProcessSource(ctx context.Context, sourceID uuid.UUID) error {
	logger := middleware.GetLogger(ctx).With("source_id", sourceID.String())

	source, err := s.sourceRepo.FindByID(ctx, s.db, sourceID)
	if err != nil {
		return err
	}
	if source.Status != model.SourceStatusPending {
		logger.Warn("Source is not pending, skipping", "status", string(source.Status))
		return model.NewAppError("SOURCE_NOT_PENDING", "このソースは処理待ちではありません。", "", model.ErrConflict)
	}

	// status=pending の行だけを原子的に processing へ更新して取得する。
	// 同じソースへの同時呼び出しは片方しか通れない
	claimed, err := s.sourceRepo.ClaimPending(ctx, s.db, source.SourceID)
	if err != nil {
		return err
	}
	if !claimed {
		logger.Warn("Source already claimed by another worker")
		return model.NewAppError("SOURCE_NOT_PENDING", "このソースは処理待ちではありません。", "", model.ErrConflict)
	}

	if err := s.ingest(ctx, source); err != nil {
		logger.Error("Ingestion failed", "slug", source.Slug, "error", err)
		s.markFailed(ctx, source, err)
		return err
	}

	if err := s.sourceRepo.UpdateStatus(ctx, s.db, source.SourceID, model.SourceStatusDone, ""); err != nil {
		// コンテンツ自体は公開済み。ステータス更新失敗は記録に留める
		logger.Error("Failed to mark source as done", "error", err)
	}
	logger.Info("Ingestion completed", "slug", source.Slug)
	return nil
}

func (s *ingestionService) ProcessPending(ctx context.Context, limit int) (int, int, error) {
	logger := middleware.GetLogger(ctx)

	sources, err := s.sourceRepo.FindPending(ctx, s.db, limit)
	if err != nil {
		return 0, 0, err
	}

	processed, failed := 0, 0
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return processed, failed, err
		}
		if err := s.ProcessSource(ctx, src.SourceID); err != nil {
			// 失敗はソース側に記録済み。キューの残りを止めない
			logger.Warn("Skipping failed source", "source_id", src.SourceID.String())
			failed++
			continue
		}
		processed++
	}
	return processed, failed, nil
}

// ingest が生成パイプラインの本体。成果物はメモリ上で全て組み立ててから
// 1トランザクションで保存する
func (s *ingestionService) ingest(ctx context.Context, source *model.Source) error {
	logger := middleware.GetLogger(ctx).With("slug", source.Slug)

	// 1. 全レベルの本文
	texts, err := s.engine.AdaptAllLevels(ctx, source.Text)
	if err != nil {
		return err
	}

	// 2. レベル別見出し。構造が壊れていた場合のみ元の見出しで代替する
	headlines, err := s.engine.GenerateHeadlines(ctx, source.Title, source.Subtitle, texts)
	if err != nil {
		if !errors.Is(err, model.ErrMalformedStructure) {
			return err
		}
		logger.Warn("Headline generation returned malformed output, falling back to source headline", "error", err)
		headlines = make(map[model.Level]adapt.Headline, len(model.Levels))
		for _, lv := range model.Levels {
			headlines[lv] = adapt.Headline{Title: source.Title, Subtitle: source.Subtitle}
		}
	}

	// 3. レベル別の練習問題
	exercises := make(map[model.Level]string, len(model.Levels))
	for _, lv := range model.Levels {
		set, err := s.engine.GenerateExercises(ctx, texts[lv], lv)
		if err != nil {
			return fmt.Errorf("exercises for %s: %w", lv, err)
		}
		encoded, err := json.Marshal(set)
		if err != nil {
			return fmt.Errorf("%w: encode exercises for %s: %v", model.ErrInternalServer, lv, err)
		}
		exercises[lv] = string(encoded)
	}

	// 4. 語彙リスト
	vocabItems, err := s.engine.GenerateVocabulary(ctx, texts)
	if err != nil {
		return err
	}

	// 5. 保存直前の最終チェック。ここを抜けたものだけがDBに入る
	for _, lv := range model.Levels {
		if texts[lv] == "" || exercises[lv] == "" {
			return fmt.Errorf("%w: missing artifacts for %s", model.ErrIncompleteLevelCoverage, lv)
		}
		if _, ok := headlines[lv]; !ok {
			return fmt.Errorf("%w: missing headline for %s", model.ErrIncompleteLevelCoverage, lv)
		}
	}

	content := &model.Content{
		ContentID:       uuid.New(),
		Slug:            source.Slug,
		Title:           source.Title,
		Subtitle:        source.Subtitle,
		SourceText:      source.Text,
		SourceWordCount: adapt.WordCount(source.Text),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.contentRepo.Create(ctx, tx, content); err != nil {
			return err
		}
		for _, lv := range model.Levels {
			h := headlines[lv]
			wc := adapt.WordCount(texts[lv])
			version := &model.ContentVersion{
				VersionID:       uuid.New(),
				ContentID:       content.ContentID,
				Level:           lv,
				Text:            texts[lv],
				Title:           h.Title,
				Subtitle:        h.Subtitle,
				WordCount:       wc,
				ReadTimeMinutes: adapt.ReadTimeMinutes(wc),
				ExercisesJSON:   exercises[lv],
			}
			if err := s.contentRepo.CreateVersion(ctx, tx, version); err != nil {
				return err
			}
		}
		entries := make([]model.VocabularyEntry, 0, len(vocabItems))
		for i, item := range vocabItems {
			entries = append(entries, model.VocabularyEntry{
				EntryID:    uuid.New(),
				ContentID:  content.ContentID,
				Word:       item.Word,
				Definition: item.Definition,
				Level:      item.Level,
				Position:   i,
			})
		}
		if err := s.contentRepo.CreateVocabulary(ctx, tx, entries); err != nil {
			return err
		}
		// Ready を立てるのはトランザクションの最後。コミットと同時に公開される
		return s.contentRepo.MarkReady(ctx, tx, content.ContentID)
	})
	if err != nil {
		return fmt.Errorf("persist content: %w", err)
	}
	return nil
}

// truncateNote はmaxバイト以内に切り詰めます。マルチバイト文字の途中では切らない
func truncateNote(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

// markFailed はソースを失敗としてマークし、運用者に通知する。
// 通知やステータス更新自体の失敗はログに残すのみ
func (s *ingestionService) markFailed(ctx context.Context, source *model.Source, cause error) {
	logger := middleware.GetLogger(ctx).With("source_id", source.SourceID.String())

	note := truncateNote(cause.Error(), 500)
	if err := s.sourceRepo.UpdateStatus(ctx, s.db, source.SourceID, model.SourceStatusFailed, note); err != nil {
		logger.Error("Failed to mark source as failed", "error", err)
	}

	if s.mailer == nil || config.Cfg.Mailer.To == "" {
		return
	}
	subject := fmt.Sprintf("[%s] Ingestion failed: %s", config.AppName, source.Slug)
	body := fmt.Sprintf(
		"Ingestion failed.\n\nSlug: %s\nTitle: %s\nSource ID: %s\nFailed at: %s\n\nError:\n%s\n",
		source.Slug, source.Title, source.SourceID.String(), time.Now().Format(time.RFC3339), cause.Error(),
	)
	if err := s.mailer.Send(ctx, config.Cfg.Mailer.To, subject, body); err != nil {
		logger.Error("Failed to send ingestion failure report", "error", err)
	}
}
