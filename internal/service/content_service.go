// internal/service/content_service.go
package service

import (
	"context"
	"encoding/base64"
	"encoding/json"

	"go_5_level_reader/internal/config"
	"go_5_level_reader/internal/middleware"
	"go_5_level_reader/internal/model"
	"go_5_level_reader/internal/repository"
	"go_5_level_reader/internal/tts"
	"go_5_level_reader/internal/vocab"

	"gorm.io/gorm"
)

type ContentService interface {
	ListContents(ctx context.Context) ([]*model.ContentSummaryResponse, error)
	GetContentDetail(ctx context.Context, slug string) (*model.ContentDetailResponse, error)
	GetLeveledText(ctx context.Context, slug string, level model.Level) (*model.LeveledTextResponse, error)
	GetExercises(ctx context.Context, slug string, level model.Level) (*model.ExerciseSet, error)
	// GetVocabulary は読者レベルでフィルタした語彙を返す。
	// readerLevel が未知でも失敗にはせず、許容的にフィルタする
	GetVocabulary(ctx context.Context, slug string, readerLevel model.Level) ([]model.VocabularyEntry, error)
	GetAudio(ctx context.Context, slug string, level model.Level) ([]model.AudioChunkResponse, error)
}

type contentService struct {
	db          *gorm.DB
	contentRepo repository.ContentRepository
	synthesizer tts.Synthesizer // nilならTTS未構成
}

func NewContentService(db *gorm.DB, contentRepo repository.ContentRepository, synthesizer tts.Synthesizer) ContentService {
	return &contentService{
		db:          db,
		contentRepo: contentRepo,
		synthesizer: synthesizer,
	}
}

func (s *contentService) ListContents(ctx context.Context) ([]*model.ContentSummaryResponse, error) {
	contents, err := s.contentRepo.ListReady(ctx, s.db)
	if err != nil {
		return nil, model.ErrInternalServer
	}
	responses := make([]*model.ContentSummaryResponse, 0, len(contents))
	for _, c := range contents {
		responses = append(responses, &model.ContentSummaryResponse{
			ContentID:       c.ContentID,
			Slug:            c.Slug,
			Title:           c.Title,
			Subtitle:        c.Subtitle,
			SourceWordCount: c.SourceWordCount,
			CreatedAt:       c.CreatedAt,
		})
	}
	return responses, nil
}

func (s *contentService) GetContentDetail(ctx context.Context, slug string) (*model.ContentDetailResponse, error) {
	logger := middleware.GetLogger(ctx).With("slug", slug)

	content, err := s.contentRepo.FindReadyBySlugWithVersions(ctx, s.db, slug)
	if err != nil {
		return nil, err
	}

	// readyなアイテムは5レベル揃っているはず。そうでなければデータ整合性違反
	if len(content.Versions) != len(model.Levels) {
		logger.Error("Ready content has incomplete level coverage",
			"content_id", content.ContentID.String(),
			"versions", len(content.Versions),
		)
		return nil, model.NewAppError("DATA_INTEGRITY", "コンテンツのレベルデータが不完全です。", "", model.ErrIncompleteLevelCoverage)
	}

	byLevel := make(map[model.Level]model.ContentVersion, len(content.Versions))
	for _, v := range content.Versions {
		byLevel[v.Level] = v
	}

	levels := make([]model.ContentLevelSummary, 0, len(model.Levels))
	for _, lv := range model.Levels {
		v, ok := byLevel[lv]
		if !ok {
			logger.Error("Ready content is missing a canonical level", "level", lv.String())
			return nil, model.NewAppError("DATA_INTEGRITY", "コンテンツのレベルデータが不完全です。", "", model.ErrIncompleteLevelCoverage)
		}
		levels = append(levels, model.ContentLevelSummary{
			Level:           lv,
			Title:           v.Title,
			Subtitle:        v.Subtitle,
			WordCount:       v.WordCount,
			ReadTimeMinutes: v.ReadTimeMinutes,
		})
	}

	return &model.ContentDetailResponse{
		ContentID: content.ContentID,
		Slug:      content.Slug,
		Title:     content.Title,
		Subtitle:  content.Subtitle,
		Levels:    levels,
		CreatedAt: content.CreatedAt,
	}, nil
}

func (s *contentService) GetLeveledText(ctx context.Context, slug string, level model.Level) (*model.LeveledTextResponse, error) {
	if !level.IsValid() {
		return nil, model.NewAppError("INVALID_LEVEL", "不明なレベルが指定されました。", "level", model.ErrInvalidInput)
	}
	content, err := s.contentRepo.FindReadyBySlug(ctx, s.db, slug)
	if err != nil {
		return nil, err
	}
	version, err := s.contentRepo.FindVersion(ctx, s.db, content.ContentID, level)
	if err != nil {
		return nil, err
	}
	return &model.LeveledTextResponse{
		Slug:            content.Slug,
		Level:           version.Level,
		Title:           version.Title,
		Subtitle:        version.Subtitle,
		Text:            version.Text,
		WordCount:       version.WordCount,
		ReadTimeMinutes: version.ReadTimeMinutes,
	}, nil
}

func (s *contentService) GetExercises(ctx context.Context, slug string, level model.Level) (*model.ExerciseSet, error) {
	logger := middleware.GetLogger(ctx).With("slug", slug, "level", level.String())

	if !level.IsValid() {
		return nil, model.NewAppError("INVALID_LEVEL", "不明なレベルが指定されました。", "level", model.ErrInvalidInput)
	}
	content, err := s.contentRepo.FindReadyBySlug(ctx, s.db, slug)
	if err != nil {
		return nil, err
	}
	version, err := s.contentRepo.FindVersion(ctx, s.db, content.ContentID, level)
	if err != nil {
		return nil, err
	}

	var set model.ExerciseSet
	if err := json.Unmarshal([]byte(version.ExercisesJSON), &set); err != nil {
		// 保存前に検証済みのJSONなので通常ここには来ない
		logger.Error("Stored exercise JSON failed to unmarshal", "error", err)
		return nil, model.ErrInternalServer
	}
	return &set, nil
}

func (s *contentService) GetVocabulary(ctx context.Context, slug string, readerLevel model.Level) ([]model.VocabularyEntry, error) {
	content, err := s.contentRepo.FindReadyBySlug(ctx, s.db, slug)
	if err != nil {
		return nil, err
	}
	entries, err := s.contentRepo.FindVocabulary(ctx, s.db, content.ContentID)
	if err != nil {
		return nil, model.ErrInternalServer
	}
	return vocab.FilterForLevel(entries, readerLevel), nil
}

func (s *contentService) GetAudio(ctx context.Context, slug string, level model.Level) ([]model.AudioChunkResponse, error) {
	logger := middleware.GetLogger(ctx).With("slug", slug, "level", level.String())

	if s.synthesizer == nil {
		return nil, model.NewAppError("TTS_NOT_CONFIGURED", "音声合成が構成されていません。", "", model.ErrUnavailable)
	}

	text, err := s.GetLeveledText(ctx, slug, level)
	if err != nil {
		return nil, err
	}

	// 本文はレベルに関わらずソースと同じ長さなので、分割数もレベル間でほぼ一定になる
	chunks := tts.SplitSentences(text.Text, config.TTSMaxChunkLength)
	responses := make([]model.AudioChunkResponse, 0, len(chunks))
	for i, chunk := range chunks {
		audio, err := s.synthesizer.Synthesize(ctx, chunk)
		if err != nil {
			logger.Error("TTS synthesis failed", "chunk", i, "error", err)
			return nil, model.NewAppError("TTS_FAILED", "音声合成に失敗しました。", "", err)
		}
		responses = append(responses, model.AudioChunkResponse{
			Index: i,
			Text:  chunk,
			Audio: base64.StdEncoding.EncodeToString(audio),
		})
	}
	return responses, nil
}
