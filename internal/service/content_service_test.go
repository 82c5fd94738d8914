// internal/service/content_service_test.go
package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"go_5_level_reader/internal/model"
	"go_5_level_reader/internal/repository/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// tts.Synthesizer のテスト用スタブ
type stubSynthesizer struct {
	err error
}

func (s *stubSynthesizer) Synthesize(_ context.Context, text string) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []byte("mp3:" + text), nil
}

func sampleContent() *model.Content {
	return &model.Content{
		ContentID:       uuid.New(),
		Slug:            "a-long-journey",
		Title:           "A Long Journey",
		Subtitle:        "One family moves across the country",
		SourceWordCount: 100,
		Ready:           true,
		CreatedAt:       time.Now(),
	}
}

func versionsForAllLevels(contentID uuid.UUID) []model.ContentVersion {
	versions := make([]model.ContentVersion, 0, len(model.Levels))
	for _, lv := range model.Levels {
		versions = append(versions, model.ContentVersion{
			VersionID:       uuid.New(),
			ContentID:       contentID,
			Level:           lv,
			Text:            "Text for " + lv.String(),
			Title:           "Title " + lv.String(),
			WordCount:       100,
			ReadTimeMinutes: 1,
			ExercisesJSON:   `{}`,
		})
	}
	return versions
}

func Test_contentService_GetContentDetail(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBIngestion()

	t.Run("正常系: 5レベルのサマリがA1からC1の順で返る", func(t *testing.T) {
		content := sampleContent()
		content.Versions = versionsForAllLevels(content.ContentID)
		contentRepo := mocks.NewContentRepository(t)
		contentRepo.On("FindReadyBySlugWithVersions", ctx, mock.AnythingOfType("*gorm.DB"), content.Slug).
			Return(content, nil).Once()

		svc := NewContentService(db, contentRepo, nil)
		detail, err := svc.GetContentDetail(ctx, content.Slug)
		require.NoError(t, err)
		require.Len(t, detail.Levels, 5)
		for i, lv := range model.Levels {
			assert.Equal(t, lv, detail.Levels[i].Level)
		}
	})

	t.Run("異常系: レベルが欠けているreadyコンテンツは整合性エラー", func(t *testing.T) {
		content := sampleContent()
		content.Versions = versionsForAllLevels(content.ContentID)[:4]
		contentRepo := mocks.NewContentRepository(t)
		contentRepo.On("FindReadyBySlugWithVersions", ctx, mock.AnythingOfType("*gorm.DB"), content.Slug).
			Return(content, nil).Once()

		svc := NewContentService(db, contentRepo, nil)
		_, err := svc.GetContentDetail(ctx, content.Slug)
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrIncompleteLevelCoverage))
	})

	t.Run("異常系: 存在しないslugはNotFoundを伝播する", func(t *testing.T) {
		contentRepo := mocks.NewContentRepository(t)
		contentRepo.On("FindReadyBySlugWithVersions", ctx, mock.AnythingOfType("*gorm.DB"), "missing").
			Return(nil, model.ErrNotFound).Once()

		svc := NewContentService(db, contentRepo, nil)
		_, err := svc.GetContentDetail(ctx, "missing")
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrNotFound))
	})
}

func Test_contentService_GetLeveledText(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBIngestion()

	t.Run("正常系: 指定レベルの本文を返す", func(t *testing.T) {
		content := sampleContent()
		version := &model.ContentVersion{
			ContentID: content.ContentID, Level: model.LevelB1,
			Text: "B1 text", Title: "B1 title", WordCount: 2, ReadTimeMinutes: 1,
		}
		contentRepo := mocks.NewContentRepository(t)
		contentRepo.On("FindReadyBySlug", ctx, mock.AnythingOfType("*gorm.DB"), content.Slug).
			Return(content, nil).Once()
		contentRepo.On("FindVersion", ctx, mock.AnythingOfType("*gorm.DB"), content.ContentID, model.LevelB1).
			Return(version, nil).Once()

		svc := NewContentService(db, contentRepo, nil)
		got, err := svc.GetLeveledText(ctx, content.Slug, model.LevelB1)
		require.NoError(t, err)
		assert.Equal(t, "B1 text", got.Text)
		assert.Equal(t, model.LevelB1, got.Level)
	})

	t.Run("異常系: 不明なレベルはInvalidInput", func(t *testing.T) {
		contentRepo := mocks.NewContentRepository(t)
		svc := NewContentService(db, contentRepo, nil)
		_, err := svc.GetLeveledText(ctx, "any", model.Level("D1"))
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrInvalidInput))
	})
}

func Test_contentService_GetExercises(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBIngestion()
	content := sampleContent()

	version := &model.ContentVersion{
		ContentID: content.ContentID, Level: model.LevelA2,
		ExercisesJSON: `{"comprehension":[],"vocabularyMatching":{"pairs":[]},"gapFill":{"text":"","blanks":[],"wordBank":[]},"wordOrder":{"sentences":[]},"trueFalse":{"statements":[]},"discussion":["Why?"]}`,
	}
	contentRepo := mocks.NewContentRepository(t)
	contentRepo.On("FindReadyBySlug", ctx, mock.AnythingOfType("*gorm.DB"), content.Slug).
		Return(content, nil).Once()
	contentRepo.On("FindVersion", ctx, mock.AnythingOfType("*gorm.DB"), content.ContentID, model.LevelA2).
		Return(version, nil).Once()

	svc := NewContentService(db, contentRepo, nil)
	set, err := svc.GetExercises(ctx, content.Slug, model.LevelA2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Why?"}, set.Discussion)
}

func Test_contentService_GetVocabulary(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBIngestion()
	content := sampleContent()

	entries := []model.VocabularyEntry{
		{Word: "the", Definition: "article", Level: model.LevelA1, Position: 0},
		{Word: "migration", Definition: "moving to a new place", Level: model.LevelB2, Position: 1},
		{Word: "giraffe", Definition: "a tall animal", Level: model.LevelA1, Position: 2},
	}

	t.Run("正常系: 読者レベルでフィルタされた語彙が返る", func(t *testing.T) {
		contentRepo := mocks.NewContentRepository(t)
		contentRepo.On("FindReadyBySlug", ctx, mock.AnythingOfType("*gorm.DB"), content.Slug).
			Return(content, nil).Once()
		contentRepo.On("FindVocabulary", ctx, mock.AnythingOfType("*gorm.DB"), content.ContentID).
			Return(entries, nil).Once()

		svc := NewContentService(db, contentRepo, nil)
		got, err := svc.GetVocabulary(ctx, content.Slug, model.LevelB1)
		require.NoError(t, err)
		// "the" はデナイリスト、"giraffe" はA1申告でB1読者から除外される
		require.Len(t, got, 1)
		assert.Equal(t, "migration", got[0].Word)
	})

	t.Run("正常系: レベル未指定はデナイリスト以外を全て返す", func(t *testing.T) {
		contentRepo := mocks.NewContentRepository(t)
		contentRepo.On("FindReadyBySlug", ctx, mock.AnythingOfType("*gorm.DB"), content.Slug).
			Return(content, nil).Once()
		contentRepo.On("FindVocabulary", ctx, mock.AnythingOfType("*gorm.DB"), content.ContentID).
			Return(entries, nil).Once()

		svc := NewContentService(db, contentRepo, nil)
		got, err := svc.GetVocabulary(ctx, content.Slug, model.LevelUnknown)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "migration", got[0].Word)
		assert.Equal(t, "giraffe", got[1].Word)
	})
}

func Test_contentService_GetAudio(t *testing.T) {
	ctx := context.Background()
	db := setupTestDBIngestion()
	content := sampleContent()

	version := &model.ContentVersion{
		ContentID: content.ContentID, Level: model.LevelA1,
		Text: "First sentence. Second sentence!", Title: "t", WordCount: 4, ReadTimeMinutes: 1,
	}

	t.Run("正常系: 文ごとのチャンクがbase64音声付きで返る", func(t *testing.T) {
		contentRepo := mocks.NewContentRepository(t)
		contentRepo.On("FindReadyBySlug", ctx, mock.AnythingOfType("*gorm.DB"), content.Slug).
			Return(content, nil).Once()
		contentRepo.On("FindVersion", ctx, mock.AnythingOfType("*gorm.DB"), content.ContentID, model.LevelA1).
			Return(version, nil).Once()

		svc := NewContentService(db, contentRepo, &stubSynthesizer{})
		chunks, err := svc.GetAudio(ctx, content.Slug, model.LevelA1)
		require.NoError(t, err)
		require.NotEmpty(t, chunks)
		assert.Equal(t, 0, chunks[0].Index)
		decoded, err := base64.StdEncoding.DecodeString(chunks[0].Audio)
		require.NoError(t, err)
		assert.Contains(t, string(decoded), "mp3:")
	})

	t.Run("異常系: 合成器未構成はエラー", func(t *testing.T) {
		contentRepo := mocks.NewContentRepository(t)
		svc := NewContentService(db, contentRepo, nil)
		_, err := svc.GetAudio(ctx, content.Slug, model.LevelA1)
		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrUnavailable))
	})
}
