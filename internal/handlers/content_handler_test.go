// internal/handlers/content_handler_test.go
package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go_5_level_reader/internal/handlers"
	"go_5_level_reader/internal/model"
	"go_5_level_reader/internal/service/mocks"
)

func newContentRouter(svc *mocks.ContentService) *chi.Mux {
	h := handlers.NewContentHandler(svc, nil)
	r := chi.NewRouter()
	r.Route("/api/v1/contents", func(r chi.Router) {
		r.Get("/", h.GetContents)
		r.Get("/{slug}", h.GetContentDetail)
		r.Get("/{slug}/levels/{level}", h.GetLeveledText)
		r.Get("/{slug}/levels/{level}/exercises", h.GetExercises)
		r.Get("/{slug}/levels/{level}/audio", h.GetAudio)
		r.Get("/{slug}/vocabulary", h.GetVocabulary)
	})
	return r
}

func TestContentHandler_GetContents(t *testing.T) {
	tests := []struct {
		name       string
		setupMock  func(svc *mocks.ContentService)
		wantStatus int
		wantCount  int
	}{
		{
			name: "正常系: 一覧が返る",
			setupMock: func(svc *mocks.ContentService) {
				svc.On("ListContents", mock.Anything).Return([]*model.ContentSummaryResponse{
					{ContentID: uuid.New(), Slug: "one", Title: "One", CreatedAt: time.Now()},
					{ContentID: uuid.New(), Slug: "two", Title: "Two", CreatedAt: time.Now()},
				}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCount:  2,
		},
		{
			name: "正常系: 空の一覧はnullでなく[]が返る",
			setupMock: func(svc *mocks.ContentService) {
				svc.On("ListContents", mock.Anything).Return(nil, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantCount:  0,
		},
		{
			name: "異常系: サービスエラーは500",
			setupMock: func(svc *mocks.ContentService) {
				svc.On("ListContents", mock.Anything).Return(nil, model.ErrInternalServer).Once()
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := mocks.NewContentService(t)
			tt.setupMock(svc)
			router := newContentRouter(svc)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/contents/", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				var got []json.RawMessage
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
				assert.Len(t, got, tt.wantCount)
			}
		})
	}
}

func TestContentHandler_GetLeveledText(t *testing.T) {
	t.Run("正常系: レベル指定はケース非依存", func(t *testing.T) {
		svc := mocks.NewContentService(t)
		svc.On("GetLeveledText", mock.Anything, "a-long-journey", model.LevelB1).
			Return(&model.LeveledTextResponse{Slug: "a-long-journey", Level: model.LevelB1, Text: "text"}, nil).Once()
		router := newContentRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/contents/a-long-journey/levels/b1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got model.LeveledTextResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, model.LevelB1, got.Level)
	})

	t.Run("異常系: 存在しないslugは404", func(t *testing.T) {
		svc := mocks.NewContentService(t)
		svc.On("GetLeveledText", mock.Anything, "missing", model.LevelA1).
			Return(nil, model.ErrNotFound).Once()
		router := newContentRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/contents/missing/levels/A1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("異常系: 不明なレベルは400", func(t *testing.T) {
		svc := mocks.NewContentService(t)
		svc.On("GetLeveledText", mock.Anything, "a-long-journey", model.LevelUnknown).
			Return(nil, model.NewAppError("INVALID_LEVEL", "不明なレベルが指定されました。", "level", model.ErrInvalidInput)).Once()
		router := newContentRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/contents/a-long-journey/levels/Z9", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestContentHandler_GetVocabulary(t *testing.T) {
	t.Run("正常系: levelクエリが読者レベルとして渡る", func(t *testing.T) {
		svc := mocks.NewContentService(t)
		svc.On("GetVocabulary", mock.Anything, "a-long-journey", model.LevelB2).
			Return([]model.VocabularyEntry{{Word: "migration", Definition: "moving", Level: model.LevelB2}}, nil).Once()
		router := newContentRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/contents/a-long-journey/vocabulary?level=B2", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("正常系: levelクエリ省略はレベル未知として扱いエラーにしない", func(t *testing.T) {
		svc := mocks.NewContentService(t)
		svc.On("GetVocabulary", mock.Anything, "a-long-journey", model.LevelUnknown).
			Return([]model.VocabularyEntry{}, nil).Once()
		router := newContentRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/contents/a-long-journey/vocabulary", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]", rec.Body.String())
	})
}

func TestContentHandler_GetExercises(t *testing.T) {
	svc := mocks.NewContentService(t)
	svc.On("GetExercises", mock.Anything, "a-long-journey", model.LevelC1).
		Return(&model.ExerciseSet{Discussion: []string{"Why?"}}, nil).Once()
	router := newContentRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/contents/a-long-journey/levels/C1/exercises", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got model.ExerciseSet
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []string{"Why?"}, got.Discussion)
}

func TestContentHandler_GetAudio(t *testing.T) {
	t.Run("正常系: 音声チャンク列が返る", func(t *testing.T) {
		svc := mocks.NewContentService(t)
		svc.On("GetAudio", mock.Anything, "a-long-journey", model.LevelA1).
			Return([]model.AudioChunkResponse{{Index: 0, Text: "First.", Audio: "bXAz"}}, nil).Once()
		router := newContentRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/contents/a-long-journey/levels/A1/audio", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("異常系: 生成系の失敗は502", func(t *testing.T) {
		svc := mocks.NewContentService(t)
		svc.On("GetAudio", mock.Anything, "a-long-journey", model.LevelA1).
			Return(nil, fmt.Errorf("tts: %w", model.ErrGenerationFailure)).Once()
		router := newContentRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/contents/a-long-journey/levels/A1/audio", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("異常系: 音声合成が未構成なら503", func(t *testing.T) {
		svc := mocks.NewContentService(t)
		svc.On("GetAudio", mock.Anything, "a-long-journey", model.LevelA1).
			Return(nil, model.NewAppError("TTS_NOT_CONFIGURED", "音声合成が構成されていません。", "", model.ErrUnavailable)).Once()
		router := newContentRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/contents/a-long-journey/levels/A1/audio", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
