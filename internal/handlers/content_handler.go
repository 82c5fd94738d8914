// internal/handlers/content_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_5_level_reader/internal/model"
	"go_5_level_reader/internal/service"
	"go_5_level_reader/internal/webutil"

	"github.com/go-chi/chi/v5"
)

type ContentHandler struct {
	service service.ContentService
	logger  *slog.Logger
}

func NewContentHandler(s service.ContentService, logger *slog.Logger) *ContentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ContentHandler{
		service: s,
		logger:  logger,
	}
}

// GetContents は公開済みコンテンツの一覧を取得するためのハンドラ
func (h *ContentHandler) GetContents(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetContents"))

	contents, err := h.service.ListContents(r.Context())
	if err != nil {
		logger.Error("Error listing contents in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if contents == nil {
		contents = []*model.ContentSummaryResponse{}
	}
	logger.Info("Contents listed successfully", slog.Int("count", len(contents)))
	webutil.RespondWithJSON(w, http.StatusOK, contents, logger)
}

// GetContentDetail はコンテンツのメタデータとレベル別サマリを取得するためのハンドラ
func (h *ContentHandler) GetContentDetail(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetContentDetail"))

	slug := chi.URLParam(r, "slug")
	logger = logger.With(slog.String("slug", slug))

	detail, err := h.service.GetContentDetail(r.Context(), slug)
	if err != nil {
		logger.Warn("Error getting content detail in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, detail, logger)
}

// GetLeveledText は指定レベルの本文を取得するためのハンドラ
func (h *ContentHandler) GetLeveledText(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetLeveledText"))

	slug := chi.URLParam(r, "slug")
	level := model.ParseLevel(chi.URLParam(r, "level"))
	logger = logger.With(slog.String("slug", slug), slog.String("level", level.String()))

	text, err := h.service.GetLeveledText(r.Context(), slug, level)
	if err != nil {
		logger.Warn("Error getting leveled text in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, text, logger)
}

// GetExercises は指定レベルの練習問題一式を取得するためのハンドラ
func (h *ContentHandler) GetExercises(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetExercises"))

	slug := chi.URLParam(r, "slug")
	level := model.ParseLevel(chi.URLParam(r, "level"))
	logger = logger.With(slog.String("slug", slug), slog.String("level", level.String()))

	set, err := h.service.GetExercises(r.Context(), slug, level)
	if err != nil {
		logger.Warn("Error getting exercises in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, set, logger)
}

// GetVocabulary は読者レベルでフィルタした語彙リストを取得するためのハンドラ。
// level クエリパラメータは省略可。未指定・不正値は「レベル不明」として
// 許容的に扱い、エラーにはしない
func (h *ContentHandler) GetVocabulary(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetVocabulary"))

	slug := chi.URLParam(r, "slug")
	readerLevel := model.ParseLevel(r.URL.Query().Get("level"))
	logger = logger.With(slog.String("slug", slug), slog.String("reader_level", readerLevel.String()))

	entries, err := h.service.GetVocabulary(r.Context(), slug, readerLevel)
	if err != nil {
		logger.Warn("Error getting vocabulary in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	if entries == nil {
		entries = []model.VocabularyEntry{}
	}
	logger.Info("Vocabulary filtered successfully", slog.Int("count", len(entries)))
	webutil.RespondWithJSON(w, http.StatusOK, entries, logger)
}

// GetAudio は指定レベルの本文をTTSで合成した音声チャンク列を取得するためのハンドラ
func (h *ContentHandler) GetAudio(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "GetAudio"))

	slug := chi.URLParam(r, "slug")
	level := model.ParseLevel(chi.URLParam(r, "level"))
	logger = logger.With(slog.String("slug", slug), slog.String("level", level.String()))

	chunks, err := h.service.GetAudio(r.Context(), slug, level)
	if err != nil {
		logger.Error("Error synthesizing audio in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}
	logger.Info("Audio synthesized successfully", slog.Int("chunks", len(chunks)))
	webutil.RespondWithJSON(w, http.StatusOK, chunks, logger)
}
