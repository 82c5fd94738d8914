// internal/handlers/admin_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_5_level_reader/internal/middleware"
	"go_5_level_reader/internal/model"
	"go_5_level_reader/internal/service"
	"go_5_level_reader/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type AdminHandler struct {
	service service.IngestionService
	logger  *slog.Logger
}

func NewAdminHandler(s service.IngestionService, logger *slog.Logger) *AdminHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AdminHandler{
		service: s,
		logger:  logger,
	}
}

// PostSource は新しいソーステキストを取り込みキューに登録するためのハンドラ
func (h *AdminHandler) PostSource(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "PostSource"))

	subject, err := middleware.GetAdminSubjectFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("admin", subject))

	var req model.PostSourceRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", slog.String("error", err.Error()))
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed", slog.Any("errors", validationErrors.Error()))

			// 最初のエラーを代表としてクライアントに返す
			firstErr := validationErrors[0]
			translatedMsg := firstErr.Translate(webutil.Trans)

			appErr := model.NewAppError(
				"VALIDATION_ERROR",
				translatedMsg,
				firstErr.Field(),
				model.ErrInvalidInput,
			)
			webutil.HandleError(w, logger, appErr)
		} else {
			logger.Error("Unexpected error during validation", slog.Any("error", err))
			webutil.HandleError(w, logger, err)
		}
		return
	}

	source, err := h.service.EnqueueSource(r.Context(), &req)
	if err != nil {
		logger.Error("Error enqueueing source in service", slog.Any("error", err), slog.String("slug", req.Slug))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Source enqueued successfully", slog.String("source_id", source.SourceID.String()))
	webutil.RespondWithJSON(w, http.StatusAccepted, source, logger)
}

// ProcessSource は登録済みソースの取り込みを同期的に実行するためのハンドラ。
// 生成はLLM呼び出しの連続なので応答まで数分かかりうる
func (h *AdminHandler) ProcessSource(w http.ResponseWriter, r *http.Request) {
	logger := h.logger.With(slog.String("handler", "ProcessSource"))

	subject, err := middleware.GetAdminSubjectFromContext(r.Context())
	if err != nil {
		logger.Warn("Unauthorized access attempt", slog.String("error", err.Error()))
		appErr := model.NewAppError("UNAUTHORIZED", "認証情報が見つかりません。", "", model.ErrForbidden)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("admin", subject))

	sourceID, err := uuid.Parse(chi.URLParam(r, "source_id"))
	if err != nil {
		appErr := model.NewAppError("INVALID_SOURCE_ID", "ソースIDの形式が正しくありません。", "source_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	logger = logger.With(slog.String("source_id", sourceID.String()))

	if err := h.service.ProcessSource(r.Context(), sourceID); err != nil {
		logger.Error("Error processing source in service", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Source processed successfully")
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "done"}, logger)
}
