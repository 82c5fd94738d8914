// internal/model/error.go
package model

import "errors"

// アプリケーション固有のエラー
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrInternalServer = errors.New("internal server error")
	ErrForbidden      = errors.New("forbidden")
	ErrConflict       = errors.New("resource conflict")
	ErrUnavailable    = errors.New("service unavailable")

	// 取り込みパイプラインのエラー分類 (全て呼び出し元へ伝播させる)
	ErrGenerationFailure       = errors.New("text generation failed")
	ErrMalformedStructure      = errors.New("generated structure is malformed")
	ErrIncompleteLevelCoverage = errors.New("incomplete level coverage")
	ErrVocabularyInvalid       = errors.New("vocabulary generation returned empty or colliding entries")
)

// ErrorDetail はAPIエラーレスポンスに含める詳細情報
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse はAPIエラーレスポンスの構造体
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError はエラーコード・ユーザー向けメッセージ・根本原因を束ねるカスタムエラー
type AppError struct {
	Detail ErrorDetail
	Err    error // errors.Is での判定用にセンチネルエラーをラップする
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{Code: code, Message: message, Field: field},
		Err:    err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Detail.Code + ": " + e.Detail.Message + ": " + e.Err.Error()
	}
	return e.Detail.Code + ": " + e.Detail.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}
