// internal/model/source.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SourceStatus string

const (
	SourceStatusPending    SourceStatus = "pending"
	SourceStatusProcessing SourceStatus = "processing"
	SourceStatusDone       SourceStatus = "done"
	SourceStatusFailed     SourceStatus = "failed"
)

// Source は取り込み待ちのソーステキストです。
// 取り込みジョブ（CLI/スケジューラ/管理API）がこのキューを逐次処理する。
type Source struct {
	SourceID  uuid.UUID    `gorm:"type:uuid;primaryKey" json:"source_id"`
	Slug      string       `gorm:"not null;uniqueIndex" json:"slug"`
	Title     string       `gorm:"not null" json:"title"`
	Subtitle  string       `json:"subtitle"`
	Text      string       `gorm:"not null" json:"-"`
	Status    SourceStatus `gorm:"type:varchar(16);not null;default:pending;index" json:"status"`
	// 失敗時のエラー概要（運用者向け。読者には一切露出しない）
	ErrorNote string         `json:"error_note,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Source) TableName() string {
	return "sources"
}

// ソース登録リクエストDTO
type PostSourceRequest struct {
	Slug     string `json:"slug" validate:"required,min=1,max=120"`
	Title    string `json:"title" validate:"required,min=1,max=200"`
	Subtitle string `json:"subtitle" validate:"omitempty,max=300"`
	Text     string `json:"text" validate:"required,min=300"`
}
