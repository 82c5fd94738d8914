// internal/model/content.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Content は取り込み済みの記事/ストーリーを表します
type Content struct {
	ContentID       uuid.UUID      `gorm:"type:uuid;primaryKey" json:"content_id"`
	Slug            string         `gorm:"not null;uniqueIndex" json:"slug"`
	Title           string         `gorm:"not null" json:"title"`
	Subtitle        string         `json:"subtitle"`
	SourceText      string         `gorm:"not null" json:"-"`
	SourceWordCount int            `gorm:"not null" json:"source_word_count"`
	// Ready は5レベル全ての成果物が検証済みで保存された場合のみ true。
	// false のアイテムは一覧にも詳細にも決して出さない（取り込みと配信の境界）。
	Ready     bool           `gorm:"not null;default:false" json:"-"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// 関連 (Preload用)
	Versions   []ContentVersion  `gorm:"foreignKey:ContentID;references:ContentID" json:"-"`
	Vocabulary []VocabularyEntry `gorm:"foreignKey:ContentID;references:ContentID" json:"-"`
}

func (Content) TableName() string {
	return "contents"
}

// ContentVersion は1レベル分のテキストとその派生物です
type ContentVersion struct {
	VersionID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	ContentID       uuid.UUID `gorm:"type:uuid;not null;index:idx_content_level,unique" json:"-"`
	Level           Level     `gorm:"type:varchar(2);not null;index:idx_content_level,unique" json:"level"`
	Text            string    `gorm:"not null" json:"text"`
	Title           string    `gorm:"not null" json:"title"`
	Subtitle        string    `json:"subtitle"`
	WordCount       int       `gorm:"not null" json:"word_count"`
	ReadTimeMinutes int       `gorm:"not null" json:"read_time_minutes"`
	// ExerciseSet のJSONシリアライズ。形状の検証は保存前に済んでいる
	ExercisesJSON string    `gorm:"not null" json:"-"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}

func (ContentVersion) TableName() string {
	return "content_versions"
}

// --- レスポンスDTO ---

// ContentSummaryResponse は一覧用のDTO
type ContentSummaryResponse struct {
	ContentID       uuid.UUID `json:"content_id"`
	Slug            string    `json:"slug"`
	Title           string    `json:"title"`
	Subtitle        string    `json:"subtitle,omitempty"`
	SourceWordCount int       `json:"source_word_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// ContentDetailResponse はメタデータ詳細のDTO
type ContentDetailResponse struct {
	ContentID uuid.UUID              `json:"content_id"`
	Slug      string                 `json:"slug"`
	Title     string                 `json:"title"`
	Subtitle  string                 `json:"subtitle,omitempty"`
	Levels    []ContentLevelSummary  `json:"levels"`
	CreatedAt time.Time              `json:"created_at"`
}

type ContentLevelSummary struct {
	Level           Level  `json:"level"`
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle,omitempty"`
	WordCount       int    `json:"word_count"`
	ReadTimeMinutes int    `json:"read_time_minutes"`
}

// LeveledTextResponse は1レベル分の本文DTO
type LeveledTextResponse struct {
	Slug            string `json:"slug"`
	Level           Level  `json:"level"`
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle,omitempty"`
	Text            string `json:"text"`
	WordCount       int    `json:"word_count"`
	ReadTimeMinutes int    `json:"read_time_minutes"`
}

// AudioChunkResponse は音声合成済みチャンクのDTO
type AudioChunkResponse struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
	// MP3データのbase64。クライアント側で順に再生する
	Audio string `json:"audio"`
}
