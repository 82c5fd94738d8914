// internal/model/vocabulary.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// VocabularyEntry はコンテンツに紐づく語彙エントリです。
// 取り込み時に一度だけ作成され、以後は読み取り専用。
// Level はその語を教えるのが妥当な最低レベル（生成側の申告値）。
type VocabularyEntry struct {
	EntryID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	ContentID  uuid.UUID `gorm:"type:uuid;not null;index:idx_content_word,unique" json:"-"`
	Word       string    `gorm:"not null;index:idx_content_word,unique" json:"word"`
	Definition string    `gorm:"not null" json:"definition"`
	Level      Level     `gorm:"type:varchar(2);not null" json:"level"`
	// 一覧の並び順を保存時のまま保つ（フィルタは安定でなければならない）
	Position  int       `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"-"`
}

func (VocabularyEntry) TableName() string {
	return "vocabulary_entries"
}
