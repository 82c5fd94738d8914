// internal/model/level.go
package model

import "strings"

// Level はCEFRの習熟度レベルを表します (A1が最下位、C1が最上位)
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"

	// LevelUnknown は認識できないレベル文字列を表す明示的なバリアント。
	// Index() は -1 を返し、順序比較は常に「下位ではない」と判定される。
	LevelUnknown Level = ""
)

// Levels は正準の順序付きレベル一覧です
var Levels = []Level{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1}

var levelIndex = map[Level]int{
	LevelA1: 0,
	LevelA2: 1,
	LevelB1: 2,
	LevelB2: 3,
	LevelC1: 4,
}

// ParseLevel は文字列をLevelに変換します。大文字小文字と前後の空白は無視します。
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A1":
		return LevelA1
	case "A2":
		return LevelA2
	case "B1":
		return LevelB1
	case "B2":
		return LevelB2
	case "C1":
		return LevelC1
	default:
		return LevelUnknown
	}
}

// Index はレベルの序数を返します。未知のレベルは -1。
func (l Level) Index() int {
	if i, ok := levelIndex[l]; ok {
		return i
	}
	return -1
}

// Before は l が other より下位かどうかを返します。
// どちらかが未知 (-1) の場合は false を返すため、
// 「下位レベルだから除外する」系の判定は未知レベルに対して発火しない。
func (l Level) Before(other Level) bool {
	li, oi := l.Index(), other.Index()
	if li < 0 || oi < 0 {
		return false
	}
	return li < oi
}

// IsValid は正準5レベルのいずれかであるかを返します
func (l Level) IsValid() bool {
	return l.Index() >= 0
}

func (l Level) String() string {
	return string(l)
}
