// internal/vocab/filter_test.go
package vocab

import (
	"testing"

	"go_5_level_reader/internal/model"

	"github.com/stretchr/testify/assert"
)

// テスト用エントリのショートハンド
func entry(word string, level model.Level) model.VocabularyEntry {
	return model.VocabularyEntry{Word: word, Definition: "def: " + word, Level: level}
}

func words(entries []model.VocabularyEntry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Word)
	}
	return out
}

func TestFilterForLevel(t *testing.T) {
	tests := []struct {
		name        string
		entries     []model.VocabularyEntry
		readerLevel model.Level
		wantWords   []string
	}{
		{
			name: "正常系: A1読者には下位レベルの語が存在しないので申告レベル通りに残る",
			entries: []model.VocabularyEntry{
				entry("giraffe", model.LevelA1),
				entry("volcano", model.LevelB1),
				entry("ubiquitous", model.LevelC1),
			},
			readerLevel: model.LevelA1,
			wantWords:   []string{"giraffe", "volcano", "ubiquitous"},
		},
		{
			name: "正常系: 読者レベルより下位申告の語は既知として除外される",
			entries: []model.VocabularyEntry{
				entry("giraffe", model.LevelA1),
				entry("volcano", model.LevelB1),
				entry("spaceship", model.LevelB2),
			},
			readerLevel: model.LevelB2,
			wantWords:   []string{"spaceship"},
		},
		{
			name: "正常系: デナイリスト掲載語は申告レベルがC1でもA1読者からも除外される",
			entries: []model.VocabularyEntry{
				entry("happy", model.LevelC1),
				entry("the", model.LevelA1),
				entry("giraffe", model.LevelA1),
			},
			readerLevel: model.LevelA1,
			wantWords:   []string{"giraffe"},
		},
		{
			name: "正常系: 大文字・前後空白があってもデナイリスト照合は一致する",
			entries: []model.VocabularyEntry{
				entry("  Happy ", model.LevelC1),
				entry("THE", model.LevelB2),
			},
			readerLevel: model.LevelA1,
			wantWords:   []string{},
		},
		{
			name: "正常系: B2読者にはB1アローリスト掲載語が申告レベルに関係なく除外される",
			entries: []model.VocabularyEntry{
				// achieve はB1アローリスト掲載。B2申告でも落ちる
				entry("achieve", model.LevelB2),
				entry("spaceship", model.LevelB2),
			},
			readerLevel: model.LevelB2,
			wantWords:   []string{"spaceship"},
		},
		{
			name: "正常系: B1読者にはB1アローリスト掲載語は残る",
			entries: []model.VocabularyEntry{
				entry("achieve", model.LevelB1),
			},
			readerLevel: model.LevelB1,
			wantWords:   []string{"achieve"},
		},
		{
			name: "正常系: C1読者に残るのはB2/C1アローリスト掲載語と明示的C1申告語のみ",
			entries: []model.VocabularyEntry{
				entry("ubiquitous", model.LevelC1),    // C1リスト掲載
				entry("comprehensive", model.LevelC1), // B2リスト掲載
				entry("spaceship", model.LevelC1),     // リスト外だが明示的C1申告
				entry("volcano", model.LevelC1),       // 同上
				entry("happy", model.LevelC1),         // デナイリスト掲載
			},
			readerLevel: model.LevelC1,
			wantWords:   []string{"ubiquitous", "comprehensive", "spaceship", "volcano"},
		},
		{
			name: "正常系: C1読者にはリスト外かつC1未満申告の語は残らない",
			entries: []model.VocabularyEntry{
				entry("spaceship", model.LevelB2),
				entry("giraffe", model.LevelB1),
			},
			readerLevel: model.LevelC1,
			wantWords:   []string{},
		},
		{
			name: "正常系: 読者レベル未知の場合はデナイリスト以外は全て残る（許容的デフォルト）",
			entries: []model.VocabularyEntry{
				entry("giraffe", model.LevelA1),
				entry("achieve", model.LevelB1),
				entry("ubiquitous", model.LevelC1),
				entry("the", model.LevelA1),
			},
			readerLevel: model.LevelUnknown,
			wantWords:   []string{"giraffe", "achieve", "ubiquitous"},
		},
		{
			name:        "境界値: 空の入力は空の結果",
			entries:     []model.VocabularyEntry{},
			readerLevel: model.LevelB1,
			wantWords:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterForLevel(tt.entries, tt.readerLevel)
			assert.Equal(t, tt.wantWords, words(got))
		})
	}
}

// フィルタは安定（入力順を保つ）かつ冪等でなければならない
func TestFilterForLevel_StableAndIdempotent(t *testing.T) {
	entries := []model.VocabularyEntry{
		entry("zebra", model.LevelB2),
		entry("achieve", model.LevelB1),
		entry("apple", model.LevelA1),
		entry("ubiquitous", model.LevelC1),
		entry("volcano", model.LevelB1),
	}

	once := FilterForLevel(entries, model.LevelB1)
	twice := FilterForLevel(once, model.LevelB1)

	assert.Equal(t, once, twice, "2回適用しても結果が変わらないこと")

	// 残った語が元の相対順序を保っていること
	lastIndex := -1
	for _, kept := range once {
		found := -1
		for i, e := range entries {
			if e.Word == kept.Word {
				found = i
				break
			}
		}
		assert.Greater(t, found, lastIndex, "順序が保存されていること")
		lastIndex = found
	}
}

// 同じ語が全レベルの読者に対してどう扱われるかの一貫性チェック
func TestFilterForLevel_DenylistAtEveryLevel(t *testing.T) {
	denied := []model.VocabularyEntry{
		entry("the", model.LevelA1),
		entry("happy", model.LevelB1),
		entry("time", model.LevelC1),
	}
	for _, lv := range append([]model.Level{model.LevelUnknown}, model.Levels...) {
		got := FilterForLevel(denied, lv)
		assert.Empty(t, got, "reader=%s でデナイリスト語が残ってはならない", lv)
	}
}

func TestClassifyMinimumLevel(t *testing.T) {
	tests := []struct {
		name      string
		word      string
		wantLevel model.Level
		wantSkip  bool
	}{
		{"正常系: デナイリスト掲載語はスキップ", "the", model.LevelUnknown, true},
		{"正常系: C1アローリスト掲載語", "ubiquitous", model.LevelC1, false},
		{"正常系: B2アローリスト掲載語", "comprehensive", model.LevelB2, false},
		{"正常系: B1アローリスト掲載語", "achieve", model.LevelB1, false},
		{"正常系: どのリストにもない語はA2", "giraffe", model.LevelA2, false},
		{"正常系: 大文字・空白込みでも照合する", "  Ubiquitous ", model.LevelC1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, skip := ClassifyMinimumLevel(tt.word)
			assert.Equal(t, tt.wantLevel, level)
			assert.Equal(t, tt.wantSkip, skip)
		})
	}
}
