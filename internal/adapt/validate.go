// internal/adapt/validate.go
package adapt

import (
	"encoding/json"
	"fmt"
	"strings"

	"go_5_level_reader/internal/model"
)

// WordCount は空白区切りのトークン数を返します
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// ReadTimeMinutes は語数から読了時間（分）を導出します。200語/分、最低1分。
func ReadTimeMinutes(wordCount int) int {
	minutes := (wordCount + 199) / 200
	if minutes < 1 {
		minutes = 1
	}
	return minutes
}

var exerciseSetKeys = []string{
	"comprehension",
	"vocabularyMatching",
	"gapFill",
	"wordOrder",
	"trueFalse",
	"discussion",
}

// parseExerciseSet は生成結果をExerciseSetとして受理できるか検証します。
// 6種のキーが全て存在しない構造は、サルベージ後であっても受理しない。
func parseExerciseSet(raw string) (*model.ExerciseSet, error) {
	var keyed map[string]json.RawMessage
	if err := unmarshalGenerated("exercises", raw, &keyed); err != nil {
		return nil, err
	}
	for _, key := range exerciseSetKeys {
		if _, ok := keyed[key]; !ok {
			return nil, fmt.Errorf("%w: exercise set is missing key %q", model.ErrMalformedStructure, key)
		}
	}

	// キーが揃っていることを確認してから型に落とす
	merged, err := json.Marshal(keyed)
	if err != nil {
		return nil, fmt.Errorf("%w: exercise set re-marshal failed", model.ErrMalformedStructure)
	}
	var set model.ExerciseSet
	if err := json.Unmarshal(merged, &set); err != nil {
		return nil, fmt.Errorf("%w: exercise set has wrong field types", model.ErrMalformedStructure)
	}

	if err := validateExerciseSet(&set); err != nil {
		return nil, err
	}
	return &set, nil
}

func validateExerciseSet(set *model.ExerciseSet) error {
	if len(set.Comprehension) == 0 {
		return fmt.Errorf("%w: no comprehension questions", model.ErrMalformedStructure)
	}
	for _, q := range set.Comprehension {
		if len(q.Options) == 0 {
			return fmt.Errorf("%w: comprehension question %d has no options", model.ErrMalformedStructure, q.ID)
		}
		// correctAnswer は自分のoptionsに実在するIDを指していなければならない
		found := false
		for _, opt := range q.Options {
			if opt.ID == q.CorrectAnswer {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: comprehension question %d: correctAnswer %q not in options", model.ErrMalformedStructure, q.ID, q.CorrectAnswer)
		}
	}

	if len(set.VocabularyMatching.Pairs) == 0 {
		return fmt.Errorf("%w: no vocabulary matching pairs", model.ErrMalformedStructure)
	}

	// 空所の数と _____ プレースホルダの数は一致しなければならない
	placeholders := strings.Count(set.GapFill.Text, "_____")
	if placeholders == 0 || placeholders != len(set.GapFill.Blanks) {
		return fmt.Errorf("%w: gap-fill has %d placeholders but %d blanks", model.ErrMalformedStructure, placeholders, len(set.GapFill.Blanks))
	}

	if len(set.WordOrder.Sentences) == 0 {
		return fmt.Errorf("%w: no word-order sentences", model.ErrMalformedStructure)
	}
	for i, s := range set.WordOrder.Sentences {
		if len(s.Scrambled) == 0 || s.Correct == "" {
			return fmt.Errorf("%w: word-order sentence %d is incomplete", model.ErrMalformedStructure, i)
		}
	}

	if len(set.TrueFalse.Statements) == 0 {
		return fmt.Errorf("%w: no true/false statements", model.ErrMalformedStructure)
	}
	for i, s := range set.TrueFalse.Statements {
		if s.Text == "" {
			return fmt.Errorf("%w: true/false statement %d has empty text", model.ErrMalformedStructure, i)
		}
	}

	if len(set.Discussion) == 0 {
		return fmt.Errorf("%w: no discussion prompts", model.ErrMalformedStructure)
	}
	return nil
}

// Headline は1レベル分の見出しペアです
type Headline struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

const (
	maxTitleWords    = 10
	maxSubtitleWords = 15
)

// parseHeadlines は見出し生成結果を検証します。5レベル全てのエントリが必須。
func parseHeadlines(raw string) (map[model.Level]Headline, error) {
	var byLevel map[string]Headline
	if err := unmarshalGenerated("headlines", raw, &byLevel); err != nil {
		return nil, err
	}

	result := make(map[model.Level]Headline, len(model.Levels))
	for _, lv := range model.Levels {
		h, ok := byLevel[string(lv)]
		if !ok || h.Title == "" {
			return nil, fmt.Errorf("%w: headlines missing level %s", model.ErrMalformedStructure, lv)
		}
		if WordCount(h.Title) > maxTitleWords {
			return nil, fmt.Errorf("%w: %s title exceeds %d words", model.ErrMalformedStructure, lv, maxTitleWords)
		}
		if WordCount(h.Subtitle) > maxSubtitleWords {
			return nil, fmt.Errorf("%w: %s subtitle exceeds %d words", model.ErrMalformedStructure, lv, maxSubtitleWords)
		}
		result[lv] = h
	}
	return result, nil
}

// VocabularyItem は生成された語彙候補です（保存前の形）。
// Level は parseVocabulary で正規化済みの値を持つ
type VocabularyItem struct {
	Word       string      `json:"word"`
	Definition string      `json:"definition"`
	Level      model.Level `json:"level"`
}

// parseVocabulary は語彙生成結果を検証します。
// 空リストとレベル間の語の重複は致命的エラー（黙って受理しない）。
func parseVocabulary(raw string) ([]VocabularyItem, error) {
	var items []VocabularyItem
	if err := unmarshalGenerated("vocabulary", raw, &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: empty vocabulary list", model.ErrVocabularyInvalid)
	}

	seen := make(map[string]bool, len(items))
	for i := range items {
		item := &items[i]
		word := strings.ToLower(strings.TrimSpace(item.Word))
		if word == "" || strings.TrimSpace(item.Definition) == "" {
			return nil, fmt.Errorf("%w: entry with empty word or definition", model.ErrVocabularyInvalid)
		}
		// 表記ゆれ（小文字など）はここで正規形に揃える。生のまま残すと
		// 下流のレベル比較が一致しなくなる
		level := model.ParseLevel(string(item.Level))
		if !level.IsValid() {
			return nil, fmt.Errorf("%w: word %q has unrecognized level %q", model.ErrVocabularyInvalid, item.Word, item.Level)
		}
		item.Level = level
		// 語は全レベルを通して一意でなければならない
		if seen[word] {
			return nil, fmt.Errorf("%w: word %q appears in more than one level", model.ErrVocabularyInvalid, word)
		}
		seen[word] = true
	}
	return items, nil
}
