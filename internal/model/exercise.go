// internal/model/exercise.go
package model

// ExerciseSet は1レベル分の練習問題一式です。
// JSON形状は既存のレンダリング層との互換のため変更しないこと。
type ExerciseSet struct {
	Comprehension      []ComprehensionQuestion `json:"comprehension"`
	VocabularyMatching VocabularyMatching      `json:"vocabularyMatching"`
	GapFill            GapFill                 `json:"gapFill"`
	WordOrder          WordOrder               `json:"wordOrder"`
	TrueFalse          TrueFalse               `json:"trueFalse"`
	Discussion         []string                `json:"discussion"`
}

type ComprehensionQuestion struct {
	ID            int              `json:"id"`
	Question      string           `json:"question"`
	Options       []QuestionOption `json:"options"`
	CorrectAnswer string           `json:"correctAnswer"`
	Explanation   string           `json:"explanation"`
}

type QuestionOption struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type VocabularyMatching struct {
	Pairs []MatchingPair `json:"pairs"`
}

type MatchingPair struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

type GapFill struct {
	Text     string         `json:"text"`
	Blanks   []GapFillBlank `json:"blanks"`
	WordBank []string       `json:"wordBank"`
}

type GapFillBlank struct {
	ID     int    `json:"id"`
	Answer string `json:"answer"`
}

type WordOrder struct {
	Sentences []WordOrderSentence `json:"sentences"`
}

type WordOrderSentence struct {
	Scrambled []string `json:"scrambled"`
	Correct   string   `json:"correct"`
}

type TrueFalse struct {
	Statements []TrueFalseStatement `json:"statements"`
}

type TrueFalseStatement struct {
	Text        string `json:"text"`
	Answer      bool   `json:"answer"`
	Explanation string `json:"explanation"`
}
