// internal/adapt/prompts.go
package adapt

import (
	"fmt"
	"strings"

	"go_5_level_reader/internal/config"
	"go_5_level_reader/internal/model"
)

// levelPolicy は1レベル分の語彙・文法の制約セットです。
// この表が適応エンジンの実質的な設計内容であり、変更には慎重であること。
type levelPolicy struct {
	VocabularyCeiling string // 使ってよい語彙の範囲
	SentenceLength    string // 文の長さの制約
	Grammar           string // 許可する文法
	TitleWordGuide    int    // 見出しの推奨語数 (A1=5 .. C1=10)
}

var levelPolicies = map[model.Level]levelPolicy{
	model.LevelA1: {
		VocabularyCeiling: "only the ~500 most frequent English words",
		SentenceLength:    "maximum 8 words per sentence",
		Grammar:           "present tense only; no passive voice; no idioms",
		TitleWordGuide:    5,
	},
	model.LevelA2: {
		VocabularyCeiling: "only the ~1000 most frequent English words",
		SentenceLength:    "maximum 12 words per sentence",
		Grammar:           "present and simple past tense; no idioms",
		TitleWordGuide:    6,
	},
	model.LevelB1: {
		VocabularyCeiling: "only the ~2000 most frequent English words",
		SentenceLength:    "around 15 words per sentence on average",
		Grammar:           "all common tenses; simple phrasal verbs allowed",
		TitleWordGuide:    7,
	},
	model.LevelB2: {
		VocabularyCeiling: "a vocabulary of roughly 4000 words",
		SentenceLength:    "natural variation in sentence length",
		Grammar:           "all tenses, idioms and passive voice allowed",
		TitleWordGuide:    8,
	},
	model.LevelC1: {
		VocabularyCeiling: "unrestricted vocabulary",
		SentenceLength:    "unrestricted sentence length",
		Grammar:           "preserve the source's idiom and nuance; only replace truly obscure terms",
		TitleWordGuide:    10,
	},
}

const adaptSystemPrompt = `You are an expert English language teacher who rewrites texts ` +
	`for learners at specific CEFR levels. You never summarize: every rewrite must convey ` +
	`exactly the same facts as the source at the same length, changing only vocabulary and ` +
	`grammar complexity. Respond with the rewritten text only, no preamble and no commentary.`

// buildAdaptPrompt は1レベル分の書き換え指示を組み立てます
func buildAdaptPrompt(sourceText string, level model.Level) string {
	p := levelPolicies[level]
	var b strings.Builder
	fmt.Fprintf(&b, "Rewrite the following text for a CEFR %s learner.\n\n", level)
	b.WriteString("Constraints:\n")
	fmt.Fprintf(&b, "- Vocabulary: use %s.\n", p.VocabularyCeiling)
	fmt.Fprintf(&b, "- Sentences: %s.\n", p.SentenceLength)
	fmt.Fprintf(&b, "- Grammar: %s.\n", p.Grammar)
	b.WriteString("- Length: keep the same word count as the source. Do NOT summarize or drop facts.\n")
	b.WriteString("- Every fact, number, name and event in the source must appear in your rewrite.\n")
	b.WriteString("\nSource text:\n")
	b.WriteString(sourceText)
	return b.String()
}

const headlineSystemPrompt = `You write short headlines for English learners at specific CEFR levels. ` +
	`Respond with strict JSON only, no markdown fences, in the shape ` +
	`{"A1":{"title":"...","subtitle":"..."},"A2":{...},"B1":{...},"B2":{...},"C1":{...}}.`

func buildHeadlinePrompt(title, subtitle string, texts map[model.Level]string) string {
	var b strings.Builder
	b.WriteString("Produce one title and one subtitle per CEFR level (A1, A2, B1, B2, C1) for the article below.\n\n")
	b.WriteString("Rules:\n")
	for _, lv := range model.Levels {
		fmt.Fprintf(&b, "- %s title: about %d words, never more than 10.\n", lv, levelPolicies[lv].TitleWordGuide)
	}
	b.WriteString("- Subtitles: at most 15 words each.\n")
	b.WriteString("- Use vocabulary appropriate to each level.\n\n")
	fmt.Fprintf(&b, "Original title: %s\n", title)
	if subtitle != "" {
		fmt.Fprintf(&b, "Original subtitle: %s\n", subtitle)
	}
	// 見出しはC1本文を代表として渡す（全レベル分渡すとトークンの無駄）
	if text, ok := texts[model.LevelC1]; ok {
		b.WriteString("\nArticle text:\n")
		b.WriteString(text)
	}
	return b.String()
}

const exerciseSystemPrompt = `You create comprehension exercises for English learners. ` +
	`Respond with strict JSON only, no markdown fences, matching exactly this shape:
{
  "comprehension": [{"id": 1, "question": "...", "options": [{"id": "a", "text": "..."}], "correctAnswer": "a", "explanation": "..."}],
  "vocabularyMatching": {"pairs": [{"word": "...", "definition": "..."}]},
  "gapFill": {"text": "... _____ ...", "blanks": [{"id": 1, "answer": "..."}], "wordBank": ["..."]},
  "wordOrder": {"sentences": [{"scrambled": ["..."], "correct": "..."}]},
  "trueFalse": {"statements": [{"text": "...", "answer": true, "explanation": "..."}]},
  "discussion": ["..."]
}
All six keys are mandatory.`

func buildExercisePrompt(text string, level model.Level) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create exercises for the following CEFR %s text.\n\n", level)
	b.WriteString("Quantities:\n")
	fmt.Fprintf(&b, "- %d comprehension questions with 4 options each (ids a-d).\n", config.ComprehensionQuestionCount)
	fmt.Fprintf(&b, "- %d vocabulary matching pairs.\n", config.VocabularyMatchingPairs)
	fmt.Fprintf(&b, "- one gap-fill text with %d blanks written as _____ and a word bank.\n", config.GapFillBlankCount)
	fmt.Fprintf(&b, "- %d word-order sentences (scrambled words plus the correct sentence).\n", config.WordOrderSentenceCount)
	fmt.Fprintf(&b, "- %d true/false statements with explanations.\n", config.TrueFalseStatementCount)
	fmt.Fprintf(&b, "- %d open discussion prompts.\n", config.DiscussionPromptCount)
	fmt.Fprintf(&b, "\nAll language must stay within CEFR %s level.\n", level)
	b.WriteString("\nText:\n")
	b.WriteString(text)
	return b.String()
}

const vocabularySystemPrompt = `You select vocabulary worth teaching from leveled English texts. ` +
	`Respond with strict JSON only, no markdown fences: an array of ` +
	`{"word": "...", "definition": "...", "level": "A1|A2|B1|B2|C1"} objects.`

func buildVocabularyPrompt(texts map[model.Level]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "From the texts below, pick about %d vocabulary words per CEFR level (%d total).\n\n",
		config.VocabularyWordsPerLevel, config.VocabularyWordsPerLevel*len(model.Levels))
	b.WriteString("Rules:\n")
	b.WriteString("- Only use words that actually appear in the text of the claimed level. Never invent words.\n")
	b.WriteString("- Each word appears exactly once, tagged with the minimum level it should be taught at.\n")
	b.WriteString("- Exclude function words, numbers, days, months and basic survival vocabulary ")
	b.WriteString("(e.g. the, have, people, house, happy): learners already know them.\n")
	b.WriteString("- Definitions must be short, learner-friendly English.\n")
	for _, lv := range model.Levels {
		if text, ok := texts[lv]; ok {
			fmt.Fprintf(&b, "\n--- %s text ---\n%s\n", lv, text)
		}
	}
	return b.String()
}
