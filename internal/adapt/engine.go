// internal/adapt/engine.go
package adapt

import (
	"context"
	"fmt"
	"strings"

	"go_5_level_reader/internal/config"
	"go_5_level_reader/internal/llm"
	"go_5_level_reader/internal/middleware"
	"go_5_level_reader/internal/model"
)

// Engine はソーステキストをレベル別の成果物一式に変換します。
// 実際の言語生成はGeneratorに委譲し、プロンプト契約と構造検証をここが担う。
type Engine struct {
	gen   llm.Generator
	pacer *Pacer
}

func NewEngine(gen llm.Generator, pacer *Pacer) *Engine {
	return &Engine{gen: gen, pacer: pacer}
}

// AdaptText は1レベル分の書き換えテキストを生成します。
// 語数がソースの60%〜140%の帯域を外れたら情報落ち/水増しとみなして失敗させる。
func (e *Engine) AdaptText(ctx context.Context, sourceText string, level model.Level) (string, error) {
	sourceText = strings.TrimSpace(sourceText)
	if len(sourceText) < config.MinSourceTextLength {
		return "", fmt.Errorf("%w: source text shorter than %d characters", model.ErrInvalidInput, config.MinSourceTextLength)
	}
	if !level.IsValid() {
		return "", fmt.Errorf("%w: unknown level %q", model.ErrInvalidInput, level)
	}

	if err := e.pacer.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", model.ErrGenerationFailure, err)
	}

	text, err := e.gen.Generate(ctx, adaptSystemPrompt, buildAdaptPrompt(sourceText, level))
	if err != nil {
		return "", err
	}

	sourceWords := WordCount(sourceText)
	gotWords := WordCount(text)
	ratio := float64(gotWords) / float64(sourceWords)
	if ratio < config.MinLengthRatio || ratio > config.MaxLengthRatio {
		return "", fmt.Errorf("%w: %s adaptation word count %d outside %d%%-%d%% band of source (%d words)",
			model.ErrGenerationFailure, level,
			gotWords, int(config.MinLengthRatio*100), int(config.MaxLengthRatio*100), sourceWords)
	}
	return text, nil
}

// AdaptAllLevels は5レベル全てを逐次生成します。途中で失敗したら全体を失敗させる。
// 4つ成功して5つ目で失敗した場合も部分結果は返さない（5つ揃うか無か）。
func (e *Engine) AdaptAllLevels(ctx context.Context, sourceText string) (map[model.Level]string, error) {
	logger := middleware.GetLogger(ctx)
	texts := make(map[model.Level]string, len(model.Levels))
	for _, lv := range model.Levels {
		text, err := e.AdaptText(ctx, sourceText, lv)
		if err != nil {
			logger.Error("Level adaptation failed, abandoning batch",
				"level", lv.String(), "error", err)
			return nil, fmt.Errorf("adapting level %s: %w", lv, err)
		}
		logger.Info("Level adapted", "level", lv.String(), "word_count", WordCount(text))
		texts[lv] = text
	}
	return texts, nil
}

// GenerateHeadlines はレベル別のタイトル/サブタイトルを生成します。
// 構造が不正ならErrMalformedStructure。フォールバックの判断は呼び出し側が行う。
func (e *Engine) GenerateHeadlines(ctx context.Context, title, subtitle string, texts map[model.Level]string) (map[model.Level]Headline, error) {
	if err := e.pacer.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrGenerationFailure, err)
	}
	raw, err := e.gen.Generate(ctx, headlineSystemPrompt, buildHeadlinePrompt(title, subtitle, texts))
	if err != nil {
		return nil, err
	}
	return parseHeadlines(raw)
}

// GenerateExercises は1レベル分の練習問題一式を生成・検証します
func (e *Engine) GenerateExercises(ctx context.Context, text string, level model.Level) (*model.ExerciseSet, error) {
	if err := e.pacer.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrGenerationFailure, err)
	}
	raw, err := e.gen.Generate(ctx, exerciseSystemPrompt, buildExercisePrompt(text, level))
	if err != nil {
		return nil, err
	}
	set, err := parseExerciseSet(raw)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", level, err)
	}
	return set, nil
}

// GenerateVocabulary は全レベルのテキストから語彙リストを生成します。
// 空リストは致命的エラー（空の語彙体験は静かな品質低下なので受理しない）。
func (e *Engine) GenerateVocabulary(ctx context.Context, texts map[model.Level]string) ([]VocabularyItem, error) {
	if err := e.pacer.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrGenerationFailure, err)
	}
	raw, err := e.gen.Generate(ctx, vocabularySystemPrompt, buildVocabularyPrompt(texts))
	if err != nil {
		return nil, err
	}
	return parseVocabulary(raw)
}
