// internal/adapt/parse.go
package adapt

import (
	"encoding/json"
	"fmt"
	"strings"

	"go_5_level_reader/internal/model"
)

// unmarshalGenerated は生成コラボレータの返した生テキストをJSONとして解釈します。
// 方針: 厳格パース -> フェンス除去して再パース -> 均衡スパン抽出で再パース -> 型付きエラー。
// step はどの生成ステップで失敗したかをエラーに残すためのラベル。
func unmarshalGenerated(step, raw string, dst any) error {
	cleaned := stripCodeFences(raw)

	if err := json.Unmarshal([]byte(cleaned), dst); err == nil {
		return nil
	}

	// サルベージ: 最初の均衡した {...} または [...] を抜き出して再挑戦
	if span, ok := extractJSONSpan(cleaned); ok {
		if err := json.Unmarshal([]byte(span), dst); err == nil {
			return nil
		}
	}

	return fmt.Errorf("%w: step %q returned unparseable JSON", model.ErrMalformedStructure, step)
}

// stripCodeFences はMarkdownのコードフェンス包みを剥がします
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// "```json" のような言語タグ付きフェンス
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		firstLine := strings.TrimSpace(s[:idx])
		if firstLine == "" || !strings.ContainsAny(firstLine, "{[") {
			s = s[idx+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// extractJSONSpan は最初に現れる均衡した {...} / [...] スパンを返します。
// 文字列リテラル内の括弧とエスケープは数えない。
func extractJSONSpan(s string) (string, bool) {
	start := -1
	var open, close byte
	for i := 0; i < len(s); i++ {
		if s[i] == '{' {
			start, open, close = i, '{', '}'
			break
		}
		if s[i] == '[' {
			start, open, close = i, '[', ']'
			break
		}
	}
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}
