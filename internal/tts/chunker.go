// internal/tts/chunker.go
package tts

import (
	"strings"
	"unicode/utf8"
)

// SplitSentences はテキストをTTS APIに渡せる長さのチャンクに分割します。
// 文境界（. ! ?）を優先し、1文が maxLen を超える場合のみ語境界で割る。
// 返るチャンクは前後の空白を除いた非空文字列で、元の順序を保つ
func SplitSentences(text string, maxLen int) []string {
	sentences := splitAtSentenceEnds(text)

	var chunks []string
	var current strings.Builder
	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			chunks = append(chunks, s)
		}
		current.Reset()
	}

	for _, sentence := range sentences {
		sentence = strings.TrimSpace(sentence)
		if sentence == "" {
			continue
		}
		if len(sentence) > maxLen {
			flush()
			chunks = append(chunks, splitAtWords(sentence, maxLen)...)
			continue
		}
		if current.Len() > 0 && current.Len()+1+len(sentence) > maxLen {
			flush()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(sentence)
	}
	flush()
	return chunks
}

func splitAtSentenceEnds(text string) []string {
	var sentences []string
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '.', '!', '?':
			// 連続する終端記号（"?!", "..."）は1文にまとめる
			for i+1 < len(text) && (text[i+1] == '.' || text[i+1] == '!' || text[i+1] == '?') {
				i++
			}
			sentences = append(sentences, text[start:i+1])
			start = i + 1
		}
	}
	if start < len(text) {
		sentences = append(sentences, text[start:])
	}
	return sentences
}

func splitAtWords(sentence string, maxLen int) []string {
	var chunks []string
	var current strings.Builder
	flush := func() {
		if current.Len() > 0 {
			chunks = append(chunks, current.String())
			current.Reset()
		}
	}
	for _, word := range strings.Fields(sentence) {
		// 語境界のない長大トークン（URLなど）はそのままでは上限を超えるので強制分割する
		if len(word) > maxLen {
			flush()
			chunks = append(chunks, hardSplit(word, maxLen)...)
			continue
		}
		if current.Len() > 0 && current.Len()+1+len(word) > maxLen {
			flush()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(word)
	}
	flush()
	return chunks
}

// hardSplit はトークンをmaxLenバイト以下の断片に切ります。
// マルチバイト文字の途中では切らない
func hardSplit(token string, maxLen int) []string {
	var parts []string
	for len(token) > maxLen {
		cut := maxLen
		for cut > 0 && !utf8.RuneStart(token[cut]) {
			cut--
		}
		if cut == 0 {
			cut = maxLen
		}
		parts = append(parts, token[:cut])
		token = token[cut:]
	}
	if token != "" {
		parts = append(parts, token)
	}
	return parts
}
