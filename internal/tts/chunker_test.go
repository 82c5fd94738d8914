// internal/tts/chunker_test.go
package tts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitSentences(t *testing.T) {
	t.Run("正常系: 上限内の複数文は1チャンクにまとまる", func(t *testing.T) {
		got := SplitSentences("First sentence. Second sentence! Third?", 100)
		require.Len(t, got, 1)
		assert.Equal(t, "First sentence. Second sentence! Third?", got[0])
	})

	t.Run("正常系: 上限を超えたら文境界で分割する", func(t *testing.T) {
		got := SplitSentences("First sentence. Second sentence.", 20)
		require.Len(t, got, 2)
		assert.Equal(t, "First sentence.", got[0])
		assert.Equal(t, "Second sentence.", got[1])
	})

	t.Run("正常系: 1文が上限を超える場合は語境界で割る", func(t *testing.T) {
		long := strings.TrimSpace(strings.Repeat("word ", 30)) // 終端記号のない149文字
		got := SplitSentences(long, 50)
		require.Greater(t, len(got), 1)
		for _, chunk := range got {
			assert.LessOrEqual(t, len(chunk), 50)
		}
		// 連結すれば元のテキストに戻る
		assert.Equal(t, long, strings.Join(got, " "))
	})

	t.Run("正常系: 連続する終端記号は1文として扱う", func(t *testing.T) {
		got := SplitSentences("Really?! Yes... Sure.", 10)
		require.Len(t, got, 3)
		assert.Equal(t, "Really?!", got[0])
		assert.Equal(t, "Yes...", got[1])
		assert.Equal(t, "Sure.", got[2])
	})

	t.Run("境界値: 語境界のない長大トークンも上限以下に収まる", func(t *testing.T) {
		token := strings.Repeat("x", 120)
		got := SplitSentences("See "+token+" here.", 50)
		require.NotEmpty(t, got)
		var rejoined strings.Builder
		for _, chunk := range got {
			assert.LessOrEqual(t, len(chunk), 50)
			rejoined.WriteString(chunk)
		}
		// 分割してもトークンの中身は失われない
		assert.Contains(t, strings.ReplaceAll(rejoined.String(), " ", ""), token)
	})

	t.Run("境界値: 空文字列と空白のみは空の結果", func(t *testing.T) {
		assert.Empty(t, SplitSentences("", 100))
		assert.Empty(t, SplitSentences("   \n  ", 100))
	})

	t.Run("正常系: チャンクは常に非空かつ前後空白なし", func(t *testing.T) {
		got := SplitSentences("  One.   Two.  Three.  ", 8)
		for _, chunk := range got {
			assert.NotEmpty(t, chunk)
			assert.Equal(t, strings.TrimSpace(chunk), chunk)
		}
	})
}
