// internal/adapt/parse_test.go
package adapt

import (
	"errors"
	"testing"

	"go_5_level_reader/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnmarshalGenerated(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	tests := []struct {
		name    string
		raw     string
		want    payload
		wantErr bool
	}{
		{
			name: "正常系: 素のJSONはそのまま受理する",
			raw:  `{"name": "a1", "count": 3}`,
			want: payload{Name: "a1", Count: 3},
		},
		{
			name: "正常系: 言語タグ付きコードフェンスを剥がして受理する",
			raw:  "```json\n{\"name\": \"a1\", \"count\": 3}\n```",
			want: payload{Name: "a1", Count: 3},
		},
		{
			name: "正常系: 言語タグなしコードフェンスも剥がす",
			raw:  "```\n{\"name\": \"a1\", \"count\": 3}\n```",
			want: payload{Name: "a1", Count: 3},
		},
		{
			name: "正常系: 前置きテキスト付きでも均衡スパンをサルベージする",
			raw:  "Here is the JSON you asked for:\n{\"name\": \"a1\", \"count\": 3}\nHope this helps!",
			want: payload{Name: "a1", Count: 3},
		},
		{
			name: "正常系: 文字列リテラル内の波括弧に惑わされない",
			raw:  `prefix {"name": "has } brace", "count": 1} suffix`,
			want: payload{Name: "has } brace", Count: 1},
		},
		{
			name: "正常系: エスケープされた引用符を含む文字列もサルベージできる",
			raw:  `noise {"name": "say \"hi\"", "count": 2} noise`,
			want: payload{Name: `say "hi"`, Count: 2},
		},
		{
			name:    "異常系: JSONが全く含まれないテキストは型付きエラー",
			raw:     "I could not produce the adaptation, sorry.",
			wantErr: true,
		},
		{
			name:    "異常系: 括弧が閉じないJSONは受理しない",
			raw:     `{"name": "a1", "count": 3`,
			wantErr: true,
		},
		{
			name:    "異常系: 空文字列は受理しない",
			raw:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got payload
			err := unmarshalGenerated("test", tt.raw, &got)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, model.ErrMalformedStructure), "ErrMalformedStructureに包まれていること")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestUnmarshalGenerated_Array(t *testing.T) {
	var got []int
	err := unmarshalGenerated("test", "The numbers are: [1, 2, 3] as requested.", &got)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestExtractJSONSpan(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"オブジェクト", `before {"a":1} after`, `{"a":1}`, true},
		{"配列", `before [1,2] after`, `[1,2]`, true},
		{"ネスト", `x {"a":{"b":[1]}} y`, `{"a":{"b":[1]}}`, true},
		{"最初のスパンのみ", `{"a":1} {"b":2}`, `{"a":1}`, true},
		{"括弧なし", `plain text`, "", false},
		{"未閉鎖", `{"a":1`, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractJSONSpan(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
