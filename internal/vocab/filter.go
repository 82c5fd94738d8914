// internal/vocab/filter.go
package vocab

import (
	"strings"

	"go_5_level_reader/internal/model"
)

// FilterForLevel は読者のレベルに照らして見せる価値のない語彙エントリを除外します。
// 純粋関数。入力の順序を保つ安定フィルタで、I/Oも乱数もない。
//
// ルールは意図的に多層にしてある: 上流の分類器（LLM）は細かいレベル判定を
// 外すことが多いため、デナイリストと段階的アローリストで冗長に補正する。
// エントリは全ルールを通過した場合のみ残る。
func FilterForLevel(entries []model.VocabularyEntry, readerLevel model.Level) []model.VocabularyEntry {
	result := make([]model.VocabularyEntry, 0, len(entries))
	for _, entry := range entries {
		if keepForLevel(entry, readerLevel) {
			result = append(result, entry)
		}
	}
	return result
}

func keepForLevel(entry model.VocabularyEntry, readerLevel model.Level) bool {
	word := strings.ToLower(strings.TrimSpace(entry.Word))

	// ルール1: 読者のレベルより下位の語は既知とみなして除外。
	// readerLevel が未知 (index -1) の場合は発火しない（安全側・許容的デフォルト）
	if entry.Level.Before(readerLevel) {
		return false
	}

	// ルール2: 極めて一般的な語は申告レベルに関係なく無条件で除外
	if commonWords.contains(word) {
		return false
	}

	// ルール3: B1以上の読者にはB1未満申告の語を見せない。
	// ルール1と重なるが、独立したチェックとして明示的に残す（多層防御）
	if !readerLevel.Before(model.LevelB1) && readerLevel.IsValid() {
		if entry.Level.Before(model.LevelB1) {
			return false
		}
	}

	// ルール4: B2以上の読者には「ちょうどB1相当」と分かっている語を見せない。
	// 申告がB1/B2でもB1アローリストに載っている語はここで落ちる
	if !readerLevel.Before(model.LevelB2) && readerLevel.IsValid() {
		if b1MinimumWords.contains(word) {
			return false
		}
	}

	// ルール5: C1読者には、B2/C1アローリスト掲載か明示的にC1申告の語だけを残す。
	// 中程度の語を最上位読者に「新出」と誤提示しないための最も厳しいゲート
	if readerLevel == model.LevelC1 {
		if !b2MinimumWords.contains(word) && !c1MinimumWords.contains(word) && entry.Level != model.LevelC1 {
			return false
		}
	}

	return true
}

// ClassifyMinimumLevel はその語を教えるべき最低レベルを返します。
// デナイリスト掲載語は skip=true。アローリストはC1 > B2 > B1の順で照合し、
// どれにも該当しなければA2をデフォルトとする。
// ホットな読み取りパスではなく、データキュレーションとデバッグ用の補助関数。
func ClassifyMinimumLevel(word string) (level model.Level, skip bool) {
	w := strings.ToLower(strings.TrimSpace(word))
	switch {
	case commonWords.contains(w):
		return model.LevelUnknown, true
	case c1MinimumWords.contains(w):
		return model.LevelC1, false
	case b2MinimumWords.contains(w):
		return model.LevelB2, false
	case b1MinimumWords.contains(w):
		return model.LevelB1, false
	default:
		return model.LevelA2, false
	}
}
