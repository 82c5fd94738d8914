// internal/config/constants.go
package config

// アプリケーション情報
const (
	AppName    = "LevelReader"
	AppVersion = "0.3.1"
)

// デフォルト設定値
const (
	DefaultServerPort                = ":8080"
	DefaultLogLevel                  = "info"
	DefaultLLMAPIURL                 = "https://api.openai.com/v1/chat/completions"
	DefaultLLMModel                  = "gpt-4o-mini"
	DefaultLLMTimeoutSeconds         = 45
	DefaultLLMRequestIntervalSeconds = 2
	DefaultTTSLanguageCode           = "en-US"
	DefaultSchedulerIntervalMinutes  = 30
)

// 取り込みポリシー
const (
	// これより短いソーステキストは適応に足る情報量がないとみなして拒否する
	MinSourceTextLength = 300

	// 適応結果の語数がソース語数のこの比率を下回ったら情報落ちとみなす
	MinLengthRatio = 0.6
	// 逆にこの比率を超えたら水増しとみなす
	MaxLengthRatio = 1.4
)

// 練習問題の生成数
const (
	ComprehensionQuestionCount = 5
	VocabularyMatchingPairs    = 10
	GapFillBlankCount          = 10
	WordOrderSentenceCount     = 10
	TrueFalseStatementCount    = 8
	DiscussionPromptCount      = 3
	VocabularyWordsPerLevel    = 12
)

// TTSの1チャンクあたりの最大文字数（API側の制限に合わせる）
const TTSMaxChunkLength = 280
