//go:generate mockery --name Generator --output ./mocks --outpkg mocks --case=underscore
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go_5_level_reader/internal/config"
	"go_5_level_reader/internal/model"
)

// Generator はテキスト生成コラボレータのインターフェースです。
// 実装は信頼できないオラクルとして扱い、返ってきた文字列の検証は呼び出し側が行う。
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Client はOpenAI互換のChat Completions APIを呼ぶGenerator実装です
type Client struct {
	apiKey      string
	apiURL      string
	model       string
	temperature float64
	httpClient  *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		apiKey:      cfg.LLM.APIKey,
		apiURL:      cfg.LLM.APIURL,
		model:       cfg.LLM.Model,
		temperature: 0.7,
		// ハングさせない。タイムアウトはそのままGenerationFailureとして伝播する
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.LLM.TimeoutSeconds) * time.Second,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (c *Client) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("%w: LLM API key is not configured", model.ErrGenerationFailure)
	}

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: c.temperature,
	}

	requestData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal request: %v", model.ErrGenerationFailure, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(requestData))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", model.ErrGenerationFailure, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: request failed: %v", model.ErrGenerationFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response: %v", model.ErrGenerationFailure, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: API returned status %d: %s", model.ErrGenerationFailure, resp.StatusCode, truncate(string(body), 200))
	}

	var response chatResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", model.ErrGenerationFailure, err)
	}
	if response.Error != nil {
		return "", fmt.Errorf("%w: API error: %s", model.ErrGenerationFailure, response.Error.Message)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("%w: no response choices returned", model.ErrGenerationFailure)
	}

	content := strings.TrimSpace(response.Choices[0].Message.Content)
	if content == "" {
		// 空コンテンツは成功扱いにしない（取り込み全体を失敗させる）
		return "", fmt.Errorf("%w: empty content returned", model.ErrGenerationFailure)
	}
	return content, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
