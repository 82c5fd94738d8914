// internal/tts/google.go
package tts

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

// Synthesizer はテキストをMP3音声に変換します
type Synthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

// GoogleClient はGoogle Cloud Text-to-Speech (REST) のクライアントです。
// 同一チャンクの再合成を避けるためにメモリ内キャッシュを持つ
type GoogleClient struct {
	apiKey       string
	languageCode string
	httpClient   *http.Client

	mu    sync.Mutex
	cache map[string][]byte
}

func NewGoogleClient(apiKey, languageCode string) *GoogleClient {
	return &GoogleClient{
		apiKey:       apiKey,
		languageCode: languageCode,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		cache: make(map[string][]byte),
	}
}

func (c *GoogleClient) cacheKey(text string) string {
	h := sha256.Sum256([]byte(c.languageCode + ":" + text))
	return hex.EncodeToString(h[:16])
}

func (c *GoogleClient) Synthesize(ctx context.Context, text string) ([]byte, error) {
	key := c.cacheKey(text)

	c.mu.Lock()
	if data, ok := c.cache[key]; ok {
		c.mu.Unlock()
		return data, nil
	}
	c.mu.Unlock()

	data, err := c.callGoogleTTS(ctx, text)
	if err != nil {
		// 失敗はキャッシュしない
		return nil, err
	}

	c.mu.Lock()
	c.cache[key] = data
	c.mu.Unlock()
	return data, nil
}

func (c *GoogleClient) callGoogleTTS(ctx context.Context, text string) ([]byte, error) {
	url := "https://texttospeech.googleapis.com/v1/text:synthesize?key=" + c.apiKey

	reqBody := map[string]interface{}{
		"input": map[string]string{
			"text": text,
		},
		"voice": map[string]interface{}{
			"languageCode": c.languageCode,
			"ssmlGender":   "FEMALE",
		},
		"audioConfig": map[string]string{
			"audioEncoding": "MP3",
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("TTS request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("TTS API error %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		AudioContent string `json:"audioContent"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	audio, err := base64.StdEncoding.DecodeString(result.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("decode audio: %w", err)
	}

	return audio, nil
}
