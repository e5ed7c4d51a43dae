package resume

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Token NLP 分词结果
type Token struct {
	Text string `json:"text"`
	POS  string `json:"pos"`
}

// Tagger 可选的分词/词性标注能力，未配置时仅使用关键词匹配
type Tagger interface {
	Tag(ctx context.Context, text string) ([]Token, error)
}

// HTTPTagger 调用外部 NLP 服务（如 spaCy sidecar）
type HTTPTagger struct {
	Endpoint string
	Client   *http.Client
}

func NewHTTPTagger(endpoint string, timeout time.Duration) *HTTPTagger {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &HTTPTagger{
		Endpoint: endpoint,
		Client:   &http.Client{Timeout: timeout},
	}
}

type tagRequest struct {
	Text string `json:"text"`
}

type tagResponse struct {
	Tokens []Token `json:"tokens"`
	Error  string  `json:"error,omitempty"`
}

func (t *HTTPTagger) Tag(ctx context.Context, text string) ([]Token, error) {
	body, err := json.Marshal(tagRequest{Text: text})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("nlp service error (status %d): %s", resp.StatusCode, string(msg))
	}

	var out tagResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode nlp response: %w", err)
	}
	if out.Error != "" {
		return nil, fmt.Errorf("nlp service error: %s", out.Error)
	}
	return out.Tokens, nil
}
