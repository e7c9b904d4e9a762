// Package translate provides machine translation clients.
package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const googleEndpoint = "https://translate.googleapis.com/translate_a/single"

// GoogleClient translates text through the public gtx endpoint. It needs
// no API key but carries no SLA; callers must tolerate failures.
type GoogleClient struct {
	httpClient *http.Client
	endpoint   string
}

// NewGoogleClient creates a GoogleClient with the given request timeout.
func NewGoogleClient(timeout time.Duration) *GoogleClient {
	return &GoogleClient{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   googleEndpoint,
	}
}

// Translate translates text from sourceLang to targetLang.
func (c *GoogleClient) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", sourceLang)
	params.Set("tl", targetLang)
	params.Set("dt", "t")
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("build translate request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate request: unexpected status %d", resp.StatusCode)
	}

	return parseGtxResponse(resp.Body)
}

// parseGtxResponse extracts the translation from the gtx payload. The
// body is a nested array: [[["translated","original",...],...],...],
// one inner element per source segment.
func parseGtxResponse(body io.Reader) (string, error) {
	var payload []json.RawMessage
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode translate response: %w", err)
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("empty translate response")
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", fmt.Errorf("decode translate segments: %w", err)
	}

	var b strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		var part string
		if err := json.Unmarshal(seg[0], &part); err != nil {
			continue
		}
		b.WriteString(part)
	}
	return b.String(), nil
}
