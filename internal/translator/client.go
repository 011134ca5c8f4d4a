package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Client calls a LibreTranslate-compatible endpoint.
// No request timeout is configured beyond the transport default, so a
// hanging request stays pending until the server answers.
type Client struct {
	apiURL string
	apiKey string
	http   *http.Client
}

// NewClient creates a client for the given endpoint. apiKey may be empty
// for keyless instances.
func NewClient(apiURL, apiKey string) *Client {
	return &Client{
		apiURL: apiURL,
		apiKey: apiKey,
		http:   &http.Client{},
	}
}

type translateRequest struct {
	Q      string `json:"q"`
	Source string `json:"source"`
	Target string `json:"target"`
	Format string `json:"format"`
	APIKey string `json:"api_key,omitempty"`
}

type translateResponse struct {
	TranslatedText string `json:"translatedText"`
}

// Translate sends one request and returns the translated text exactly as
// the endpoint produced it. Failures are not retried.
func (c *Client) Translate(ctx context.Context, text string) (string, error) {
	if text == "" {
		return "", ErrEmptyInput
	}

	body, err := json.Marshal(translateRequest{
		Q:      text,
		Source: "en",
		Target: "zh",
		Format: "text",
		APIKey: c.apiKey,
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: unexpected status %d", ErrNetwork, resp.StatusCode)
	}

	var decoded translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if decoded.TranslatedText == "" {
		return "", fmt.Errorf("%w: translatedText missing", ErrMalformedResponse)
	}

	return decoded.TranslatedText, nil
}
