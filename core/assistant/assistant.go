// Package assistant proxies the shopping-assistant widget to a hosted
// generative model. The provider is treated as opaque and unreliable:
// one attempt per question, no retry, and a canned apology on failure.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mobicore/storefront/core/catalog"
)

// Fallback is shown to the user whenever the provider cannot answer.
const Fallback = "Sorry, I'm having trouble connecting right now. Please try again later."

const promptTemplate = `You are a helpful phone sales assistant for MobiCore.
Here is our current inventory: %s.

User asked: %s

Recommend specific phones from our inventory based on their needs. Be concise, professional, and helpful. Use markdown for formatting.`

type Config struct {
	APIKey  string
	Model   string
	URL     string
	Timeout time.Duration
}

type Client struct {
	cfg     Config
	httpc   *http.Client
	catalog json.RawMessage
}

// New builds a client answering over the given catalog. The catalog is
// immutable, so it is serialized into the prompt once up front.
func New(cfg Config, cat *catalog.Catalog) (*Client, error) {
	inventory, err := json.Marshal(cat.List(""))
	if err != nil {
		return nil, fmt.Errorf("encoding catalog for prompts: %w", err)
	}

	return &Client{
		cfg:     cfg,
		httpc:   &http.Client{Timeout: cfg.Timeout},
		catalog: inventory,
	}, nil
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Recommend asks the model for a recommendation over the catalog. The
// returned text is markdown. Any provider failure comes back as an error;
// the handler owns the user-facing fallback.
func (c *Client) Recommend(ctx context.Context, message string) (string, error) {
	if c.cfg.APIKey == "" {
		return "", errors.New("assistant is not configured: missing API key")
	}

	prompt := fmt.Sprintf(promptTemplate, c.catalog, message)

	body, err := json.Marshal(generateRequest{
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: prompt}},
		}},
	})
	if err != nil {
		return "", fmt.Errorf("encoding generate request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.cfg.URL, c.cfg.Model, c.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("calling assistant provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant provider replied with status %d", resp.StatusCode)
	}

	var gr generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", fmt.Errorf("decoding generate response: %w", err)
	}

	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("assistant provider returned no candidates")
	}

	return gr.Candidates[0].Content.Parts[0].Text, nil
}
