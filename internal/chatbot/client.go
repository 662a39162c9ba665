// Package chatbot is a client for Gemini-style generateContent endpoints.
package chatbot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dtroode/homestock-server/internal/model"
)

// maxResponseSize bounds the upstream body read into memory.
const maxResponseSize = 1 << 20

type Client struct {
	endpoint string
	apiKey   string
	model    string
	http     *http.Client
}

var _ model.Generator = (*Client)(nil)

func NewClient(endpoint, apiKey, modelName string, timeout time.Duration) *Client {
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
		model:    modelName,
		http:     &http.Client{Timeout: timeout},
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Generate sends prompt as a single user turn and returns the first
// candidate's text. Every failure wraps model.ErrUpstream.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	u := c.endpoint + "/models/" + url.PathEscape(c.model) + ":generateContent"
	if c.apiKey != "" {
		u += "?key=" + url.QueryEscape(c.apiKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: failed to build request: %v", model.ErrUpstream, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: request failed: %v", model.ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response: %v", model.ErrUpstream, err)
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("%w: status %d", model.ErrUpstream, resp.StatusCode)
		}
		return "", fmt.Errorf("%w: bad response: %v", model.ErrUpstream, err)
	}

	if resp.StatusCode != http.StatusOK {
		if out.Error != nil {
			return "", fmt.Errorf("%w: status %d: %s", model.ErrUpstream, resp.StatusCode, out.Error.Message)
		}
		return "", fmt.Errorf("%w: status %d", model.ErrUpstream, resp.StatusCode)
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no candidates", model.ErrUpstream)
	}

	text := strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("%w: empty reply", model.ErrUpstream)
	}
	return text, nil
}
