// Package genai calls the external text-generation service that writes
// listing descriptions. The service owns the prompt; this client only sends
// the structured attributes and reads back the text.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

type DescriptionInput struct {
	Title        string  `json:"title"`
	PropertyType string  `json:"propertyType"`
	Location     string  `json:"location"`
	Bedrooms     float64 `json:"bedrooms"`
	Bathrooms    float64 `json:"bathrooms"`
	AreaSqFt     float64 `json:"areaSqFt"`
	Amenities    string  `json:"amenities"`
	Description  string  `json:"description,omitempty"`
}

type Generator interface {
	GenerateDescription(ctx context.Context, in DescriptionInput) (string, error)
}

var ErrEmptyDescription = errors.New("genai: empty description")

type HTTPGenerator struct {
	endpoint string
	apiKey   string
	client   *http.Client
}

func NewHTTPGenerator(endpoint, apiKey string, timeout time.Duration) *HTTPGenerator {
	return &HTTPGenerator{
		endpoint: endpoint,
		apiKey:   apiKey,
		client:   &http.Client{Timeout: timeout},
	}
}

type descriptionResponse struct {
	PropertyDescription string `json:"propertyDescription"`
}

// GenerateDescription makes a single attempt; callers that want retries add them.
func (g *HTTPGenerator) GenerateDescription(ctx context.Context, in DescriptionInput) (string, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if g.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("call generator: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("generator returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var out descriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	text := strings.TrimSpace(out.PropertyDescription)
	if text == "" {
		return "", ErrEmptyDescription
	}
	return text, nil
}
