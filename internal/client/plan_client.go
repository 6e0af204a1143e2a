// Package client calls the plan generation API from the browser-facing process.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fitsync/fitsync-ai/internal/domain"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const generatePath = "/generate_fitness_plan"

// StatusError is returned when the API answers with anything but 200.
type StatusError struct {
	StatusCode int
	Message    string // the API's "error" field, when present
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("Failed to get a response from LLM. Status Code: %d", e.StatusCode)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// PlanClient posts profiles to the API. It implements service.PlanRequester.
type PlanClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewPlanClient creates a client for baseURL. A zero timeout leaves the request bounded
// only by the caller's context.
func NewPlanClient(baseURL string, timeout time.Duration) *PlanClient {
	return &PlanClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type planResponse struct {
	FitnessPlan string `json:"fitness_plan"`
	Error       string `json:"error"`
}

// RequestPlan makes one blocking POST. It does not retry.
func (c *PlanClient) RequestPlan(ctx context.Context, profile domain.Profile) (string, error) {
	reqBody, err := json.Marshal(profile)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+generatePath, bytes.NewReader(reqBody))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error while sending data to the backend: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read backend response: %w", err)
	}

	var parsed planResponse
	decodeErr := json.Unmarshal(body, &parsed)

	if resp.StatusCode != http.StatusOK {
		return "", &StatusError{StatusCode: resp.StatusCode, Message: parsed.Error}
	}
	if decodeErr != nil {
		return "", fmt.Errorf("decode backend response: %w", decodeErr)
	}
	return parsed.FitnessPlan, nil
}
