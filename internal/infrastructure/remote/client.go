// Package remote talks to an HTTP rules service that classifies enemy
// behavior and writes victory messages.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/younwookim/stickman/internal/domain/entity"
)

const (
	behaviorPath = "/enemy-behavior"
	victoryPath  = "/victory-message"

	// maxErrorBody bounds how much of a failed response ends up in the error
	maxErrorBody = 512
)

// StatusError is returned for a non-2xx response
type StatusError struct {
	Path   string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("remote %s: status %d: %s", e.Path, e.Status, e.Body)
}

type victoryRequest struct {
	PlayerName string `json:"playerName"`
}

type victoryResponse struct {
	Message string `json:"message"`
}

// Client calls the rules service. It is safe for concurrent use.
type Client struct {
	endpoint string
	http     *http.Client
	log      *zap.Logger
}

// New creates a client for the service at endpoint. A nil httpClient uses
// http.DefaultClient; deadlines come from the request context.
func New(endpoint string, httpClient *http.Client, log *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		http:     httpClient,
		log:      log,
	}
}

// Classify posts the perception summary and decodes the verdict
func (c *Client) Classify(ctx context.Context, q entity.BehaviorQuery) (entity.BehaviorVerdict, error) {
	var v entity.BehaviorVerdict
	if err := c.post(ctx, behaviorPath, q, &v); err != nil {
		return entity.BehaviorVerdict{}, err
	}
	return v, nil
}

// VictoryMessage asks the service to congratulate playerName
func (c *Client) VictoryMessage(ctx context.Context, playerName string) (string, error) {
	var resp victoryResponse
	if err := c.post(ctx, victoryPath, victoryRequest{PlayerName: playerName}, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode %s request: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("remote %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Path: path, Status: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	c.log.Debug("remote call", zap.String("path", path), zap.Int("status", resp.StatusCode))
	return nil
}
