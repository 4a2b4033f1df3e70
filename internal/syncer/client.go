// Package syncer replicates the local activity log to the FocusUp server.
// Sync is strictly best-effort: failures are logged at debug level and
// swallowed, and callers are never blocked on the network.
package syncer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Prtik12/FocusUp/internal/activity"
)

const defaultTimeout = 10 * time.Second

// Config wires a Client to the collector endpoint.
type Config struct {
	// BaseURL is the server root, e.g. "https://focusup.example.com".
	BaseURL string
	// Token is the bearer token presented on every request.
	Token string
	// Timeout bounds each sync attempt. Defaults to 10s.
	Timeout time.Duration
	Logger  zerolog.Logger
}

type payload struct {
	SessionID  string       `json:"session_id"`
	Activities activity.Log `json:"activities"`
}

// Client posts activity logs to the server's sync collector. It carries a
// per-process session id so the server can tell concurrent agents apart.
// Client implements tracker.Notifier.
type Client struct {
	baseURL   string
	token     string
	sessionID string
	http      *http.Client
	logger    zerolog.Logger
}

// New builds a Client with a fresh session id.
func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Client{
		baseURL:   cfg.BaseURL,
		token:     cfg.Token,
		sessionID: uuid.NewString(),
		http:      &http.Client{Timeout: cfg.Timeout},
		logger:    cfg.Logger,
	}
}

// SessionID returns the id attached to every batch from this process.
func (c *Client) SessionID() string { return c.sessionID }

// Notify ships the log to the server on a detached goroutine and returns
// immediately. The one-way signature is the contract: there is no result
// to wait for and no error to handle.
func (c *Client) Notify(log activity.Log) {
	batch := make(activity.Log, len(log))
	copy(batch, log)
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), c.http.Timeout)
		defer cancel()
		if err := c.send(ctx, batch); err != nil {
			c.logger.Debug().Err(err).Msg("activity sync failed")
		}
	}()
}

// send performs one sync attempt.
func (c *Client) send(ctx context.Context, log activity.Log) error {
	body, err := json.Marshal(payload{SessionID: c.sessionID, Activities: log})
	if err != nil {
		return fmt.Errorf("encode batch: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/activity", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("post batch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("sync rejected: %s", resp.Status)
	}
	return nil
}
