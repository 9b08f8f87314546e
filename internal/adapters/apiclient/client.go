package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"eventattendance/internal/domain"
)

var errUnavailable = errors.New("api unavailable")

// envelope mirrors the server's JSON response wrapper.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Client talks to the attendance API on behalf of a check-in station.
type Client struct {
	baseURL string
	token   string
	client  *http.Client
}

// New returns a Client for the API at baseURL authenticating with a bearer token.
func New(baseURL, token string, client *http.Client) *Client {
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{baseURL: baseURL, token: token, client: client}
}

func (c *Client) participantsURL(workspaceID, eventID string) string {
	return fmt.Sprintf("%s/workspaces/%s/events/%s/participants",
		c.baseURL, url.PathEscape(workspaceID), url.PathEscape(eventID))
}

func (c *Client) ListParticipants(ctx context.Context, workspaceID, eventID string) ([]*domain.Participant, error) {
	var list []*domain.Participant
	if err := c.do(ctx, http.MethodGet, c.participantsURL(workspaceID, eventID), nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *Client) UpdateParticipantStatus(ctx context.Context, workspaceID, eventID, participantID string, status domain.ParticipantStatus) error {
	u := c.participantsURL(workspaceID, eventID) + "/" + url.PathEscape(participantID) + "/status"
	body := map[string]domain.ParticipantStatus{"status": status}
	return c.do(ctx, http.MethodPatch, u, body, nil)
}

// Ping reports whether the API health endpoint answers with 200.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/healthz", nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status: %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, u string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, u, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil && err != io.EOF {
		return fmt.Errorf("failed to decode api response: %w", err)
	}
	if resp.StatusCode >= 300 {
		msg := http.StatusText(resp.StatusCode)
		if env.Error != nil && env.Error.Message != "" {
			msg = env.Error.Message
		}
		return fmt.Errorf("%w: api returned status %d: %s", statusError(resp.StatusCode), resp.StatusCode, msg)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode api data: %w", err)
		}
	}
	return nil
}

// statusError maps an HTTP status to the domain error a caller can match on.
func statusError(code int) error {
	switch code {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusForbidden, http.StatusUnauthorized:
		return domain.ErrForbidden
	case http.StatusConflict:
		return domain.ErrInvalidTransition
	case http.StatusBadRequest:
		return domain.ErrInvalidInput
	}
	return errUnavailable
}
