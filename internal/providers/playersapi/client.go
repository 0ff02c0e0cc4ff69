package playersapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/preston-bernstein/baseball-stats-dashboard/internal/domain/players"
	"github.com/preston-bernstein/baseball-stats-dashboard/internal/providers"
)

// Config controls how the client reaches the players REST API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client talks to the players REST API. Every method is exactly one request.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

var _ providers.DataSource = (*Client)(nil)

// NewClient constructs a players API client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// BaseURL returns the normalized API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListPlayers fetches the whole collection with GET /players.
func (c *Client) ListPlayers(ctx context.Context) ([]players.Player, error) {
	body, err := c.do(ctx, "list players", http.MethodGet, "/players", nil)
	if err != nil {
		return nil, err
	}

	items := make([]players.Player, 0)
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("list players: decode: %w", err)
	}
	return items, nil
}

// DescribePlayer fetches GET /players/description/{id}.
func (c *Client) DescribePlayer(ctx context.Context, id int) (players.PlayerWithDescription, error) {
	body, err := c.do(ctx, "describe player", http.MethodGet, "/players/description/"+strconv.Itoa(id), nil)
	if err != nil {
		return players.PlayerWithDescription{}, err
	}

	var out players.PlayerWithDescription
	if err := json.Unmarshal(body, &out); err != nil {
		return players.PlayerWithDescription{}, fmt.Errorf("describe player: decode: %w", err)
	}
	return out, nil
}

// CreatePlayer sends POST /players/{id}. The backend answers with either the stored
// record or a {"message","player_id"} acknowledgement; the sent player is returned
// unless the response carries a full record.
func (c *Client) CreatePlayer(ctx context.Context, p players.Player) (players.Player, error) {
	body, err := c.do(ctx, "create player", http.MethodPost, "/players/"+strconv.Itoa(p.ID), p)
	if err != nil {
		return players.Player{}, err
	}
	return decodePlayerOr(body, p), nil
}

// UpdatePlayer sends PUT /players/{id}.
func (c *Client) UpdatePlayer(ctx context.Context, p players.Player) (players.Player, error) {
	body, err := c.do(ctx, "update player", http.MethodPut, "/players/"+strconv.Itoa(p.ID), p)
	if err != nil {
		return players.Player{}, err
	}
	return decodePlayerOr(body, p), nil
}

// DeletePlayer sends DELETE /players/{id}. Any 2xx, with or without a body, is success.
func (c *Client) DeletePlayer(ctx context.Context, id int) error {
	_, err := c.do(ctx, "delete player", http.MethodDelete, "/players/"+strconv.Itoa(id), nil)
	return err
}

func (c *Client) do(ctx context.Context, op, method, path string, payload any) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("%s: encode: %w", op, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &providers.StatusError{
			Op:         op,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", op, err)
	}
	return body, nil
}

// decodePlayerOr returns the player in body when it decodes to a full record, otherwise sent.
func decodePlayerOr(body []byte, sent players.Player) players.Player {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return sent
	}

	var ack createAck
	if err := json.Unmarshal(body, &ack); err == nil && ack.PlayerID != nil {
		return sent
	}

	var got players.Player
	if err := json.Unmarshal(body, &got); err != nil || got.ID == 0 {
		return sent
	}
	return got
}
