package drill

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/okian/draftboard/internal/domain/types"
)

// client wraps http.Client with the drill's base URL.
type client struct {
	http    *http.Client
	baseURL string
}

func newClient(baseURL string, timeout time.Duration) *client {
	return &client{
		http:    &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

func (c *client) do(req *http.Request, wantStatus int, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response %s: %w", req.URL.Path, err)
	}
	if resp.StatusCode != wantStatus {
		return fmt.Errorf("%s returned %d: %s", req.URL.Path, resp.StatusCode, bytes.TrimSpace(body))
	}
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("decode response %s: %w", req.URL.Path, err)
		}
	}
	return nil
}

// createSession opens a new draft session and returns its id.
func (c *client) createSession(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/sessions", nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	var resp struct {
		SessionID string `json:"session_id"`
	}
	if err := c.do(req, http.StatusCreated, &resp); err != nil {
		return "", err
	}
	return resp.SessionID, nil
}

// uploadCSV posts a ranking document and returns the roster size.
func (c *client) uploadCSV(ctx context.Context, session string, content []byte) (int, error) {
	url := c.baseURL + "/sessions/" + session + "/document"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(content))
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "text/csv")

	var resp struct {
		RosterSize int `json:"roster_size"`
	}
	if err := c.do(req, http.StatusOK, &resp); err != nil {
		return 0, err
	}
	return resp.RosterSize, nil
}

// board reads one of the roster, remaining or drafted lists.
func (c *client) board(ctx context.Context, session, which string) ([]types.Row, error) {
	url := c.baseURL + "/sessions/" + session + "/" + which
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	var rows []types.Row
	if err := c.do(req, http.StatusOK, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// draft moves players to the drafted side and returns how many moved.
func (c *client) draft(ctx context.Context, session string, players []string) (int, error) {
	body, err := json.Marshal(map[string][]string{"players": players})
	if err != nil {
		return 0, fmt.Errorf("marshal request: %w", err)
	}
	url := c.baseURL + "/sessions/" + session + "/draft"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var resp struct {
		Moved int `json:"moved"`
	}
	if err := c.do(req, http.StatusOK, &resp); err != nil {
		return 0, err
	}
	return resp.Moved, nil
}

// export downloads one of the CSV exports and returns its body.
func (c *client) export(ctx context.Context, session, name string) ([]byte, error) {
	url := c.baseURL + "/sessions/" + session + "/export/" + name
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response %s: %w", req.URL.Path, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned %d: %s", req.URL.Path, resp.StatusCode, bytes.TrimSpace(body))
	}
	return body, nil
}

// reset returns every drafted player to the pool.
func (c *client) reset(ctx context.Context, session string) error {
	url := c.baseURL + "/sessions/" + session + "/reset"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return c.do(req, http.StatusNoContent, nil)
}
