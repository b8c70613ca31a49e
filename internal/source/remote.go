package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dianjobs/internal"
	"dianjobs/internal/config"
)

// RemoteClient fetches the postings table wholesale from the remote
// store (a PostgREST endpoint). One bounded request, no retries: any
// failure makes the caller fall through to the next source.
type RemoteClient struct {
	cfg        config.Config
	httpClient *http.Client
}

func NewRemoteClient(cfg config.Config) *RemoteClient {
	return &RemoteClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: time.Duration(cfg.SupabaseTimeoutMs) * time.Millisecond},
	}
}

func (c *RemoteClient) FetchAll(ctx context.Context) ([]internal.RawRecord, error) {
	if !c.cfg.RemoteConfigured() {
		return nil, errors.New("remote store not configured")
	}

	base := strings.TrimRight(c.cfg.SupabaseURL, "/")
	u, err := url.Parse(base + "/rest/v1/" + url.PathEscape(c.cfg.SupabaseTable))
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("select", "*")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("apikey", c.cfg.SupabaseKey)
	req.Header.Set("Authorization", "Bearer "+c.cfg.SupabaseKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("remote store status %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var records []internal.RawRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decode remote rows: %w", err)
	}
	if len(records) == 0 {
		return nil, errors.New("remote store returned no rows")
	}
	return records, nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
