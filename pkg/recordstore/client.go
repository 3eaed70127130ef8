package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client calls a record server over HTTP.
type Client struct {
	endpoint  string
	projectID string
	publicKey string
	httpc     *http.Client
}

var _ Backend = (*Client)(nil)

// NewClient returns a client for the record server at endpoint. A zero
// timeout falls back to 20s.
func NewClient(endpoint, projectID, publicKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		endpoint:  strings.TrimRight(endpoint, "/"),
		projectID: projectID,
		publicKey: publicKey,
		httpc:     &http.Client{Timeout: timeout},
	}
}

func (c *Client) FetchRecords(ctx context.Context, table string, p FetchParams) (*Response, error) {
	return c.call(ctx, table, "fetch", p)
}

func (c *Client) GetRecordByID(ctx context.Context, table string, id int, p FetchParams) (*Response, error) {
	return c.call(ctx, table, "get/"+strconv.Itoa(id), p)
}

func (c *Client) CreateRecord(ctx context.Context, table string, p RecordsParams) (*Response, error) {
	return c.call(ctx, table, "create", p)
}

func (c *Client) UpdateRecord(ctx context.Context, table string, p RecordsParams) (*Response, error) {
	return c.call(ctx, table, "update", p)
}

func (c *Client) DeleteRecord(ctx context.Context, table string, p DeleteParams) (*Response, error) {
	return c.call(ctx, table, "delete", p)
}

func (c *Client) call(ctx context.Context, table, op string, body any) (*Response, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode %s request: %w", op, err)
	}
	u := c.endpoint + "/v1/tables/" + url.PathEscape(table) + "/" + op
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.projectID != "" {
		req.Header.Set("X-Project-Id", c.projectID)
	}
	if c.publicKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.publicKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", op, err)
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return nil, fmt.Errorf("%s %s: status %d", op, table, resp.StatusCode)
	}
	var out Response
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode %s response (status %d): %w", op, resp.StatusCode, err)
	}
	if resp.StatusCode >= http.StatusBadRequest && out.Success {
		// a 4xx is never a success, whatever the body says
		out.Success = false
	}
	if !out.Success && out.Message == "" {
		out.Message = http.StatusText(resp.StatusCode)
	}
	return &out, nil
}

// Ping fetches at most one record of table to check that the server answers
// and accepts the credentials.
func (c *Client) Ping(ctx context.Context, table string) error {
	resp, err := c.FetchRecords(ctx, table, FetchParams{PagingInfo: &Paging{Limit: 1}})
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("fetch %s: %s", table, resp.Message)
	}
	return nil
}
