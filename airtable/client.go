// Package airtable wraps github.com/mehanizm/airtable for the record
// operations of a single table.
package airtable

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	at "github.com/mehanizm/airtable"
)

const (
	DefaultBaseURL   = "https://api.airtable.com/v0"
	DefaultTimeout   = 15 * time.Second
	DefaultRateLimit = 4 // requests per second; Airtable allows 5

	// pageSize is the largest page the list endpoint returns.
	pageSize = 100
)

// Logger is satisfied by echo.Logger and gommon's *log.Logger.
type Logger interface {
	Debugf(format string, args ...any)
	Errorf(format string, args ...any)
}

type Config struct {
	Token     string
	BaseID    string
	Table     string
	BaseURL   string
	Timeout   time.Duration
	RateLimit int
}

// Client talks to one table of one Airtable base.
type Client struct {
	cfg   Config
	table *at.Table
}

// Record is a table row. Fields stays raw so callers decode it into their
// own typed schema.
type Record struct {
	ID          string          `json:"id"`
	CreatedTime string          `json:"createdTime,omitempty"`
	Fields      json.RawMessage `json:"fields"`
}

type Sort struct {
	Field     string
	Direction string // "asc" or "desc"
}

type ListOptions struct {
	Formula string
	Sort    []Sort
}

// NewClient builds a client for cfg. A nil logger disables request logging.
func NewClient(cfg Config, logger Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = DefaultRateLimit
	}

	var transport http.RoundTripper = http.DefaultTransport
	if logger != nil {
		transport = &loggingTransport{inner: transport, logger: logger}
	}

	api := at.NewClient(cfg.Token)
	api.SetCustomClient(&http.Client{Timeout: cfg.Timeout, Transport: transport})
	api.SetRateLimit(cfg.RateLimit)
	if err := api.SetBaseURL(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("airtable: %w", err)
	}
	return &Client{
		cfg:   cfg,
		table: api.GetTable(url.PathEscape(cfg.BaseID), url.PathEscape(cfg.Table)),
	}, nil
}

// List returns every record matching opts, following the offset cursor
// across pages.
func (c *Client) List(ctx context.Context, opts ListOptions) ([]Record, error) {
	params := url.Values{}
	params.Set("pageSize", strconv.Itoa(pageSize))
	if opts.Formula != "" {
		params.Set("filterByFormula", opts.Formula)
	}
	for i, s := range opts.Sort {
		params.Set(fmt.Sprintf("sort[%d][field]", i), s.Field)
		if s.Direction != "" {
			params.Set(fmt.Sprintf("sort[%d][direction]", i), s.Direction)
		}
	}

	var records []Record
	for {
		page, err := c.table.GetRecordsWithParamsContext(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", c.cfg.Table, classify(err))
		}
		for _, r := range page.Records {
			rec, err := fromAPI(r)
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
		}
		if page.Offset == "" {
			return records, nil
		}
		params.Set("offset", page.Offset)
	}
}

// Create inserts one record with the given fields.
func (c *Client) Create(ctx context.Context, fields any) (Record, error) {
	m, err := fieldMap(fields)
	if err != nil {
		return Record{}, err
	}
	resp, err := c.table.AddRecordsContext(ctx, &at.Records{
		Records: []*at.Record{{Fields: m}},
	})
	if err != nil {
		return Record{}, fmt.Errorf("create %s record: %w", c.cfg.Table, classify(err))
	}
	return first(resp)
}

// Update patches the given fields of record id, leaving the rest untouched.
func (c *Client) Update(ctx context.Context, id string, fields any) (Record, error) {
	m, err := fieldMap(fields)
	if err != nil {
		return Record{}, err
	}
	resp, err := c.table.UpdateRecordsPartialContext(ctx, &at.Records{
		Records: []*at.Record{{ID: id, Fields: m}},
	})
	if err != nil {
		return Record{}, fmt.Errorf("update %s record %s: %w", c.cfg.Table, id, classify(err))
	}
	return first(resp)
}

// Delete removes record id.
func (c *Client) Delete(ctx context.Context, id string) error {
	if _, err := c.table.DeleteRecordsContext(ctx, []string{id}); err != nil {
		return fmt.Errorf("delete %s record %s: %w", c.cfg.Table, id, classify(err))
	}
	return nil
}

// fieldMap turns a tagged struct into the map the library sends.
func fieldMap(fields any) (map[string]any, error) {
	b, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("encode fields: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("encode fields: %w", err)
	}
	return m, nil
}

func fromAPI(r *at.Record) (Record, error) {
	fields, err := json.Marshal(r.Fields)
	if err != nil {
		return Record{}, fmt.Errorf("decode record %s: %w", r.ID, err)
	}
	return Record{ID: r.ID, CreatedTime: r.CreatedTime, Fields: fields}, nil
}

func first(resp *at.Records) (Record, error) {
	if resp == nil || len(resp.Records) == 0 {
		return Record{}, errors.New("airtable: empty response")
	}
	return fromAPI(resp.Records[0])
}
