package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/riverfjs/notionify-go/internal/logging"
	"github.com/riverfjs/notionify-go/internal/types"
)

const (
	DefaultBaseURL = "https://api.notion.com/v1"
	DefaultVersion = "2022-06-28"

	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "notionify-go/1.0"
)

// ErrInvalidID 页面 ID 既不是 UUID，也不是带 ID 的 Notion 页面链接
var ErrInvalidID = errors.New("invalid notion id")

// APIError Notion 返回的非 2xx 响应，Body 为原始响应体
type APIError struct {
	StatusCode int
	Body       string
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("notion api: status %d: %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("notion api: status %d", e.StatusCode)
}

// Page 创建成功的页面
type Page struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Client Notion API 客户端
type Client struct {
	token   string
	baseURL string
	version string
	client  *http.Client
	logger  logging.Logger
}

// Option 配置 Client
type Option func(*Client)

// WithBaseURL 设置 API 根地址，测试时指向 httptest 服务
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithVersion 设置 Notion-Version 请求头
func WithVersion(version string) Option {
	return func(c *Client) {
		c.version = version
	}
}

// WithHTTPClient 设置底层 HTTP 客户端
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.client = client
		}
	}
}

// WithLogger 设置日志
func WithLogger(logger logging.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient 创建客户端
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		token:   token,
		baseURL: DefaultBaseURL,
		version: DefaultVersion,
		client:  &http.Client{Timeout: defaultTimeout},
		logger:  logging.NoOp(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var idRe = regexp.MustCompile(`[0-9a-fA-F]{8}-?[0-9a-fA-F]{4}-?[0-9a-fA-F]{4}-?[0-9a-fA-F]{4}-?[0-9a-fA-F]{12}`)

// NormalizeID 接受带或不带连字符的 UUID，或以 ID 结尾的页面链接，返回标准 UUID 形式
func NormalizeID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if u, err := uuid.Parse(id); err == nil {
		return u.String(), nil
	}
	// 页面链接形如 https://www.notion.so/Title-<32 位十六进制>?v=...
	if path, _, _ := strings.Cut(id, "?"); path != "" {
		matches := idRe.FindAllString(path, -1)
		if len(matches) > 0 {
			if u, err := uuid.Parse(matches[len(matches)-1]); err == nil {
				return u.String(), nil
			}
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidID, id)
}

// CreatePage 在父页面下创建一个只有标题的页面
func (c *Client) CreatePage(ctx context.Context, parentID, title string) (*Page, error) {
	parent, err := NormalizeID(parentID)
	if err != nil {
		return nil, err
	}

	body := map[string]any{
		"parent": map[string]string{"page_id": parent},
		"properties": map[string]any{
			"title": map[string]any{
				"title": Title(title, types.DefaultMaxTextLength),
			},
		},
	}

	var page Page
	if err := c.do(ctx, http.MethodPost, "/pages", body, &page); err != nil {
		return nil, err
	}
	c.logger.Info("notion page created", "page_id", page.ID)
	return &page, nil
}

// AppendChildren 向 block（或页面）追加子 block，单次最多 100 个
func (c *Client) AppendChildren(ctx context.Context, blockID string, children []Block) error {
	id, err := NormalizeID(blockID)
	if err != nil {
		return err
	}
	if len(children) > types.DefaultBatchSize {
		return fmt.Errorf("append children: %d blocks exceeds limit of %d", len(children), types.DefaultBatchSize)
	}

	body := map[string]any{"children": children}
	if err := c.do(ctx, http.MethodPatch, "/blocks/"+id+"/children", body, nil); err != nil {
		return err
	}
	c.logger.Debug("notion children appended", "block_id", id, "count", len(children))
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", c.version)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", defaultUserAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	c.logger.Debug("notion request", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Body: string(data)}
		var payload struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &payload) == nil {
			apiErr.Code, apiErr.Message = payload.Code, payload.Message
		}
		c.logger.Warn("notion request failed", "method", method, "path", path, "status", resp.StatusCode, "code", apiErr.Code)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
