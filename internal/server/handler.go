// Package server 提供发布 Markdown 到 Notion 的 HTTP 接口
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	notionify "github.com/riverfjs/notionify-go"
	"github.com/riverfjs/notionify-go/internal/logging"
	"github.com/riverfjs/notionify-go/internal/notion"
)

const defaultMaxBodyBytes = 5 << 20

// Request 请求体
type Request struct {
	Title           string `json:"title"`
	MarkdownContent string `json:"markdownContent"`
	NotionToken     string `json:"notionToken"`
	ParentPageID    string `json:"parentPageId"`
}

// Validate ensures every field is present.
func (r Request) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.MarkdownContent, validation.Required),
		validation.Field(&r.NotionToken, validation.Required),
		validation.Field(&r.ParentPageID, validation.Required),
	)
}

// Response 成功响应
type Response struct {
	Success bool   `json:"success"`
	PageID  string `json:"pageId"`
	URL     string `json:"url"`
	Blocks  int    `json:"blocks"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Fields  error  `json:"fields,omitempty"`
}

// ClientFactory 按请求中的 token 创建 Notion 客户端
type ClientFactory func(token string) notionify.PageCreator

// Handler POST 请求体转换为 Notion 页面
type Handler struct {
	newClient    ClientFactory
	logger       logging.Logger
	convertOpts  []notionify.Option
	maxBodyBytes int64
}

// Option 配置 Handler
type Option func(*Handler)

// WithClientFactory 替换 Notion 客户端的创建方式
func WithClientFactory(factory ClientFactory) Option {
	return func(h *Handler) {
		if factory != nil {
			h.newClient = factory
		}
	}
}

// WithLogger 设置日志
func WithLogger(logger logging.Logger) Option {
	return func(h *Handler) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithConvertOptions 设置转换选项
func WithConvertOptions(opts ...notionify.Option) Option {
	return func(h *Handler) {
		h.convertOpts = append(h.convertOpts, opts...)
	}
}

// WithMaxBodyBytes 限制请求体大小
func WithMaxBodyBytes(n int64) Option {
	return func(h *Handler) {
		if n > 0 {
			h.maxBodyBytes = n
		}
	}
}

// NewHandler 创建 Handler
func NewHandler(opts ...Option) *Handler {
	h := &Handler{
		newClient: func(token string) notionify.PageCreator {
			return notion.NewClient(token)
		},
		logger:       logging.NoOp(),
		maxBodyBytes: defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ServeHTTP 只接受 POST
//
// 状态码：缺少字段 400；Notion 返回的错误原样透传状态码与响应体；其余失败 500。
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	var req Request
	body := http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if err := req.Validate(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing required fields", Fields: err})
		return
	}

	client := h.newClient(req.NotionToken)
	result, err := notionify.Publish(r.Context(), client, notionify.PublishRequest{
		Title:    req.Title,
		Markdown: req.MarkdownContent,
		ParentID: req.ParentPageID,
	}, h.convertOpts...)
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.logger.Info("page published", "page_id", result.PageID, "blocks", result.Blocks)
	writeJSON(w, http.StatusOK, Response{
		Success: true,
		PageID:  result.PageID,
		URL:     result.URL,
		Blocks:  result.Blocks,
	})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var apiErr *notion.APIError
	switch {
	case errors.As(err, &apiErr):
		h.logger.Warn("notion rejected request", "status", apiErr.StatusCode, "code", apiErr.Code)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(apiErr.StatusCode)
		_, _ = w.Write([]byte(apiErr.Body))
	case notionify.IsValidationError(err):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		h.logger.Error("publish failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// CORSConfig holds CORS middleware configuration.
type CORSConfig struct {
	AllowedOrigins []string // empty = allow all (*)
}

// CORSMiddleware adds CORS headers and answers preflight requests.
func CORSMiddleware(cfg CORSConfig, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		allowedOrigin := "*"
		if len(cfg.AllowedOrigins) > 0 {
			allowedOrigin = ""
			for _, o := range cfg.AllowedOrigins {
				if strings.EqualFold(o, origin) {
					allowedOrigin = origin
					break
				}
			}
		}

		if allowedOrigin != "" {
			w.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}

		if r.Method == http.MethodOptions {
			if allowedOrigin == "" {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
