package notionify

import (
	"context"
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/riverfjs/notionify-go/internal/notion"
)

// PageCreator 创建页面并追加内容的 Notion 客户端，*notion.Client 满足该接口
type PageCreator interface {
	CreatePage(ctx context.Context, parentID, title string) (*notion.Page, error)
	AppendChildren(ctx context.Context, blockID string, children []notion.Block) error
}

// PublishRequest 发布请求
type PublishRequest struct {
	Title    string `json:"title"`
	Markdown string `json:"markdownContent"`
	ParentID string `json:"parentPageId"`
}

// Validate ensures every field is present and the parent id is parseable.
func (r PublishRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.By(notBlank("title"))),
		validation.Field(&r.Markdown, validation.Required),
		validation.Field(&r.ParentID, validation.Required, validation.By(func(value any) error {
			if _, err := notion.NormalizeID(value.(string)); err != nil {
				return validation.NewError("notionify.parent_id.invalid", "must be a page id or page url")
			}
			return nil
		})),
	)
}

func notBlank(field string) validation.RuleFunc {
	return func(value any) error {
		if strings.TrimSpace(value.(string)) == "" {
			return validation.NewError("notionify."+field+".blank", field+" must not be blank")
		}
		return nil
	}
}

// PublishResult 发布结果
type PublishResult struct {
	PageID  string `json:"pageId"`
	URL     string `json:"url"`
	Blocks  int    `json:"blocks"`
	Batches int    `json:"batches"`
}

// Publish 将 Markdown 转换后在父页面下创建新页面
//
// 步骤：
// 1. 校验请求
// 2. 转换 markdown 为块序列并序列化为 Notion block
// 3. 创建只有标题的页面
// 4. 按 Config.BatchSize（最多 100）分批追加内容
//
// Notion 返回的错误（*notion.APIError）原样返回，调用方可以透传状态码与响应体。
// 追加中途失败时页面已经创建，返回的结果包含页面 ID 与已追加的块数。
func Publish(ctx context.Context, client PageCreator, req PublishRequest, opts ...Option) (*PublishResult, error) {
	if err := req.Validate(); err != nil {
		return nil, wrapValidationError(err)
	}

	options := applyOptions(opts...)
	children := notion.Serialize(convert(req.Markdown, options), options.Config)
	if err := notion.Validate(children); err != nil {
		return nil, wrapPayloadError(err)
	}

	page, err := client.CreatePage(ctx, req.ParentID, strings.TrimSpace(req.Title))
	if err != nil {
		return nil, wrapRemote(err)
	}
	Logger.Info("page created", "page_id", page.ID, "blocks", len(children))

	result := &PublishResult{PageID: page.ID, URL: page.URL}
	for _, batch := range notion.Batches(children, options.Config.Batch()) {
		if err := ctx.Err(); err != nil {
			return result, wrapContextError(err)
		}
		if err := client.AppendChildren(ctx, page.ID, batch); err != nil {
			Logger.Error("append children failed", "page_id", page.ID, "appended", result.Blocks, "error", err)
			return result, wrapRemote(err)
		}
		result.Blocks += len(batch)
		result.Batches++
	}
	return result, nil
}

// wrapRemote 保留 Notion 的错误响应，其余错误按上下文或执行失败归类
func wrapRemote(err error) error {
	var apiErr *notion.APIError
	if errors.As(err, &apiErr) {
		return err
	}
	if errors.Is(err, notion.ErrInvalidID) {
		return wrapValidationError(err)
	}
	return wrapContextError(err)
}
