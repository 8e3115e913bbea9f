// Package notionify 将 Markdown 转换为 Notion 块结构
//
// 这个包把 Markdown（LLM 输出、笔记、README 等）逐行扫描为有序的块序列，
// 行内格式拆分为富文本片段，并可以直接序列化为 Notion API 的 block 对象。
//
// 核心功能：
//   - 块扫描：标题、列表、引用、分割线、代码块、公式块、段落
//   - 行内识别：粗体、斜体、行内代码、链接、行内公式
//   - 序列化为 Notion JSON，超长文本按 UTF-16 长度拆分
//   - 创建页面并分批追加内容
//
// 主要 API：
//   - Convert(): 同步转换，返回块序列
//   - ToNotion(): 转换并序列化为 Notion block 对象
//   - Publish(): 在指定父页面下创建页面
//
// 示例：
//
//	// 简单转换
//	blocks := notionify.Convert(markdown)
//
//	// 发布到 Notion
//	client := notion.NewClient(token)
//	result, err := notionify.Publish(ctx, client, notionify.PublishRequest{
//	    Title:    "Notes",
//	    Markdown: markdown,
//	    ParentID: parentID,
//	})
package notionify

import (
	"github.com/riverfjs/notionify-go/internal/notion"
)

// ToNotion 将 Markdown 转换为经过校验的 Notion block 对象
func ToNotion(markdown string, opts ...Option) ([]NotionBlock, error) {
	options := applyOptions(opts...)
	children := notion.Serialize(convert(markdown, options), options.Config)
	if err := notion.Validate(children); err != nil {
		return nil, wrapPayloadError(err)
	}
	return children, nil
}
