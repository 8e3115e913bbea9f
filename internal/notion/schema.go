package notion

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// ErrPayloadInvalid 序列化结果不符合 Notion block 结构
var ErrPayloadInvalid = errors.New("notion payload invalid")

const childrenSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": { "$ref": "#/$defs/block" },
  "$defs": {
    "richText": {
      "type": "object",
      "required": ["type"],
      "properties": {
        "type": { "enum": ["text", "equation"] },
        "text": {
          "type": "object",
          "required": ["content"],
          "properties": {
            "content": { "type": "string" },
            "link": {
              "type": "object",
              "required": ["url"],
              "properties": { "url": { "type": "string", "minLength": 1 } }
            }
          }
        },
        "equation": { "$ref": "#/$defs/expression" }
      },
      "oneOf": [
        { "properties": { "type": { "const": "text" } }, "required": ["text"] },
        { "properties": { "type": { "const": "equation" } }, "required": ["equation"] }
      ]
    },
    "richTexts": { "type": "array", "items": { "$ref": "#/$defs/richText" } },
    "textBlock": {
      "type": "object",
      "required": ["rich_text"],
      "properties": { "rich_text": { "$ref": "#/$defs/richTexts" } }
    },
    "expression": {
      "type": "object",
      "required": ["expression"],
      "properties": { "expression": { "type": "string" } }
    },
    "block": {
      "type": "object",
      "required": ["object", "type"],
      "properties": {
        "object": { "const": "block" },
        "type": {
          "enum": [
            "paragraph", "heading_1", "heading_2", "heading_3",
            "bulleted_list_item", "numbered_list_item", "quote",
            "code", "equation", "divider"
          ]
        },
        "paragraph": { "$ref": "#/$defs/textBlock" },
        "heading_1": { "$ref": "#/$defs/textBlock" },
        "heading_2": { "$ref": "#/$defs/textBlock" },
        "heading_3": { "$ref": "#/$defs/textBlock" },
        "bulleted_list_item": { "$ref": "#/$defs/textBlock" },
        "numbered_list_item": { "$ref": "#/$defs/textBlock" },
        "quote": { "$ref": "#/$defs/textBlock" },
        "code": {
          "type": "object",
          "required": ["rich_text", "language"],
          "properties": {
            "rich_text": { "$ref": "#/$defs/richTexts" },
            "language": { "type": "string", "minLength": 1 },
            "caption": { "$ref": "#/$defs/richTexts" }
          }
        },
        "equation": { "$ref": "#/$defs/expression" },
        "divider": { "type": "object" }
      }
    }
  }
}`

var schema = jsonschema.MustCompileString("notion-children.json", childrenSchema)

// Issue 单条校验失败
type Issue struct {
	Location string
	Message  string
}

// ValidationError 汇总 payload 校验失败的位置
type ValidationError struct {
	Issues []Issue
	Cause  error
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return ErrPayloadInvalid.Error()
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		location := issue.Location
		if location == "" {
			location = "#"
		}
		parts = append(parts, fmt.Sprintf("%s: %s", location, issue.Message))
	}
	return ErrPayloadInvalid.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrPayloadInvalid
}

// Validate 检查 children 是否符合 Notion block 结构
func Validate(children []Block) error {
	encoded, err := json.Marshal(children)
	if err != nil {
		return fmt.Errorf("encoding children: %w", err)
	}
	var payload any
	if err := json.Unmarshal(encoded, &payload); err != nil {
		return fmt.Errorf("decoding children: %w", err)
	}
	if err := schema.Validate(payload); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			return &ValidationError{Issues: collectIssues(verr), Cause: err}
		}
		return &ValidationError{Issues: []Issue{{Message: err.Error()}}, Cause: err}
	}
	return nil
}

func collectIssues(err *jsonschema.ValidationError) []Issue {
	issues := []Issue{}
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if node == nil {
			return
		}
		if len(node.Causes) == 0 {
			issues = append(issues, Issue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(err)
	return issues
}
