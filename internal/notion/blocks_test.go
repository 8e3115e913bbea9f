package notion

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riverfjs/notionify-go/internal/parser"
	"github.com/riverfjs/notionify-go/internal/types"
)

func TestSerialize_JSON(t *testing.T) {
	blocks := []types.Block{
		types.Heading{Level: 2, Text: []types.Segment{types.PlainText{Content: "Title"}}},
		types.Paragraph{Text: []types.Segment{
			types.PlainText{Content: "a "},
			types.AnnotatedText{Content: "b", Bold: true},
			types.InlineEquation{Expression: "x^2"},
			types.Link{Content: "c", URL: "http://c"},
		}},
		types.Divider{},
		types.Equation{Expression: "E=mc^2"},
		types.Paragraph{Text: []types.Segment{}},
	}

	data, err := json.Marshal(Serialize(blocks, nil))
	require.NoError(t, err)

	want := `[
	  {"object":"block","type":"heading_2","heading_2":{"rich_text":[{"type":"text","text":{"content":"Title"}}]}},
	  {"object":"block","type":"paragraph","paragraph":{"rich_text":[
	    {"type":"text","text":{"content":"a "}},
	    {"type":"text","text":{"content":"b"},"annotations":{"bold":true,"italic":false,"code":false}},
	    {"type":"equation","equation":{"expression":"x^2"}},
	    {"type":"text","text":{"content":"c","link":{"url":"http://c"}}}
	  ]}},
	  {"object":"block","type":"divider","divider":{}},
	  {"object":"block","type":"equation","equation":{"expression":"E=mc^2"}},
	  {"object":"block","type":"paragraph","paragraph":{"rich_text":[]}}
	]`
	assert.JSONEq(t, want, string(data))
}

func TestSerialize_Code(t *testing.T) {
	out := Serialize([]types.Block{
		types.Code{Content: "x = 1", Language: "py"},
		types.Code{Content: "", Language: "weird"},
	}, nil)
	require.Len(t, out, 2)

	assert.Equal(t, "code", out[0].Type)
	assert.Equal(t, "python", out[0].Code.Language)
	require.Len(t, out[0].Code.RichText, 1)
	assert.Equal(t, "x = 1", out[0].Code.RichText[0].Text.Content)

	assert.Equal(t, "plain text", out[1].Code.Language)
	assert.NotNil(t, out[1].Code.RichText)
	assert.Empty(t, out[1].Code.RichText)
}

func TestSerialize_MermaidCaption(t *testing.T) {
	out := Serialize([]types.Block{types.Code{Content: "graph LR\nA-->B", Language: "mermaid"}}, nil)
	require.Len(t, out[0].Code.Caption, 1)
	link := out[0].Code.Caption[0].Text.Link
	require.NotNil(t, link)
	assert.True(t, strings.HasPrefix(link.URL, "https://mermaid.live/edit/#pako:"))
}

func TestSerialize_SplitsLongText(t *testing.T) {
	long := strings.Repeat("ab", 2500)
	cfg := types.DefaultConfig()
	out := Serialize([]types.Block{
		types.Quote{Text: []types.Segment{types.AnnotatedText{Content: long, Italic: true}}},
	}, cfg)

	rich := out[0].Quote.RichText
	require.Len(t, rich, 3)
	var joined strings.Builder
	for _, r := range rich {
		assert.LessOrEqual(t, len(r.Text.Content), cfg.MaxTextLength)
		assert.True(t, r.Annotations.Italic)
		joined.WriteString(r.Text.Content)
	}
	assert.Equal(t, long, joined.String())
}

func TestSerialize_Links(t *testing.T) {
	rich := RichTexts([]types.Segment{
		types.Link{Content: "no url", URL: ""},
		types.Link{Content: "", URL: "http://u"},
	}, 2000)
	require.Len(t, rich, 2)
	assert.Nil(t, rich[0].Text.Link)
	assert.Equal(t, "no url", rich[0].Text.Content)
	assert.Equal(t, "http://u", rich[1].Text.Content)
	assert.Equal(t, "http://u", rich[1].Text.Link.URL)
}

func TestSerialize_HeadingLevels(t *testing.T) {
	blocks := parser.Scan("# a\n## b\n### c", nil)
	out := Serialize(blocks, nil)
	require.Len(t, out, 3)
	assert.NotNil(t, out[0].Heading1)
	assert.NotNil(t, out[1].Heading2)
	assert.NotNil(t, out[2].Heading3)
	assert.Equal(t, []string{"heading_1", "heading_2", "heading_3"}, []string{out[0].Type, out[1].Type, out[2].Type})
}

func TestValidate(t *testing.T) {
	doc := "# T\nSome **bold** $x$ [l](http://l)\n- a\n1. b\n> q\n---\n```go\nx\n```\n$$\ny\n$$\n"
	require.NoError(t, Validate(Serialize(parser.Scan(doc, nil), nil)))

	bad := []Block{{Object: "block", Type: "table"}}
	err := Validate(bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPayloadInvalid)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Issues)
}

func TestBatches(t *testing.T) {
	children := make([]Block, 250)
	for i := range children {
		children[i] = Block{Object: "block", Type: "divider", Divider: &struct{}{}}
	}

	batches := Batches(children, 0)
	require.Len(t, batches, 3)
	assert.Len(t, batches[0], 100)
	assert.Len(t, batches[1], 100)
	assert.Len(t, batches[2], 50)

	assert.Len(t, Batches(children, 500), 3)
	assert.Len(t, Batches(children, 50), 5)
	assert.Empty(t, Batches(nil, 10))
}
