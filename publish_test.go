package notionify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riverfjs/notionify-go/internal/notion"
)

const testParent = "1f2e3d4c5b6a49788a9b0c1d2e3f4a5b"

type fakeCreator struct {
	page       *notion.Page
	createErr  error
	appendErr  error
	failAfter  int
	parentID   string
	title      string
	appended   [][]notion.Block
	appendedTo []string
}

func (f *fakeCreator) CreatePage(_ context.Context, parentID, title string) (*notion.Page, error) {
	f.parentID, f.title = parentID, title
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.page, nil
}

func (f *fakeCreator) AppendChildren(_ context.Context, blockID string, children []notion.Block) error {
	if f.appendErr != nil && len(f.appended) >= f.failAfter {
		return f.appendErr
	}
	f.appendedTo = append(f.appendedTo, blockID)
	f.appended = append(f.appended, children)
	return nil
}

func newFake() *fakeCreator {
	return &fakeCreator{page: &notion.Page{ID: "page-1", URL: "https://notion.so/page-1"}}
}

func manyLines(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}
	return strings.Join(lines, "\n")
}

func TestPublish(t *testing.T) {
	fake := newFake()
	res, err := Publish(context.Background(), fake, PublishRequest{
		Title:    "  Notes  ",
		Markdown: manyLines(250),
		ParentID: testParent,
	})
	require.NoError(t, err)

	assert.Equal(t, "Notes", fake.title)
	assert.Equal(t, testParent, fake.parentID)
	assert.Equal(t, &PublishResult{PageID: "page-1", URL: "https://notion.so/page-1", Blocks: 250, Batches: 3}, res)

	require.Len(t, fake.appended, 3)
	assert.Len(t, fake.appended[0], 100)
	assert.Len(t, fake.appended[2], 50)
	assert.Equal(t, []string{"page-1", "page-1", "page-1"}, fake.appendedTo)
	assert.Equal(t, "line 0", fake.appended[0][0].Paragraph.RichText[0].Text.Content)
	assert.Equal(t, "line 249", fake.appended[2][49].Paragraph.RichText[0].Text.Content)
}

func TestPublish_BatchSizeOption(t *testing.T) {
	fake := newFake()
	cfg := DefaultConfig()
	custom := *cfg
	custom.BatchSize = 10

	res, err := Publish(context.Background(), fake, PublishRequest{
		Title: "T", Markdown: manyLines(25), ParentID: testParent,
	}, WithConfig(&custom))
	require.NoError(t, err)
	assert.Equal(t, 3, res.Batches)
}

func TestPublish_Validation(t *testing.T) {
	tests := map[string]PublishRequest{
		"missing title":    {Markdown: "x", ParentID: testParent},
		"blank title":      {Title: "   ", Markdown: "x", ParentID: testParent},
		"missing markdown": {Title: "T", ParentID: testParent},
		"missing parent":   {Title: "T", Markdown: "x"},
		"invalid parent":   {Title: "T", Markdown: "x", ParentID: "nope"},
	}
	for name, req := range tests {
		t.Run(name, func(t *testing.T) {
			fake := newFake()
			_, err := Publish(context.Background(), fake, req)
			require.Error(t, err)
			assert.True(t, IsValidationError(err), "expected validation category, got %v", err)
			assert.Empty(t, fake.title, "client must not be called")
		})
	}
}

func TestPublish_APIErrorPassthrough(t *testing.T) {
	fake := newFake()
	fake.createErr = &notion.APIError{StatusCode: http.StatusUnauthorized, Body: `{"code":"unauthorized"}`}

	_, err := Publish(context.Background(), fake, PublishRequest{Title: "T", Markdown: "x", ParentID: testParent})
	var apiErr *notion.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}

func TestPublish_AppendFailure(t *testing.T) {
	fake := newFake()
	fake.appendErr = errors.New("connection reset")
	fake.failAfter = 1

	res, err := Publish(context.Background(), fake, PublishRequest{
		Title: "T", Markdown: manyLines(150), ParentID: testParent,
	})
	require.Error(t, err)
	assert.True(t, goerrors.IsCategory(err, goerrors.CategoryCommand))
	require.NotNil(t, res)
	assert.Equal(t, "page-1", res.PageID)
	assert.Equal(t, 100, res.Blocks)
}

func TestPublish_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fake := newFake()
	_, err := Publish(ctx, fake, PublishRequest{Title: "T", Markdown: "x", ParentID: testParent})
	require.Error(t, err)
	assert.True(t, goerrors.IsCategory(err, goerrors.CategoryCommand))
	assert.Empty(t, fake.appended)
}
