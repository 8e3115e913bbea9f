package notion

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	parentUUID = "1f2e3d4c-5b6a-4978-8a9b-0c1d2e3f4a5b"
	parentHex  = "1f2e3d4c5b6a49788a9b0c1d2e3f4a5b"
)

func TestNormalizeID(t *testing.T) {
	tests := map[string]string{
		parentUUID: parentUUID,
		parentHex:  parentUUID,
		"https://www.notion.so/My-Page-" + parentHex:         parentUUID,
		"https://www.notion.so/ws/Page-" + parentHex + "?v=1": parentUUID,
	}
	for in, want := range tests {
		got, err := NormalizeID(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := NormalizeID("not-an-id")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestClient_CreatePage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/pages", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, DefaultVersion, r.Header.Get("Notion-Version"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body struct {
			Parent struct {
				PageID string `json:"page_id"`
			} `json:"parent"`
			Properties struct {
				Title struct {
					Title []RichText `json:"title"`
				} `json:"title"`
			} `json:"properties"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, parentUUID, body.Parent.PageID)
		require.Len(t, body.Properties.Title.Title, 1)
		assert.Equal(t, "Notes", body.Properties.Title.Title[0].Text.Content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"object":"page","id":"p-1","url":"https://notion.so/p1"}`)
	}))
	defer srv.Close()

	c := NewClient("secret", WithBaseURL(srv.URL+"/"))
	page, err := c.CreatePage(context.Background(), parentHex, "Notes")
	require.NoError(t, err)
	assert.Equal(t, &Page{ID: "p-1", URL: "https://notion.so/p1"}, page)
}

func TestClient_AppendChildren(t *testing.T) {
	var got []Block
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/blocks/"+parentUUID+"/children", r.URL.Path)
		var body struct {
			Children []Block `json:"children"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		got = body.Children
		_, _ = io.WriteString(w, `{"object":"list","results":[]}`)
	}))
	defer srv.Close()

	children := []Block{{Object: "block", Type: "divider", Divider: &struct{}{}}}
	c := NewClient("secret", WithBaseURL(srv.URL), WithVersion("2025-01-01"))
	require.NoError(t, c.AppendChildren(context.Background(), parentUUID, children))
	assert.Equal(t, children, got)

	err := c.AppendChildren(context.Background(), parentUUID, make([]Block, 101))
	assert.Error(t, err)
}

func TestClient_APIError(t *testing.T) {
	const body = `{"object":"error","status":401,"code":"unauthorized","message":"API token is invalid."}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, body)
	}))
	defer srv.Close()

	c := NewClient("bad", WithBaseURL(srv.URL))
	_, err := c.CreatePage(context.Background(), parentUUID, "x")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, body, apiErr.Body)
	assert.Equal(t, "unauthorized", apiErr.Code)
	assert.Contains(t, apiErr.Error(), "API token is invalid.")
}

func TestClient_InvalidParent(t *testing.T) {
	c := NewClient("secret", WithBaseURL("http://127.0.0.1:0"))
	_, err := c.CreatePage(context.Background(), "nope", "x")
	assert.ErrorIs(t, err, ErrInvalidID)
}
