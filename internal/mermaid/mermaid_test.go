package mermaid

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"encoding/json"
	"io"
	"strings"
	"testing"
)

// decode 还原 pako 串中的图表
func decode(t *testing.T, pako string) state {
	t.Helper()
	raw, err := base64.URLEncoding.DecodeString(strings.TrimPrefix(pako, "pako:"))
	if err != nil {
		t.Fatalf("base64 decode: %v", err)
	}
	r, err := zlib.NewReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("zlib reader: %v", err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("inflate: %v", err)
	}
	var s state
	if err := json.Unmarshal(data, &s); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return s
}

// TestPako 测试 Pako 编码可还原
func TestPako(t *testing.T) {
	tests := []struct {
		name    string
		diagram string
	}{
		{"simple graph", "graph LR\n    A-->B"},
		{"empty diagram", ""},
		{"complex diagram", "flowchart TD\n    A[Start] --> B{Check}\n    B -->|Yes| C[OK]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Pako(tt.diagram, nil)
			if err != nil {
				t.Fatalf("Pako() error = %v", err)
			}
			if !strings.HasPrefix(got, "pako:") {
				t.Fatalf("Pako() = %v, should start with pako:", got)
			}
			s := decode(t, got)
			if s.Code != tt.diagram || s.Mermaid == nil || s.Mermaid.Theme != "default" {
				t.Errorf("decoded state = %+v", s)
			}
		})
	}
}

// TestEditorURL 测试编辑器链接
func TestEditorURL(t *testing.T) {
	url, err := EditorURL("graph LR\n    A-->B")
	if err != nil {
		t.Fatalf("EditorURL() error = %v", err)
	}
	if !strings.HasPrefix(url, "https://mermaid.live/edit/#pako:") {
		t.Errorf("EditorURL() = %v", url)
	}
}
