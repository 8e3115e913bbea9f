// Package mermaid 生成 Mermaid Live 编辑器链接
//
// Notion 原生渲染 mermaid 代码块，这里只负责为代码块附加一个可在线编辑的链接。
package mermaid

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"encoding/json"
	"fmt"
)

const liveEditorURL = "https://mermaid.live/edit/#"

// Config Mermaid 配置
type Config struct {
	Theme string `json:"theme"`
}

// DefaultConfig 返回默认 Mermaid 配置
func DefaultConfig() *Config {
	return &Config{
		Theme: "default",
	}
}

type state struct {
	Code    string  `json:"code"`
	Mermaid *Config `json:"mermaid"`
}

// compressToDeflate 使用 DEFLATE 算法压缩数据
func compressToDeflate(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	writer, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := writer.Write(data); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Pako 将图表编码为 mermaid.live 使用的 pako 串
func Pako(diagram string, config *Config) (string, error) {
	if config == nil {
		config = DefaultConfig()
	}

	payload, err := json.Marshal(state{Code: diagram, Mermaid: config})
	if err != nil {
		return "", err
	}

	compressed, err := compressToDeflate(payload)
	if err != nil {
		return "", fmt.Errorf("compressing diagram: %w", err)
	}
	return "pako:" + base64.URLEncoding.EncodeToString(compressed), nil
}

// EditorURL 返回图表在 Mermaid Live 编辑器中的地址
func EditorURL(diagram string) (string, error) {
	pako, err := Pako(diagram, nil)
	if err != nil {
		return "", err
	}
	return liveEditorURL + pako, nil
}
