package util

import "strings"

// PlainText Notion 代码块的兜底语言
const PlainText = "plain text"

// NotionLanguages Notion 代码块接受的语言标识
var NotionLanguages = map[string]bool{
	"abap": true, "arduino": true, "bash": true, "basic": true, "c": true,
	"clojure": true, "coffeescript": true, "c++": true, "c#": true, "css": true,
	"dart": true, "diff": true, "docker": true, "elixir": true, "elm": true,
	"erlang": true, "flow": true, "fortran": true, "f#": true, "gherkin": true,
	"glsl": true, "go": true, "graphql": true, "groovy": true, "haskell": true,
	"html": true, "java": true, "javascript": true, "json": true, "julia": true,
	"kotlin": true, "latex": true, "less": true, "lisp": true, "livescript": true,
	"lua": true, "makefile": true, "markdown": true, "markup": true, "matlab": true,
	"mermaid": true, "nix": true, "objective-c": true, "ocaml": true, "pascal": true,
	"perl": true, "php": true, "plain text": true, "powershell": true, "prolog": true,
	"protobuf": true, "python": true, "r": true, "reason": true, "ruby": true,
	"rust": true, "sass": true, "scala": true, "scheme": true, "scss": true,
	"shell": true, "sql": true, "swift": true, "typescript": true, "vb.net": true,
	"verilog": true, "vhdl": true, "visual basic": true, "webassembly": true,
	"xml": true, "yaml": true, "java/c/c++/c#": true,
}

// languageAliases 常见围栏标记到 Notion 语言的映射
var languageAliases = map[string]string{
	"py":         "python",
	"python3":    "python",
	"js":         "javascript",
	"jsx":        "javascript",
	"mjs":        "javascript",
	"node":       "javascript",
	"ts":         "typescript",
	"tsx":        "typescript",
	"sh":         "shell",
	"zsh":        "shell",
	"console":    "shell",
	"cpp":        "c++",
	"cxx":        "c++",
	"cc":         "c++",
	"h":          "c",
	"cs":         "c#",
	"csharp":     "c#",
	"fs":         "f#",
	"fsharp":     "f#",
	"dockerfile": "docker",
	"yml":        "yaml",
	"md":         "markdown",
	"golang":     "go",
	"rb":         "ruby",
	"rs":         "rust",
	"kt":         "kotlin",
	"kts":        "kotlin",
	"tex":        "latex",
	"objc":       "objective-c",
	"ps1":        "powershell",
	"pwsh":       "powershell",
	"proto":      "protobuf",
	"hs":         "haskell",
	"ex":         "elixir",
	"exs":        "elixir",
	"erl":        "erlang",
	"make":       "makefile",
	"mk":         "makefile",
	"patch":      "diff",
	"htm":        "html",
	"svg":        "xml",
	"wasm":       "webassembly",
	"vb":         "visual basic",
	"clj":        "clojure",
	"coffee":     "coffeescript",
	"ml":         "ocaml",
	"text":       PlainText,
	"txt":        PlainText,
	"plaintext":  PlainText,
	"plain":      PlainText,
}

// NotionLanguage 将围栏语言标记规范化为 Notion 支持的语言，无法识别时返回 plain text
func NotionLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return PlainText
	}
	if NotionLanguages[lang] {
		return lang
	}
	if alias, ok := languageAliases[lang]; ok {
		return alias
	}
	return PlainText
}
