package classify

import (
	"path/filepath"
	"strings"
)

// DefaultIcon is shown for unknown or missing extensions.
const DefaultIcon = "📄"

// icons maps lowercase extensions to a token.
var icons = map[string]string{
	// Programming languages
	"rs": "🦀", "py": "🐍", "js": "🟨", "mjs": "🟨", "ts": "🔷", "java": "☕",
	"cpp": "⚙️", "cc": "⚙️", "cxx": "⚙️", "c": "🔧", "cs": "🔵", "go": "🐹",
	"php": "🐘", "rb": "💎", "swift": "🐦", "kt": "🟠", "dart": "🎯", "scala": "⚡",
	"clj": "🎭", "cljs": "🎭", "hs": "🎪", "ml": "🐪", "mli": "🐪", "r": "📊", "jl": "🔮",

	// Web
	"html": "🌐", "htm": "🌐", "css": "🎨", "scss": "💅", "sass": "💅", "less": "📝",
	"vue": "💚", "jsx": "⚛️", "tsx": "⚛️", "svelte": "🔥",

	// Data formats
	"json": "📋", "xml": "📄", "yaml": "⚙️", "yml": "⚙️", "toml": "🔧", "csv": "📊", "sql": "🗃️",

	// Documents
	"md": "📖", "markdown": "📖", "txt": "📝", "pdf": "📕",
	"doc": "📘", "docx": "📘", "xls": "📗", "xlsx": "📗", "ppt": "📙", "pptx": "📙",

	// Images
	"png": "🖼️", "jpg": "🖼️", "jpeg": "🖼️", "gif": "🖼️", "bmp": "🖼️", "svg": "🖼️", "webp": "🖼️",
	"ico": "🎯",

	// Archives
	"zip": "📦", "rar": "📦", "7z": "📦", "tar": "📦", "gz": "📦", "bz2": "📦", "xz": "📦",

	// Executables and packages
	"exe": "⚡", "app": "⚡", "deb": "⚡", "rpm": "⚡", "dmg": "⚡", "msi": "⚡",

	// Config
	"cfg": "⚙️", "conf": "⚙️", "ini": "⚙️", "env": "⚙️",
	"gitignore": "🔀", "gitattributes": "🔀", "dockerfile": "🐳",

	"lock": "🔒",
	"log":  "📜",

	// Shell
	"sh": "💻", "bash": "💻", "zsh": "💻", "fish": "💻", "ps1": "💻", "bat": "💻", "cmd": "💻",
}

// names covers well-known files that have no extension.
var names = map[string]string{
	"dockerfile":     "🐳",
	".gitignore":     "🔀",
	".gitattributes": "🔀",
	".env":           "⚙️",
	"makefile":       "🔧",
}

// Icon returns the display token for path.
func Icon(path string) string {
	if ext := Ext(path); ext != "" {
		if icon, ok := icons[ext]; ok {
			return icon
		}
		return DefaultIcon
	}
	if icon, ok := names[strings.ToLower(filepath.Base(path))]; ok {
		return icon
	}
	return DefaultIcon
}
