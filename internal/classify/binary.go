// Package classify makes the per-file decisions taken before a file's content
// is searched: is it binary, and does it pass the extension filter. It also
// maps extensions to the display icons used in search output.
//
// All lookups are data tables keyed by lowercase extension without the dot,
// so supporting a new format means adding a map entry, not a branch.
package classify

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// sniffLen is how much of a file is sampled for null bytes.
const sniffLen = 512

// binaryExtensions are always treated as binary and never opened.
var binaryExtensions = map[string]bool{
	// Executables and objects
	"exe": true, "dll": true, "so": true, "dylib": true, "bin": true, "o": true, "obj": true,

	// Images
	"jpg": true, "jpeg": true, "png": true, "gif": true, "bmp": true, "ico": true,
	"tiff": true, "webp": true, "svg": true,

	// Audio and video
	"mp3": true, "mp4": true, "avi": true, "mkv": true, "mov": true, "wmv": true,
	"flv": true, "wav": true, "flac": true,

	// Archives
	"zip": true, "rar": true, "7z": true, "tar": true, "gz": true, "bz2": true, "xz": true,

	// Office documents
	"pdf": true, "doc": true, "docx": true, "xls": true, "xlsx": true, "ppt": true, "pptx": true,

	// Fonts
	"ttf": true, "otf": true, "woff": true, "woff2": true,
}

// Ext returns the lowercase extension of path without the leading dot,
// or "" if it has none. A leading dot alone (".env") is not an extension.
func Ext(path string) string {
	base := filepath.Base(path)
	i := strings.LastIndexByte(base, '.')
	if i <= 0 || i == len(base)-1 {
		return ""
	}
	return strings.ToLower(base[i+1:])
}

// BinaryExt reports whether path's extension is on the binary denylist.
func BinaryExt(path string) bool {
	return binaryExtensions[Ext(path)]
}

// IsBinary reports whether path should be treated as binary. Denylisted
// extensions short-circuit without I/O; anything else has its first 512
// bytes sniffed. Files that cannot be opened are reported as text so the
// scan itself decides what to do with them.
func IsBinary(path string) bool {
	if BinaryExt(path) {
		return true
	}

	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	return Sniff(f)
}

// Sniff reads up to 512 bytes from r and reports binary when null bytes
// make up more than 1% of the sample. An empty sample is text.
func Sniff(r io.Reader) bool {
	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return false
	}
	if n == 0 {
		return false
	}
	nulls := bytes.Count(buf[:n], []byte{0})
	return float64(nulls)/float64(n) > 0.01
}
