package report

import "strings"

const (
	htmlSuffix        = ".html"
	minFilenameLength = 6
)

// ValidFilename reports whether name is an acceptable report destination:
// at least 6 characters, ending in ".html", made of ASCII letters, digits
// and the characters '\', '/' and '.' only.
func ValidFilename(name string) bool {
	if len(name) < minFilenameLength {
		return false
	}
	if !strings.HasSuffix(name, htmlSuffix) {
		return false
	}

	for i := 0; i < len(name); i++ {
		if !validFilenameChar(name[i]) {
			return false
		}
	}

	return true
}

func validFilenameChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '\\', c == '/', c == '.':
		return true
	}
	return false
}
