package common

import (
	"fmt"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
)

// FilePathClean is a combination of filepath.Clean and filepath.ToSlash
//
// Example:
//   C:\H\ -> C:/H
func FilePathClean(p string) string {
	// First do the normal OS-based cleanup
	cleaned := filepath.Clean(p)
	// Then normalize all separators to forward slash
	return filepath.ToSlash(cleaned)
}

func FilePathToURI(path string) string {
	p := FilePathClean(path)
	if runtime.GOOS == "windows" && !strings.HasPrefix(p, "/") {
		// Windows file URIs need three slashes: file:///C:/path
		p = "/" + p
	}
	return (&url.URL{Scheme: "file", Path: p}).String()
}

// URIToFilePath converts a file:// URI into an absolute filesystem path.
func URIToFilePath(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("invalid URI: %w", err)
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("unsupported scheme %q (must be file)", u.Scheme)
	}

	p := u.Path

	// On Windows, strip the leading slash before the drive letter
	if runtime.GOOS == "windows" {
		if strings.HasPrefix(p, "/") && len(p) >= 3 && p[2] == ':' {
			p = p[1:]
		}
	}

	// Convert slashes to OS-specific separators
	return filepath.FromSlash(p), nil
}
