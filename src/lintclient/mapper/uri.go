package mapper

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"go.lsp.dev/uri"
)

// CodeToProtocol converts a file system path into the URI form used on the wire.
// Path segments are percent-encoded and Windows drive-letter paths gain a leading "/".
// The path is taken as given: it is neither cleaned nor made absolute, so ProtocolToCode restores it exactly.
// A relative path is encoded in the opaque form "file:rel/path".
func CodeToProtocol(path string) uri.URI {
	p := filepath.ToSlash(path)
	if hasDriveLetter(p) {
		p = "/" + p
	}

	u := url.URL{Scheme: uri.FileScheme}
	if strings.HasPrefix(p, "/") {
		u.Path = p
	} else {
		u.Opaque = (&url.URL{Path: p}).EscapedPath()
	}
	return uri.URI(u.String())
}

// ProtocolToCode converts a wire URI back into a file system path.
func ProtocolToCode(s string) (string, error) {
	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("parsing uri %q: %w", s, err)
	}
	if u.Scheme != uri.FileScheme {
		return "", fmt.Errorf("unsupported uri scheme %q in %q", u.Scheme, s)
	}

	if u.Opaque != "" {
		p, err := url.PathUnescape(u.Opaque)
		if err != nil {
			return "", fmt.Errorf("parsing uri %q: %w", s, err)
		}
		return filepath.FromSlash(p), nil
	}
	if u.Path == "" {
		return "", fmt.Errorf("parsing uri %q: empty path", s)
	}

	p := u.Path
	if strings.HasPrefix(p, "/") && hasDriveLetter(p[1:]) {
		p = p[1:]
	}
	return filepath.FromSlash(p), nil
}

// hasDriveLetter reports whether p starts with a Windows drive such as "C:/" or is one.
func hasDriveLetter(p string) bool {
	if len(p) < 2 || p[1] != ':' || (len(p) > 2 && p[2] != '/') {
		return false
	}
	c := p[0]
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// PathsToURLs encodes every path as a file URL.
func PathsToURLs(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, string(CodeToProtocol(p)))
	}
	return out
}
