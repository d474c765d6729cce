package functions

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/kairos-io/provider-clustertemplate/pkg/domain"
	"github.com/pkg/errors"
	"github.com/twpayne/go-vfs/v4"
)

// tunnelToken is the TUNNEL_TOKEN wire format understood by cloudflared.
// Field order is part of the format.
type tunnelToken struct {
	AccountTag   string `json:"a"`
	TunnelID     string `json:"t"`
	TunnelSecret string `json:"s"`
}

func readTunnelCredentials(fsys vfs.FS, path string) (map[string]any, error) {
	content, err := readFile(fsys, path)
	if err != nil {
		return nil, err
	}
	var creds map[string]any
	if err := json.Unmarshal(content, &creds); err != nil {
		return nil, domain.Malformed(path, errors.Wrap(err, "could not decode JSON file"))
	}
	return creds, nil
}

func credentialField(creds map[string]any, path, field string) (string, error) {
	value, ok := creds[field]
	if !ok || value == nil {
		return "", domain.MissingField(path, field)
	}
	s, ok := value.(string)
	if !ok {
		return "", domain.Malformed(path, errors.Errorf("%q must be a string, got %T", field, value))
	}
	return s, nil
}

// CloudflareTunnelID returns the TunnelID of a tunnel credentials file.
func CloudflareTunnelID(fsys vfs.FS, path string) (string, error) {
	creds, err := readTunnelCredentials(fsys, path)
	if err != nil {
		return "", err
	}
	return credentialField(creds, path, "TunnelID")
}

// CloudflareTunnelSecret builds the base64 tunnel token from a tunnel
// credentials file.
func CloudflareTunnelSecret(fsys vfs.FS, path string) (string, error) {
	creds, err := readTunnelCredentials(fsys, path)
	if err != nil {
		return "", err
	}

	var token tunnelToken
	fields := []struct {
		name string
		dst  *string
	}{
		{"AccountTag", &token.AccountTag},
		{"TunnelID", &token.TunnelID},
		{"TunnelSecret", &token.TunnelSecret},
	}
	for _, f := range fields {
		if *f.dst, err = credentialField(creds, path, f.name); err != nil {
			return "", err
		}
	}

	raw, err := compactJSON(token)
	if err != nil {
		return "", domain.Unexpected(path, err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// compactJSON encodes v without whitespace or HTML escaping, with non-ASCII
// runes written as \u escapes.
func compactJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return []byte(escapeNonASCII(strings.TrimSuffix(buf.String(), "\n"))), nil
}

func escapeNonASCII(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < 0x80 {
			b.WriteRune(r)
			continue
		}
		if r > 0xffff {
			r1, r2 := utf16.EncodeRune(r)
			fmt.Fprintf(&b, `\u%04x\u%04x`, r1, r2)
			continue
		}
		fmt.Fprintf(&b, `\u%04x`, r)
	}
	return b.String()
}
