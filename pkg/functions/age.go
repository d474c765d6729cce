package functions

import (
	"regexp"
	"strings"

	"github.com/kairos-io/provider-clustertemplate/pkg/domain"
	"github.com/pkg/errors"
	"github.com/twpayne/go-vfs/v4"
)

const (
	AgeKeyPublic  = "public"
	AgeKeyPrivate = "private"
)

var (
	agePublicKeyPattern  = regexp.MustCompile(`# public key: (age1\w+)`)
	agePrivateKeyPattern = regexp.MustCompile(`(AGE-SECRET-KEY-\w+)`)
)

// AgeKey extracts the public or private key from an age key file.
func AgeKey(fsys vfs.FS, keyType, path string) (string, error) {
	var pattern *regexp.Regexp
	switch keyType {
	case AgeKeyPublic:
		pattern = agePublicKeyPattern
	case AgeKeyPrivate:
		pattern = agePrivateKeyPattern
	default:
		return "", domain.InvalidArgument("invalid key type %q, use %q or %q", keyType, AgeKeyPublic, AgeKeyPrivate)
	}

	content, err := readFile(fsys, path)
	if err != nil {
		return "", err
	}

	match := pattern.FindStringSubmatch(strings.TrimSpace(string(content)))
	if match == nil {
		return "", domain.Malformed(path, errors.Errorf("could not find %s key in the age key file", keyType))
	}
	return match[1], nil
}
