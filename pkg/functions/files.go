package functions

import (
	iofs "io/fs"
	"strings"

	"github.com/kairos-io/provider-clustertemplate/pkg/domain"
	"github.com/pkg/errors"
	"github.com/twpayne/go-vfs/v4"
)

func readFile(fsys vfs.FS, path string) ([]byte, error) {
	content, err := fsys.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, domain.NotFound(path, err)
		}
		return nil, domain.Unexpected(path, err)
	}
	return content, nil
}

func readTrimmed(fsys vfs.FS, path string) (string, error) {
	content, err := readFile(fsys, path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(content)), nil
}

// GitHubDeployKey returns the deploy key private material from path.
func GitHubDeployKey(fsys vfs.FS, path string) (string, error) {
	return readTrimmed(fsys, path)
}

// GitHubPushToken returns the Flux push token from path.
func GitHubPushToken(fsys vfs.FS, path string) (string, error) {
	return readTrimmed(fsys, path)
}
