package functions

import (
	iofs "io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kairos-io/provider-clustertemplate/pkg/domain"
	"github.com/pkg/errors"
	"github.com/twpayne/go-vfs/v4"
)

// PatchDir is the result of looking up a patch directory. A directory that
// does not exist is a valid, empty result.
type PatchDir struct {
	Path   string
	Exists bool
	Files  []string
}

// LookupPatchDir lists the patch templates directly inside root/name.
func LookupPatchDir(fsys vfs.FS, root, name string) (PatchDir, error) {
	dir := PatchDir{Path: filepath.Join(root, name), Files: []string{}}

	info, err := fsys.Stat(dir.Path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return dir, nil
		}
		return dir, domain.Unexpected(dir.Path, err)
	}
	if !info.IsDir() {
		return dir, nil
	}
	dir.Exists = true

	entries, err := fsys.ReadDir(dir.Path)
	if err != nil {
		return dir, domain.Unexpected(dir.Path, err)
	}
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}
		if ok, _ := filepath.Match(domain.PatchFilePattern, name); !ok {
			continue
		}
		path := filepath.Join(dir.Path, name)
		// Stat follows symlinks so linked patch files count as files.
		if fi, err := fsys.Stat(path); err != nil || !fi.Mode().IsRegular() {
			continue
		}
		dir.Files = append(dir.Files, path)
	}
	sort.Strings(dir.Files)
	return dir, nil
}

// TalosPatches returns the sorted patch template paths of one patch
// directory, or an empty list when the directory is missing.
func TalosPatches(fsys vfs.FS, root, name string) ([]string, error) {
	dir, err := LookupPatchDir(fsys, root, name)
	if err != nil {
		return nil, err
	}
	return dir.Files, nil
}
