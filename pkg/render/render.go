package render

import (
	"bytes"
	"context"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/kairos-io/provider-clustertemplate/pkg/config"
	"github.com/kairos-io/provider-clustertemplate/pkg/domain"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/twpayne/go-vfs/v4"
)

// NameInclude renders another template file in place with the same data.
const NameInclude = "include"

// Includes nest at most this deep, so a template including itself fails.
const maxIncludeDepth = 16

// File is one rendered output, with Path relative to the output directory.
type File struct {
	Path    string
	Content []byte
	Mode    iofs.FileMode
}

type Renderer struct {
	fs    vfs.FS
	cfg   *config.Config
	funcs template.FuncMap
}

// New returns a renderer whose templates see sprig's functions with funcs
// layered on top.
func New(fsys vfs.FS, cfg *config.Config, funcs template.FuncMap) *Renderer {
	merged := sprig.TxtFuncMap()
	for name, fn := range funcs {
		merged[name] = fn
	}
	return &Renderer{fs: fsys, cfg: cfg, funcs: merged}
}

// Render walks every input directory and renders its templates against data.
// Files without the template suffix are passed through unchanged.
func (r *Renderer) Render(ctx context.Context, data domain.TemplateData) ([]File, error) {
	var files []File
	for _, input := range r.cfg.Inputs {
		rendered, err := r.renderDir(ctx, input, data)
		if err != nil {
			return nil, err
		}
		files = append(files, rendered...)
	}
	return files, nil
}

func (r *Renderer) renderDir(ctx context.Context, root string, data domain.TemplateData) ([]File, error) {
	var files []File

	err := vfs.Walk(r.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		if rel != "." && r.excluded(rel) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			logrus.Debugf("excluding %s", path)
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		content, err := r.fs.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "failed to read %s", path)
		}

		file := File{Path: rel, Content: content, Mode: info.Mode().Perm()}
		if strings.HasSuffix(rel, domain.TemplateFileSuffix) {
			file.Path = strings.TrimSuffix(rel, domain.TemplateFileSuffix)
			if file.Content, err = r.execute(path, content, data, 0); err != nil {
				return err
			}
			logrus.Debugf("rendered %s", path)
		}
		files = append(files, file)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to render %s", root)
	}
	return files, nil
}

func (r *Renderer) execute(name string, content []byte, data domain.TemplateData, depth int) ([]byte, error) {
	if depth > maxIncludeDepth {
		return nil, errors.Errorf("include depth exceeded at %s", name)
	}

	tmpl, err := template.New(filepath.Base(name)).
		Delims(r.cfg.Delimiters.Left, r.cfg.Delimiters.Right).
		Option("missingkey=zero").
		Funcs(r.funcs).
		Funcs(template.FuncMap{NameInclude: r.include(data, depth)}).
		Parse(string(content))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse template %s", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any(data)); err != nil {
		return nil, errors.Wrapf(err, "failed to execute template %s", name)
	}
	return buf.Bytes(), nil
}

// include lets a template render the files talos_patches lists.
func (r *Renderer) include(data domain.TemplateData, depth int) func(path string) (string, error) {
	return func(path string) (string, error) {
		content, err := r.fs.ReadFile(path)
		if err != nil {
			return "", errors.Wrapf(err, "failed to read %s", path)
		}
		out, err := r.execute(path, content, data, depth+1)
		return string(out), err
	}
}

func (r *Renderer) excluded(rel string) bool {
	base := filepath.Base(rel)
	for _, pattern := range r.cfg.Exclude {
		if ok, _ := filepath.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := filepath.Match(pattern, base); ok {
			return true
		}
	}
	return false
}
