package manifest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"uniconsole/internal/commands"
	"uniconsole/pkg/logging"
)

// maxConcurrentLoads bounds parallel file reads.
const maxConcurrentLoads = 8

// FileError reports a manifest file or command that could not be loaded.
type FileError struct {
	Path    string
	Command string
	Err     error
}

func (e *FileError) Error() string {
	if e.Command != "" {
		return fmt.Sprintf("%s: command %q: %v", e.Path, e.Command, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// File is one loaded manifest.
type File struct {
	Path     string
	Manifest Manifest
	Specs    []commands.Spec
}

// LoadResult holds the files that loaded and the problems found on the way.
// Problems never abort loading of other files or commands.
type LoadResult struct {
	Files  []*File
	Errors []error
}

// Specs returns the specs of every file in path order.
func (r *LoadResult) Specs() []commands.Spec {
	var out []commands.Spec
	for _, f := range r.Files {
		out = append(out, f.Specs...)
	}
	return out
}

// isYAMLFile checks if a file path is a YAML file.
func isYAMLFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// LoadDir loads every YAML manifest in dir. A missing directory yields an
// empty result. The returned error is only set when ctx is cancelled or dir
// cannot be listed.
func LoadDir(ctx context.Context, dir string) (*LoadResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Debug("Manifest", "No manifest directory at %s", dir)
			return &LoadResult{}, nil
		}
		return nil, fmt.Errorf("failed to list manifests in %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if !e.IsDir() && isYAMLFile(e.Name()) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)

	files := make([]*File, len(paths))
	problems := make([][]error, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLoads)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			files[i], problems[i] = LoadFile(path)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &LoadResult{}
	for i := range paths {
		if files[i] != nil {
			result.Files = append(result.Files, files[i])
		}
		result.Errors = append(result.Errors, problems[i]...)
	}
	logging.Debug("Manifest", "Loaded %d of %d manifests from %s", len(result.Files), len(paths), dir)
	return result, nil
}

// LoadFile parses one manifest. A nil File means the whole file was rejected;
// otherwise the returned errors describe skipped commands.
func LoadFile(path string) (*File, []error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, []error{&FileError{Path: path, Err: err}}
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, []error{&FileError{Path: path, Err: fmt.Errorf("invalid YAML: %w", err)}}
	}
	if m.Group == "" {
		return nil, []error{&FileError{Path: path, Err: errors.New("group is required")}}
	}

	enums := make(map[string]*commands.Enum, len(m.Enums))
	for name, members := range m.Enums {
		enums[name] = commands.NewEnum(name, members...)
	}

	file := &File{Path: path, Manifest: m}
	var errs []error
	for _, c := range m.Commands {
		spec, err := compile(m, c, enums)
		if err != nil {
			errs = append(errs, &FileError{Path: path, Command: c.Name, Err: err})
			continue
		}
		file.Specs = append(file.Specs, spec)
	}
	return file, errs
}

// compile turns a declared command into a spec whose operation renders the
// template.
func compile(m Manifest, c Command, enums map[string]*commands.Enum) (commands.Spec, error) {
	group := m.Group
	if c.Group != "" {
		group = c.Group
	}

	params := make([]commands.ParamType, len(c.Params))
	for i, name := range c.Params {
		p, err := commands.ParseParamType(name, enums)
		if err != nil {
			return commands.Spec{}, err
		}
		params[i] = p
	}

	if strings.TrimSpace(c.Template) == "" {
		return commands.Spec{}, errors.New("template is required")
	}
	tmpl, err := template.New(group + "." + c.Name).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(c.Template)
	if err != nil {
		return commands.Spec{}, fmt.Errorf("invalid template: %w", err)
	}

	name := c.Name
	return commands.Spec{
		Namespace:   m.Namespace,
		Group:       group,
		Name:        name,
		Params:      params,
		Description: c.Description,
		Run: func(_ context.Context, args []any) (any, error) {
			var b strings.Builder
			data := TemplateData{Args: args, Command: name, Group: group}
			if err := tmpl.Execute(&b, data); err != nil {
				return nil, err
			}
			return b.String(), nil
		},
	}, nil
}

// Source exposes a manifest directory as a commands.Source. Each call to Specs
// re-reads the directory, so a registry rescan picks up edits.
type Source struct {
	dir string
}

// NewSource creates a source over dir.
func NewSource(dir string) *Source {
	return &Source{dir: dir}
}

// Dir returns the watched directory.
func (s *Source) Dir() string {
	return s.dir
}

// Specs loads the directory, logging and skipping malformed manifests.
func (s *Source) Specs() ([]commands.Spec, error) {
	result, err := LoadDir(context.Background(), s.dir)
	if err != nil {
		return nil, err
	}
	for _, problem := range result.Errors {
		logging.Warn("Manifest", "Skipping %v", problem)
	}
	return result.Specs(), nil
}
