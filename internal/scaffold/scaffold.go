package scaffold

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/wasabi0522/dxflow/internal/exec"
	"github.com/wasabi0522/dxflow/internal/prompt"
)

// ProjectFile marks the root of a Salesforce DX project.
const ProjectFile = "sfdx-project.json"

const sfdxCommand = "sfdx"

var (
	// ErrNoProject is returned by Detect when no project encloses the directory.
	ErrNoProject = errors.New("this directory does not contain a valid Salesforce DX project")
	// ErrCancelled is returned by Create when overwriting an existing path is declined.
	ErrCancelled = errors.New("project creation cancelled")
)

// Detect walks up from dir and returns the first directory holding ProjectFile.
func Detect(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		info, err := os.Stat(filepath.Join(dir, ProjectFile))
		if err == nil && !info.IsDir() {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoProject
		}
		dir = parent
	}
}

// Options are the answers that shape a new project.
type Options struct {
	Name       string `json:"name"`
	Folder     string `json:"folder"`
	PackageDir string `json:"packageDir"`
	Namespace  string `json:"namespace,omitempty"`
	Template   string `json:"template"`
	Manifest   bool   `json:"manifest"`
}

const (
	defaultFolder     = "."
	defaultPackageDir = "force-app"
	defaultTemplate   = "standard"
)

// Args returns the sfdx arguments creating the project. Values equal to the
// sfdx defaults are left out.
func (o Options) Args() []string {
	args := []string{"force:project:create", "-n", o.Name}
	if o.Folder != defaultFolder {
		args = append(args, "-d", o.Folder)
	}
	if o.PackageDir != defaultPackageDir {
		args = append(args, "-p", o.PackageDir)
	}
	if o.Namespace != "" {
		args = append(args, "-s", o.Namespace)
	}
	if o.Template != defaultTemplate {
		args = append(args, "-t", o.Template)
	}
	if o.Manifest {
		args = append(args, "-x")
	}
	return args
}

// noSpaces rejects empty answers and answers containing whitespace.
func noSpaces(v string) error {
	if v == "" {
		return errors.New("this is required")
	}
	return optionalNoSpaces(v)
}

func optionalNoSpaces(v string) error {
	if strings.ContainsFunc(v, unicode.IsSpace) {
		return errors.New("spaces are not allowed here")
	}
	return nil
}

// Logger receives debug traces of the scaffolding steps.
type Logger interface {
	Debug(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// Option configures a Scaffolder.
type Option func(*Scaffolder)

// WithLogger sets the logger for debug traces.
func WithLogger(l Logger) Option {
	return func(s *Scaffolder) { s.logger = l }
}

// Scaffolder creates Salesforce DX projects through the sfdx CLI.
type Scaffolder struct {
	dir    string
	exec   exec.Executor
	prompt prompt.Prompter
	logger Logger
}

// New creates a Scaffolder working from dir. e must run commands in dir.
func New(dir string, e exec.Executor, p prompt.Prompter, opts ...Option) *Scaffolder {
	s := &Scaffolder{dir: dir, exec: e, prompt: p, logger: nopLogger{}}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Ask collects the project options.
func (s *Scaffolder) Ask(ctx context.Context) (Options, error) {
	var o Options
	inputs := []struct {
		dst *string
		q   prompt.Input
	}{
		{&o.Name, prompt.Input{Message: "What's the project name?", Validate: noSpaces}},
		{&o.Folder, prompt.Input{Message: "What's the project folder path?", Default: defaultFolder, Validate: noSpaces}},
		{&o.PackageDir, prompt.Input{Message: "What's the default package folder?", Default: defaultPackageDir, Validate: noSpaces}},
		{&o.Namespace, prompt.Input{Message: "Define a namespace if you want", Validate: optionalNoSpaces}},
		{&o.Template, prompt.Input{Message: "Define a template if you want", Default: defaultTemplate, Validate: noSpaces}},
	}
	for _, in := range inputs {
		v, err := s.prompt.Input(ctx, in.q)
		if err != nil {
			return Options{}, err
		}
		*in.dst = v
	}

	manifest, err := s.prompt.Confirm(ctx, prompt.Confirm{
		Message: "Would you like to generate a manifest (package.xml) file for change-set-based development?",
	})
	if err != nil {
		return Options{}, err
	}
	o.Manifest = manifest
	return o, nil
}

// Create asks for the project options and runs sfdx to create the project.
// It returns the absolute path of the new project.
func (s *Scaffolder) Create(ctx context.Context) (string, error) {
	if err := s.exec.LookPath(sfdxCommand); err != nil {
		return "", fmt.Errorf("the Salesforce CLI is required to create a project: %w", err)
	}

	o, err := s.Ask(ctx)
	if err != nil {
		return "", err
	}
	return s.Apply(ctx, o)
}

// Apply creates the project described by o. An existing target path is only
// reused after confirmation.
func (s *Scaffolder) Apply(ctx context.Context, o Options) (string, error) {
	path := o.Folder
	if !filepath.IsAbs(path) {
		path = filepath.Join(s.dir, path)
	}
	path = filepath.Join(path, o.Name)

	if _, err := os.Stat(path); err == nil {
		overwrite, err := s.prompt.Confirm(ctx, prompt.Confirm{
			Message: fmt.Sprintf("The path %s already exists. Do you want to create the project anyway and overwrite pre-existing files?", path),
			Default: true,
		})
		if err != nil {
			return "", err
		}
		if !overwrite {
			return "", ErrCancelled
		}
	}

	args := o.Args()
	s.logger.Debug("creating project", "command", sfdxCommand, "args", args)
	if err := s.exec.Run(ctx, sfdxCommand, args...); err != nil {
		return "", fmt.Errorf("failed to create your project: %w", err)
	}
	return path, nil
}
