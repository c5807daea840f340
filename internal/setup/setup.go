package setup

import (
	"fmt"
	"strings"

	"github.com/wasabi0522/dxflow/internal/git"
)

// InitialCommitMessage is the message of the commit made in a repository
// without history, so that branches have a commit to point at.
const InitialCommitMessage = "Initial Commit"

// Logger defines an interface for logging best-effort operation failures.
type Logger interface {
	Warn(msg string, args ...any)
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger for best-effort operation warnings.
func WithLogger(l Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithInitialCommit makes Apply commit the working tree before creating branches.
func WithInitialCommit() Option {
	return func(s *Service) { s.initialCommit = true }
}

// Service applies a branching convention to a repository.
type Service struct {
	git           git.Client
	initialCommit bool
	logger        Logger
}

// nopLogger discards all log messages.
type nopLogger struct{}

func (nopLogger) Warn(string, ...any) {}

// NewService creates a Service backed by the given git client.
func NewService(g git.Client, opts ...Option) *Service {
	s := &Service{
		git:    g,
		logger: nopLogger{},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Status is the outcome of one setup step.
type Status int

const (
	// StatusCreated indicates the step created the branch or commit.
	StatusCreated Status = iota
	// StatusExisting indicates the branch was already there.
	StatusExisting
	// StatusFailed indicates the step was attempted and failed.
	StatusFailed
	// StatusSkipped indicates the step was not attempted.
	StatusSkipped
	// StatusCheckedOut indicates the branch is now checked out.
	StatusCheckedOut
)

var statusStrings = [...]string{
	StatusCreated:    "created",
	StatusExisting:   "existing",
	StatusFailed:     "failed",
	StatusSkipped:    "skipped",
	StatusCheckedOut: "checked_out",
}

// String returns the string representation of the Status.
func (s Status) String() string {
	if int(s) < len(statusStrings) {
		return statusStrings[s]
	}
	return "unknown"
}

// MarshalJSON returns the JSON encoding of the Status.
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON parses a JSON string into a Status.
func (s *Status) UnmarshalJSON(data []byte) error {
	str := strings.Trim(string(data), `"`)
	for i, v := range statusStrings {
		if v == str {
			*s = Status(i)
			return nil
		}
	}
	return fmt.Errorf("unknown status: %s", str)
}

// OK reports whether the step left the repository in the wanted state.
func (s Status) OK() bool {
	return s != StatusFailed
}

// BranchResult holds the outcome for one long-lived branch.
type BranchResult struct {
	Name   string `json:"name"`
	Status Status `json:"status"`
	Error  string `json:"error,omitempty"`
}

// CodebaseResult holds the outcome for the branch pair of one codebase.
type CodebaseResult struct {
	Production BranchResult `json:"production"`
	Develop    BranchResult `json:"develop"`
	Prefix     string       `json:"prefix,omitempty"`
}

// Report describes everything Apply did.
type Report struct {
	InitialCommit Status           `json:"initial_commit"`
	Codebases     []CodebaseResult `json:"codebases"`
	Checkout      BranchResult     `json:"checkout"`
}

// Failed reports whether any branch could not be created.
func (r *Report) Failed() bool {
	for _, cb := range r.Codebases {
		if !cb.Production.Status.OK() || !cb.Develop.Status.OK() {
			return true
		}
	}
	return false
}
