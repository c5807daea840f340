package prompt

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrAborted is returned when the user cancels a question.
var ErrAborted = errors.New("aborted by user")

// ErrNotInteractive is returned when questions cannot be asked because
// standard input is not a terminal.
var ErrNotInteractive = errors.New("an interactive terminal is required")

// Input is a free-text question. An empty answer selects Default.
type Input struct {
	Message  string
	Default  string
	Validate func(string) error
}

// Number is a whole-number question.
type Number struct {
	Message  string
	Default  int
	Validate func(int) error
}

// Select is a single-choice question over Options. Default is an index into Options.
type Select struct {
	Message string
	Options []string
	Default int
}

// Confirm is a yes/no question.
type Confirm struct {
	Message string
	Default bool
}

//go:generate moq -out prompt_mock.go . Prompter

// Prompter asks questions and blocks until a valid answer is given.
// Implementations re-ask a question for as long as its validator rejects the
// answer; only cancellation surfaces as an error.
type Prompter interface {
	Input(ctx context.Context, q Input) (string, error)
	Number(ctx context.Context, q Number) (int, error)
	Select(ctx context.Context, q Select) (int, error)
	Confirm(ctx context.Context, q Confirm) (bool, error)
	Notify(msg string)
}

// Required rejects blank answers.
func Required(v string) error {
	if strings.TrimSpace(v) == "" {
		return errors.New("this is required")
	}
	return nil
}

// Positive rejects numbers below one.
func Positive(n int) error {
	if n < 1 {
		return errors.New("must be greater than zero")
	}
	return nil
}

// numberAsInput expresses a Number question as a text question so both share
// one input widget.
func numberAsInput(q Number) Input {
	return Input{
		Message: q.Message,
		Default: strconv.Itoa(q.Default),
		Validate: func(v string) error {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				return fmt.Errorf("'%s' is not a whole number", v)
			}
			if q.Validate != nil {
				return q.Validate(n)
			}
			return nil
		},
	}
}
