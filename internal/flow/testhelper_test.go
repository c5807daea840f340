package flow

import (
	"context"
	"fmt"
	"testing"

	"github.com/wasabi0522/dxflow/internal/prompt"
)

// reply is one scripted answer. Text answers of "" accept the default.
type reply struct {
	kind string
	text string
	num  int
}

func text(s string) reply { return reply{kind: "input", text: s} }
func count(n int) reply { return reply{kind: "number", num: n} }
func pick(label string) reply { return reply{kind: "select", text: label} }

// question records what the wizard asked.
type question struct {
	kind     string
	message  string
	def      string
	options  []string
	rejected []string
}

// transcript feeds scripted replies to a PrompterMock and records the questions.
// Replies rejected by a validator are recorded and the next reply is used,
// the same way a terminal re-asks. Running out of replies aborts.
type transcript struct {
	t         *testing.T
	replies   []reply
	questions []question
	notices   []string
	mock      *prompt.PrompterMock
}

func scripted(t *testing.T, replies ...reply) *transcript {
	t.Helper()
	tr := &transcript{t: t, replies: replies}
	tr.mock = &prompt.PrompterMock{
		InputFunc: func(_ context.Context, q prompt.Input) (string, error) {
			tr.questions = append(tr.questions, question{kind: "input", message: q.Message, def: q.Default})
			for {
				r, ok := tr.next("input")
				if !ok {
					return "", prompt.ErrAborted
				}
				v := r.text
				if v == "" {
					v = q.Default
				}
				if q.Validate != nil {
					if err := q.Validate(v); err != nil {
						tr.reject(v)
						continue
					}
				}
				return v, nil
			}
		},
		NumberFunc: func(_ context.Context, q prompt.Number) (int, error) {
			tr.questions = append(tr.questions, question{kind: "number", message: q.Message})
			for {
				r, ok := tr.next("number")
				if !ok {
					return 0, prompt.ErrAborted
				}
				if q.Validate != nil {
					if err := q.Validate(r.num); err != nil {
						tr.reject(r.num)
						continue
					}
				}
				return r.num, nil
			}
		},
		SelectFunc: func(_ context.Context, q prompt.Select) (int, error) {
			tr.questions = append(tr.questions, question{
				kind:    "select",
				message: q.Message,
				def:     q.Options[q.Default],
				options: q.Options,
			})
			r, ok := tr.next("select")
			if !ok {
				return 0, prompt.ErrAborted
			}
			for i, o := range q.Options {
				if o == r.text {
					return i, nil
				}
			}
			tr.t.Fatalf("option %q not offered in %v", r.text, q.Options)
			return 0, nil
		},
		NotifyFunc: func(msg string) {
			tr.notices = append(tr.notices, msg)
		},
	}
	return tr
}

func (tr *transcript) next(kind string) (reply, bool) {
	tr.t.Helper()
	if len(tr.replies) == 0 {
		return reply{}, false
	}
	r := tr.replies[0]
	tr.replies = tr.replies[1:]
	if r.kind != kind {
		tr.t.Fatalf("wizard asked a %s question but the script answers %s (%+v)", kind, r.kind, r)
	}
	return r, true
}

func (tr *transcript) reject(v any) {
	last := &tr.questions[len(tr.questions)-1]
	last.rejected = append(last.rejected, fmt.Sprint(v))
}

// ofKind returns the recorded questions of the given kind.
func (tr *transcript) ofKind(kind string) []question {
	var qs []question
	for _, q := range tr.questions {
		if q.kind == kind {
			qs = append(qs, q)
		}
	}
	return qs
}

// listing returns a BranchListerMock reporting names.
func listing(names ...string) *BranchListerMock {
	return &BranchListerMock{
		ListBranchesFunc: func(context.Context) ([]string, error) {
			return names, nil
		},
	}
}

func newTestWizard(b BranchLister, tr *transcript) *Wizard {
	return NewWizard(b, tr.mock)
}
