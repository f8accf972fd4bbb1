// Package notify is the transient-notice channel of the client: the terminal
// analog of the original application's toast popups. Contexts emit user-facing
// success/failure notices through it instead of returning presentation
// strings.
package notify

import (
	"fmt"
	"io"
)

// Notifier receives short, user-visible notices.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Console writes notices to a terminal.
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Success(msg string) {
	fmt.Fprintf(c.w, "✔ %s\n", msg)
}

func (c *Console) Error(msg string) {
	fmt.Fprintf(c.w, "✖ %s\n", msg)
}

// Recorder captures notices in order; used by tests to assert which notices
// a flow emitted.
type Recorder struct {
	Entries []Entry
}

// Entry is one recorded notice.
type Entry struct {
	Kind string // "success" or "error"
	Msg  string
}

func (r *Recorder) Success(msg string) {
	r.Entries = append(r.Entries, Entry{Kind: "success", Msg: msg})
}

func (r *Recorder) Error(msg string) {
	r.Entries = append(r.Entries, Entry{Kind: "error", Msg: msg})
}

// Last returns the most recent notice, or a zero Entry when none was emitted.
func (r *Recorder) Last() Entry {
	if len(r.Entries) == 0 {
		return Entry{}
	}
	return r.Entries[len(r.Entries)-1]
}
