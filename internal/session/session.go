package session

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vishwas-tech29/Smart-Research-Assistant/internal/document"
)

// OutcomeStatus tags the result of an upload attempt.
type OutcomeStatus string

const (
	StatusSuccess OutcomeStatus = "success"
	StatusError   OutcomeStatus = "error"
)

// Outcome records how an upload attempt ended. It is produced exactly once
// per attempt, at the end, regardless of success or failure.
type Outcome struct {
	ID        string
	Status    OutcomeStatus
	Message   string
	Completed time.Time
}

// Success builds a success outcome with a fresh id.
func Success(message string) Outcome {
	return Outcome{ID: uuid.New().String(), Status: StatusSuccess, Message: message, Completed: time.Now()}
}

// Failure builds an error outcome with a fresh id.
func Failure(message string) Outcome {
	return Outcome{ID: uuid.New().String(), Status: StatusError, Message: message, Completed: time.Now()}
}

// Session holds the interaction state for one screen: the selected document,
// the question being composed, the last report, the last upload outcome, and
// the busy/hover flags. It is owned by the UI event loop; operation results
// re-enter through Finish transitions on that same loop, so no locking is
// needed.
//
// State changes only through the named transitions below. The selected file
// is cleared only by replacement; there is deliberately no removal
// transition.
type Session struct {
	file      *document.File
	question  string
	report    string
	askError  string
	outcome   *Outcome
	uploading bool
	asking    bool
	dragHover bool
}

func New() *Session {
	return &Session{}
}

// File returns the selected document, or nil when none has been chosen.
func (s *Session) File() *document.File { return s.file }

// Question returns the current free-text question.
func (s *Session) Question() string { return s.question }

// Report returns the last completed answer, empty until a query finishes.
func (s *Session) Report() string { return s.report }

// AskError returns the failure text of the last query, empty on success.
func (s *Session) AskError() string { return s.askError }

// Outcome returns the last upload outcome, or nil before any attempt
// completes.
func (s *Session) Outcome() *Outcome { return s.outcome }

func (s *Session) Uploading() bool { return s.uploading }
func (s *Session) Asking() bool    { return s.asking }
func (s *Session) DragHover() bool { return s.dragHover }

// Busy reports whether either simulated operation is in flight.
func (s *Session) Busy() bool { return s.uploading || s.asking }

// SetQuestion replaces the question text; called on every keystroke.
func (s *Session) SetQuestion(text string) {
	s.question = text
}

// BeginUpload starts an upload attempt. It refuses when no file is selected
// or an upload is already running, leaving all state untouched. On success
// the prior outcome is cleared.
func (s *Session) BeginUpload() bool {
	if s.file == nil || s.uploading {
		return false
	}
	s.uploading = true
	s.outcome = nil
	return true
}

// FinishUpload ends the attempt started by BeginUpload. The busy flag is
// cleared regardless of the outcome's status.
func (s *Session) FinishUpload(outcome Outcome) {
	s.outcome = &outcome
	s.uploading = false
}

// BeginAsk starts a query for the current question. It refuses when the
// trimmed question is empty or a query is already running. The returned
// string is the exact text submitted.
func (s *Session) BeginAsk() (string, bool) {
	question := strings.TrimSpace(s.question)
	if question == "" || s.asking {
		return "", false
	}
	s.asking = true
	s.askError = ""
	return question, true
}

// FinishAsk ends the query started by BeginAsk. On success the report is
// overwritten; on failure the prior report is kept and the error text
// recorded.
func (s *Session) FinishAsk(report string, err error) {
	s.asking = false
	if err != nil {
		s.askError = err.Error()
		return
	}
	s.report = report
	s.askError = ""
}

// HoverStart marks a drag gesture over the drop target.
func (s *Session) HoverStart() {
	s.dragHover = true
}

// HoverEnd clears the hover flag. Always safe, regardless of prior state.
func (s *Session) HoverEnd() {
	s.dragHover = false
}

// Drop ends a drag gesture. The file is stored only when its declared type
// is exactly application/pdf; anything else is ignored without surfacing an
// error. Returns whether the selection changed.
func (s *Session) Drop(f document.File) bool {
	s.dragHover = false
	if !f.IsPDF() {
		return false
	}
	s.file = &f
	return true
}
