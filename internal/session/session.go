// Package session provides the scoped transaction the presentation layer
// wraps around one mutation: a modal dialog begins a session when it opens,
// buffers the command the operator is assembling, and either commits it on
// OK or discards it on Cancel. The document is only touched at the single
// commit point, never field-by-field as the operator types.
//
// At most one session may be open against a document at a time, matching
// modal editing. Sessions are not safe for concurrent use; like the rest of
// the core they assume a single caller.
package session

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/termsui/suicfg/internal/engine"
	serrors "github.com/termsui/suicfg/internal/errors"
	"github.com/termsui/suicfg/internal/model"
)

// open tracks which documents currently have a session against them.
var open = make(map[*model.Document]*Session)

// Session is one pending mutation against a document.
type Session struct {
	// ID identifies the session in logs and error messages.
	ID uuid.UUID

	doc    *model.Document
	cmd    engine.Command
	closed bool
}

// Begin opens a session that will apply cmd to doc when committed. It
// fails with ErrSessionAlreadyOpen if another session is open against the
// same document.
func Begin(doc *model.Document, cmd engine.Command) (*Session, error) {
	if existing, ok := open[doc]; ok {
		return nil, fmt.Errorf("session %s: %w", existing.ID, serrors.ErrSessionAlreadyOpen)
	}
	s := &Session{ID: uuid.New(), doc: doc, cmd: cmd}
	open[doc] = s
	return s, nil
}

// Replace swaps the buffered command, for dialogs that rebuild the command
// as the operator edits fields. The document stays untouched.
func (s *Session) Replace(cmd engine.Command) error {
	if s.closed {
		return fmt.Errorf("session %s: %w", s.ID, serrors.ErrSessionClosed)
	}
	s.cmd = cmd
	return nil
}

// Commit applies the buffered command through the mutation engine and
// closes the session. A validation failure still closes the session; the
// document is unchanged in that case.
func (s *Session) Commit() (*engine.Change, error) {
	if s.closed {
		return nil, fmt.Errorf("session %s: %w", s.ID, serrors.ErrSessionClosed)
	}
	s.close()
	return engine.Apply(s.doc, s.cmd)
}

// Discard closes the session without touching the document. Discarding an
// already closed session is a no-op.
func (s *Session) Discard() {
	if !s.closed {
		s.close()
	}
}

func (s *Session) close() {
	s.closed = true
	delete(open, s.doc)
}
