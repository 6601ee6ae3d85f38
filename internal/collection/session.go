package collection

// FormState is the state of a form session.
type FormState int

// Form session states: Closed -> Open(Creating|Editing) -> Closed.
const (
	FormClosed FormState = iota
	FormCreating
	FormEditing
)

// FormSession tracks one open create-or-edit interaction. It exits either via
// a successful Submit (mutation applied) or via Cancel (no mutation). There
// is no intermediate saving state: persistence is synchronous and local.
type FormSession struct {
	state FormState
	id    string
}

// State returns the session's current state.
func (s *FormSession) State() FormState { return s.state }

// Open reports whether the session can still accept a submission.
func (s *FormSession) Open() bool { return s.state != FormClosed }

// RecordID returns the id of the record being edited, or "" for a create
// session.
func (s *FormSession) RecordID() string { return s.id }

// Cancel closes the session without applying any mutation.
func (s *FormSession) Cancel() { s.close() }

func (s *FormSession) close() {
	s.state = FormClosed
}
