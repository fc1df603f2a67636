package payroll

// Status enum. The pipeline is strictly ordered:
//
//	draft -> processing -> validated -> submitted -> approved -> paid
//
// with rejected as an off-path terminal state reachable only from submitted.
// A freshly generated record may skip processing and be validated directly.
type Status string

const (
	StatusDraft      Status = "draft"
	StatusProcessing Status = "processing"
	StatusValidated  Status = "validated"
	StatusSubmitted  Status = "submitted"
	StatusApproved   Status = "approved"
	StatusPaid       Status = "paid"
	StatusRejected   Status = "rejected"
)

// transitions is the full legal-edge table. Anything not listed here is an
// illegal transition.
var transitions = map[Status][]Status{
	StatusDraft:      {StatusProcessing, StatusValidated},
	StatusProcessing: {StatusValidated},
	StatusValidated:  {StatusSubmitted},
	StatusSubmitted:  {StatusApproved, StatusRejected},
	StatusApproved:   {StatusPaid},
	StatusPaid:       {},
	StatusRejected:   {},
}

// CanTransition reports whether moving from s to next is legal.
func (s Status) CanTransition(next Status) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no outgoing edges exist.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}
