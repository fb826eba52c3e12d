package session

// Outcome is how a level attempt ended
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCompleted
	OutcomeFailed
)

// String returns the string representation of the outcome
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "None"
	case OutcomeCompleted:
		return "Completed"
	case OutcomeFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Reason explains a failed outcome
type Reason string

const (
	ReasonNone Reason = ""
	ReasonFell Reason = "fell"
	ReasonTime Reason = "time"
	// ReasonAbandoned marks an attempt the player walked away from
	ReasonAbandoned Reason = "abandoned"
)
