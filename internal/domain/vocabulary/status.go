package vocabulary

// Status is the learning status of a flashcard. Correct answers move a
// card forward along open -> learning -> learned; a wrong answer at any
// point resets it to open.
type Status string

const (
	StatusOpen     Status = "open"
	StatusLearning Status = "learning"
	StatusLearned  Status = "learned"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusLearning, StatusLearned:
		return true
	}
	return false
}

// Priority orders statuses for list views: open cards first, learned
// cards last.
func (s Status) Priority() int {
	switch s {
	case StatusOpen:
		return 1
	case StatusLearning:
		return 2
	case StatusLearned:
		return 3
	}
	return 4
}

// GermanName is the display name used by the web frontend.
func (s Status) GermanName() string {
	switch s {
	case StatusOpen:
		return "offen"
	case StatusLearning:
		return "am Lernen"
	case StatusLearned:
		return "gelernt"
	}
	return string(s)
}

// Advance returns the status a card moves to after one practice answer.
// learned is terminal on success; any incorrect answer resets to open.
func Advance(current Status, correct bool) Status {
	if !correct {
		return StatusOpen
	}
	switch current {
	case StatusOpen:
		return StatusLearning
	case StatusLearning, StatusLearned:
		return StatusLearned
	}
	return StatusOpen
}
