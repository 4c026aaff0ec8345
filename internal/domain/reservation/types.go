package reservation

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusUsed      Status = "USED"
	StatusCancelled Status = "CANCELLED"
	StatusExpired   Status = "EXPIRED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusUsed, StatusCancelled, StatusExpired:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is allowed from s.
func (s Status) IsTerminal() bool {
	return s != StatusActive
}
