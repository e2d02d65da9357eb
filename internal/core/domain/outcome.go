package domain

// Status is the token a stored procedure writes to its status OUT parameter
type Status string

const (
	StatusSuccess   Status = "success"
	StatusDuplicate Status = "duplicate"
	StatusNotFound  Status = "not_found"
	StatusDenied    Status = "denied"
	StatusError     Status = "error"
)

// ParseStatus maps a raw token to a Status. Unknown or empty tokens are
// treated as StatusError.
func ParseStatus(token string) Status {
	switch s := Status(token); s {
	case StatusSuccess, StatusDuplicate, StatusNotFound, StatusDenied, StatusError:
		return s
	default:
		return StatusError
	}
}

// Outcome is the status token and message returned by a stored procedure
type Outcome struct {
	Status  Status
	Message string
}

// OK reports whether the procedure succeeded
func (o Outcome) OK() bool {
	return o.Status == StatusSuccess
}

// ReservedSerial is the result of the fetch-and-reserve operation. Serial
// is empty when no approved, unallocated serial number was available.
type ReservedSerial struct {
	Serial  string
	Outcome Outcome
}
