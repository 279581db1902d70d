package booking

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// InitialStatus is the state every new booking starts in.
func InitialStatus() Status {
	return StatusPending
}

// StatusForAction maps the owner's form action onto a decision: "accept"
// accepts, anything else rejects.
func StatusForAction(action string) Status {
	if action == "accept" {
		return StatusAccepted
	}
	return StatusRejected
}
