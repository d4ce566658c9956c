package notify

// Event names a state transition worth telling someone about.
type Event string

const (
	EventGuaranteeRequested Event = "guarantee_requested"
	EventGuaranteeAccepted  Event = "guarantee_accepted"
	EventGuaranteeDeclined  Event = "guarantee_declined"
	EventGuaranteeCancelled Event = "guarantee_cancelled"

	EventApplicationSubmitted Event = "application_submitted"
	EventApplicationApproved  Event = "application_approved"
	EventApplicationDeclined  Event = "application_declined"
	EventApplicationCancelled Event = "application_cancelled"
	EventApplicationAmended   Event = "application_amended"
)

// Notifier is fire-and-forget: implementations log failures and never
// surface them, so a dead mail relay cannot roll back a transition.
type Notifier interface {
	Notify(event Event, recipient string, fields map[string]string)
}

// Nop discards every notification. Used in tests.
type Nop struct{}

func (Nop) Notify(Event, string, map[string]string) {}
