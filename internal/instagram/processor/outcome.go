package processor

// Outcome is the terminal state a message reached
type Outcome string

const (
	OutcomeInvalidFormat          Outcome = "invalid_format"
	OutcomeFormatRejected         Outcome = "format_rejected"
	OutcomeAlreadyOwnsPoap        Outcome = "already_owns_poap"
	OutcomeAlreadyClaimedValue    Outcome = "already_claimed_value"
	OutcomeAlreadyClaimedBySender Outcome = "already_claimed_by_sender"
	OutcomeDelivered              Outcome = "delivered"
	OutcomeFailed                 Outcome = "failed"
	// OutcomeError marks a message left unprocessed by an unexpected failure
	OutcomeError Outcome = "error"
)

// ProcessResult reports what happened to one message
type ProcessResult struct {
	Processed bool
	Outcome   Outcome
	Error     error
	PoapLink  string
}
