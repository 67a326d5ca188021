package commands

// Write-side inputs are plain structs so handlers and stream consumers share them.

type ConfigureChannelInput struct {
	Provider    string
	FromAddress string
	FromName    string
	Endpoint    string
}

// IntakeResult reports what happened to each requested recipient. It is for
// observability only; intake never fails the caller.
type IntakeResult struct {
	// Queued recipients had an event handed to the scheduler.
	Queued []string
	// Skipped recipients could not be resolved or produced an invalid event.
	Skipped []string
	// Dropped recipients were resolved but no outbound channel is configured.
	Dropped []string
}

func (r *IntakeResult) merge(o IntakeResult) {
	r.Queued = append(r.Queued, o.Queued...)
	r.Skipped = append(r.Skipped, o.Skipped...)
	r.Dropped = append(r.Dropped, o.Dropped...)
}
