package kernel

// DomainEvent is a fact recorded by an aggregate during a state change. Events are held by
// the aggregate until the unit of work commits, then published in recording order.
type DomainEvent interface {
	EventName() string
}

// EventRecorder is implemented by aggregates that record domain events.
type EventRecorder interface {
	// PullEvents returns the recorded events and clears them.
	PullEvents() []DomainEvent
}
