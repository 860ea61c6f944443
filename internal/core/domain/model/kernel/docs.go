// Package kernel holds the shared value objects of the domain model.
//
// The package includes:
//   - UUID: identifier value object wrapping github.com/google/uuid
//   - Location: a geographic point (latitude/longitude) with great-circle distance
//   - Actor: the role and identity of the caller driving a state change
//   - DomainEvent: the contract for events recorded by aggregates and published after commit
//
// Values are immutable and validated on construction; zero values fail Validate.
package kernel
