// Package ports declares the interfaces the core needs from the outside world:
// repositories and the unit of work, the read-only catalog, the PIX payment provider,
// the real-time pusher and the domain event publisher.
package ports
