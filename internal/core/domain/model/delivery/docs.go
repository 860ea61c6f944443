// Package delivery implements the Delivery aggregate: the courier-facing side of an order
// once the restaurant marks it READY.
//
// A delivery is created PENDING without a courier, bound to exactly one courier on accept
// and then driven by that courier through PICKED_UP to DELIVERED. There is no cancelled
// state.
package delivery
