// Package order implements the Order aggregate and its lifecycle.
//
// The package includes:
//   - Order: the aggregate root holding the priced item snapshot, payment and timestamps
//   - Status: the order state machine (PENDING, PREPARING, READY, OUT_FOR_DELIVERY, DELIVERED, CANCELLED)
//   - Item: an immutable snapshot of a menu item at the time of ordering
//   - Payment: a sealed union of stored card, PIX and cash payments
//   - OrderCreated and OrderStatusUpdated domain events
//
// Key business rules:
//   - totalAmount == subtotal + deliveryFee and subtotal == sum of item totals
//   - Every status change goes through Order.Transition, which checks the actor's
//     permissions before the transition table
//   - DELIVERED and CANCELLED are terminal
//   - Orders are never deleted
package order
