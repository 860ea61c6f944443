// Package services provides domain services that span more than one aggregate.
//
// The package includes:
//   - Pricing functions that compute and check order amounts
//   - DeliveryEstimator: remaining delivery time from courier, restaurant and address positions
//   - CourierLocator: available couriers near a point, nearest first
//   - DeliveryAssigner: binds a courier to a delivery and drives the delivery and its order together
package services
