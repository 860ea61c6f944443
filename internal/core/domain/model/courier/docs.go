// Package courier implements the Courier (delivery person) aggregate.
//
// The package includes:
//   - Courier: identity, availability, vehicle, current position and delivery statistics
//   - Availability: AVAILABLE, BUSY, OFFLINE
//   - VehicleType: BICYCLE, MOTORCYCLE, CAR with the average speed used for estimates
//
// Key business rules:
//   - A courier is BUSY exactly while one accepted delivery is active
//   - Only AVAILABLE couriers may accept deliveries
//   - Releasing a BUSY courier counts one more completed delivery
package courier
