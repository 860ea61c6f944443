// Package errs provides the typed errors shared by the domain, the use cases and the
// HTTP adapter.
//
// Every error kind follows the same pattern:
//   - a sentinel variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - a struct type carrying the details (ParamName, Cause, ...)
//   - constructors with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Kinds:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: validation failures
//   - ObjectNotFoundError: a referenced object does not exist
//   - ForbiddenError: the actor may not perform the operation
//   - InvalidTransitionError: a state machine rejects the requested status change
//   - ConflictError: the operation would duplicate an existing object
//   - PreconditionFailedError: the object is no longer in the state the operation requires
package errs
