package workflow

import "errors"

// ErrOperationInFlight is returned when a deposit or release is attempted
// while another mutating call for this controller is still outstanding.
var ErrOperationInFlight = errors.New("another payment operation is already in flight")

// ErrInvalidStep is returned when an operation is invoked outside its
// workflow step, e.g. ConfirmRelease without RequestRelease.
var ErrInvalidStep = errors.New("operation not valid in the current workflow step")

// ErrUnknownProject is returned when the requested project is not in the
// cached pending list.
var ErrUnknownProject = errors.New("project not found in pending payments")

// ErrAlreadyReleased is returned when a deposit is initiated for a project
// whose payment has already been released.
var ErrAlreadyReleased = errors.New("payment already released")

// ErrNotReadyToRelease is returned when a release is requested for a
// project whose cached status is not ready_to_release.
var ErrNotReadyToRelease = errors.New("payment is not ready to release")

// ErrInvalidAmount is returned when a deposit is confirmed with a
// non-positive amount.
var ErrInvalidAmount = errors.New("deposit amount must be positive")
