package storage

import "errors"

// ErrProjectNotFound is returned when no payment record exists for a project.
var ErrProjectNotFound = errors.New("project payment not found")

// ErrAlreadyReleased is returned when a deposit targets a project whose payment
// has already been released.
var ErrAlreadyReleased = errors.New("payment already released")

// ErrNotReadyToRelease is returned when a release targets a project that is not
// in the ready_to_release state.
var ErrNotReadyToRelease = errors.New("payment not ready to release")

// ErrExceedsRemaining is returned when a partial deposit exists and the new
// deposit would push the escrowed total past the contracted amount.
var ErrExceedsRemaining = errors.New("deposit exceeds remaining amount")

// ErrProjectNotCompletable is returned when a completion event targets a project
// that is not fully escrowed, e.g. because it was already completed or released.
var ErrProjectNotCompletable = errors.New("project not in a completable state")

// ErrConcurrentUpdate is returned when an optimistic-locking check fails because
// the record changed between the read and the write.
var ErrConcurrentUpdate = errors.New("record modified concurrently")
