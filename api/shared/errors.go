/* errors.go
 * Sentinel errors shared between sub packages. Handlers check these with
 * errors.Is and turn them into user facing messages
 * Authors: Zachary Bower
 */

package shared

import "errors"

var (
	// ErrValidation means a step input was not in the allowed option set.
	// The registration state does not advance and the user is re-prompted.
	ErrValidation = errors.New("invalid selection")

	// ErrAlreadyRegistered means the user is already waiting in a member
	// queue. Soft condition, rendered as "wait for matching".
	ErrAlreadyRegistered = errors.New("already registered")

	// ErrIdentityMismatch means a locked leader tried to register with a
	// different university or department than their first registration.
	ErrIdentityMismatch = errors.New("university or department does not match previous leader registration")

	// ErrUnknownTrack means a track identifier has no catalog entry.
	ErrUnknownTrack = errors.New("unknown track")

	// ErrNotification means a match announcement could not be delivered.
	// The pairing is aborted and retried on the next sweep.
	ErrNotification = errors.New("notification delivery failed")

	// ErrPersistence means a snapshot write or read failed. Logged, never
	// surfaced to the user facing flow.
	ErrPersistence = errors.New("snapshot persistence failed")

	// ErrTimeout means an in-progress registration expired waiting for
	// input. The whole flow must restart from the beginning.
	ErrTimeout = errors.New("registration timed out")
)
