package admin

import "errors"

// SelfActionError marks a rejected self-targeting action. The reason is
// user-facing and distinct per action.
type SelfActionError struct {
	Reason string
}

func (e *SelfActionError) Error() string {
	return e.Reason
}

var (
	ErrSelfSuspend     = &SelfActionError{Reason: "you cannot suspend yourself"}
	ErrSelfDelete      = &SelfActionError{Reason: "you cannot delete yourself"}
	ErrSelfDemote      = &SelfActionError{Reason: "you cannot remove your own admin rights"}
	ErrSelfEmailChange = &SelfActionError{Reason: "you cannot change your own email address here"}
	ErrAlreadyAdmin    = &SelfActionError{Reason: "you are already an administrator"}
)

var ErrEmptyEmail = errors.New("email must not be empty")
