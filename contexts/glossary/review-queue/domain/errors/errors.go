package errors

import "errors"

var (
	ErrInvalidVoteInput   = errors.New("invalid vote input")
	ErrCandidateNotFound  = errors.New("definition candidate not found")
	ErrFlagHoldTooShort   = errors.New("flag hold released before threshold")
	ErrFlagNotConfirmed   = errors.New("flag requires explicit confirmation")
	ErrFlagSignalNotFound = errors.New("flag signal not found")
)
