package service

import "errors"

var (
	ErrFutureMonth        = errors.New("month is in the future")
	ErrNoRecipients       = errors.New("no email recipients configured")
	ErrNoTimer            = errors.New("no timer is running")
	ErrTimerRunning       = errors.New("a timer is already running")
	ErrTimerTooShort      = errors.New("timer stopped in the same minute it started")
	ErrTimerTooLong       = errors.New("timer ran for 24 hours or more")
	ErrDuplicateRecipient = errors.New("recipient already added")
	ErrUnknownRecipient   = errors.New("recipient not in list")
)
