package app

import (
	"time"

	"github.com/alexanderramin/workclock/internal/domain"
)

type ExportRequest struct {
	Month  domain.YearMonth
	Format string
	Dir    string
	Now    *time.Time
}

type SendRequest struct {
	Month domain.YearMonth
	Now   *time.Time
}

type SendResult struct {
	Month      domain.YearMonth
	Recipients []string
	Attachment string
}

// AutoSendResult is nil-Sent with a SkipReason when nothing was due.
type AutoSendResult struct {
	Sent       *SendResult
	SkipReason string
}
