package report

import "errors"

var (
	ErrReasonRequired   = errors.New("reason is required")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrInvalidReporter  = errors.New("invalid reporter")
	ErrMultipleOfferIDs = errors.New("report must target at most one offer")
	ErrReportNotFound   = errors.New("report not found")
	ErrNoReports        = errors.New("no reports found")
)
