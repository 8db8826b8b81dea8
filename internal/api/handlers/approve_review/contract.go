package approve_review

import "context"

type ReviewService interface {
	SetApproved(ctx context.Context, id int64, approved bool) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
