package applications

import "errors"

var (
	ErrNotApproved          = errors.New("activity is not open for applications")
	ErrCapacityExceeded     = errors.New("activity is full")
	ErrDuplicateApplication = errors.New("already applied to this activity")
	ErrApplicationNotFound  = errors.New("application not found")
)
