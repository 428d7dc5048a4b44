package domain

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailTaken           = errors.New("email already registered")
	ErrNoUpdateData         = errors.New("no update data provided")
	ErrCannotLikeSelf       = errors.New("users cannot like themselves")
	ErrCannotReportSelf     = errors.New("users cannot report themselves")
	ErrLikeNotFound         = errors.New("like not found")
	ErrMatchNotFound        = errors.New("match not found")
	ErrMatchAlreadyExists   = errors.New("match already exists")
	ErrPhotoNotFound        = errors.New("photo not found")
	ErrTooManyPhotos        = errors.New("photo limit exceeded")
	ErrNoValidFiles         = errors.New("no valid image files uploaded")
	ErrPreferenceNotFound   = errors.New("preference not found")
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrUnknownPlan          = errors.New("unknown subscription plan")
	ErrReportNotFound       = errors.New("report not found")
)
