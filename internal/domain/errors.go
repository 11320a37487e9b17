package domain

import "errors"

var (
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUserInactive          = errors.New("user is inactive")
	ErrDuplicateEmail        = errors.New("email already in use")
	ErrDuplicatePhone        = errors.New("phone number already in use")
	ErrInvalidRole           = errors.New("invalid role")
	ErrZoneNotFound          = errors.New("zone not found")
	ErrHeatwaveNotFound      = errors.New("heatwave not found")
	ErrStatisticNotFound     = errors.New("statistic not found")
	ErrDuplicateStatistic    = errors.New("a statistic already exists for this heatwave")
	ErrRecommendationMissing = errors.New("recommendation not found")
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrAlreadyResident       = errors.New("user already lives in this zone")
	ErrNotResident           = errors.New("user does not live in this zone")
	ErrInvalidPeriod         = errors.New("heatwave end must not be before its start")
	ErrInvalidNotification   = errors.New("invalid notification type")
	ErrRegionNotFound        = errors.New("region not found")
	ErrUploadFailed          = errors.New("report upload to storage failed")
)
