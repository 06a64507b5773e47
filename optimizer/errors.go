package optimizer

import "errors"

// Common errors returned by the optimizer.
var (
	ErrUnknownSetting   = errors.New("unknown setting")
	ErrDuplicateSetting = errors.New("setting already exists")
	ErrInvalidBounds    = errors.New("setting min exceeds max")
	ErrUnknownTweak     = errors.New("unknown tweak")
)
