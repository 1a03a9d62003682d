package redfin

import "errors"

// The closed set of failure kinds a run can surface. Callers branch with
// errors.Is instead of matching arbitrary error types.
var (
	ErrSessionSetup     = errors.New("browser session setup failed")
	ErrNavigationFailed = errors.New("could not navigate to housing market page")
	ErrPriceNotFound    = errors.New("median price element not found")
	ErrUnparsablePrice  = errors.New("could not parse price text")
)
