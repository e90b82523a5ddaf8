package validation

import (
	"fmt"
	"math"

	apperrors "dishpatch/internal/errors"
)

// Step is one check in a request validation chain.
type Step func() error

// Run executes steps in order and returns the first failure. Later steps
// do not run and the handler must not run either.
func Run(steps ...Step) error {
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func Require(resource, field string, present bool) Step {
	return func() error {
		if !present {
			return apperrors.NewValidationError(fmt.Sprintf("%s must include a %s", resource, field))
		}
		return nil
	}
}

// An empty body id always passes.
func IDMatchesRoute(resource, bodyID, routeID string) Step {
	return func() error {
		if bodyID != "" && bodyID != routeID {
			return apperrors.NewRouteConflictError(fmt.Sprintf(
				"%s id does not match route id. %s: %s, Route: %s.",
				resource, resource, bodyID, routeID,
			))
		}
		return nil
	}
}

// PositiveInteger reports whether n is a whole number greater than zero
// that converts to int without wrapping. Values at or past 1<<63 would
// overflow the conversion, so they fail here instead.
func PositiveInteger(n float64) bool {
	return n > 0 && n < float64(math.MaxInt64) && n == math.Trunc(n)
}
