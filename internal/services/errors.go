package services

import (
	"fmt"

	"boystrip/pkg/utils"
)

// dbErr tags a store failure so the API reports it as a 500 while keeping
// the cause for the log.
func dbErr(err error) error {
	return fmt.Errorf("%w: %w", utils.ErrDatabaseError, err)
}

func invalid(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
