package app

import "fmt"

// SaveError reports that a change was applied in memory but could not be
// written to the store.
type SaveError struct {
	Err error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("app: change not saved: %v", e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }
