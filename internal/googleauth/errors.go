package googleauth

import "fmt"

// AuthError reports a failure to obtain a usable credential. It is fatal to
// client construction: no spreadsheet call is made once acquisition fails.
type AuthError struct {
	Step string // "load", "refresh", "interactive" or "persist"
	Err  error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("credential %s failed: %v", e.Step, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}
