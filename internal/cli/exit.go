package cli

import "fmt"

// ExitError asks main to exit with Code without printing anything, for
// commands whose result is carried by the exit status.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}
