package reconcile

import "fmt"

// StoreError wraps a failed store operation. Any lookup, probe, or persist
// failure aborts the whole reconcile call; the store never sees a partial
// write.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("user store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
