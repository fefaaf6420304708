package domain

import "fmt"

// BookedRangeError carries the range of the confirmed booking that blocked
// an operation. Err is the caller's sentinel so errors.Is keeps working.
type BookedRangeError struct {
	Err       error
	BookingID int64
	Range     DateRange
}

func (e *BookedRangeError) Error() string {
	return fmt.Sprintf("%v: booking id=%d holds %s", e.Err, e.BookingID, e.Range)
}

func (e *BookedRangeError) Unwrap() error {
	return e.Err
}

// NewBookedRangeError wraps sentinel with the blocking conflict
func NewBookedRangeError(sentinel error, c Conflict) error {
	return &BookedRangeError{Err: sentinel, BookingID: c.BookingID, Range: c.Range}
}
