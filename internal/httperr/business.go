package httperr

import "errors"

// Business codes shared by the use cases and the HTTP layer.
const (
	CodeInvalidRequest = "invalid_request"
	CodeBarberNotFound = "barber_not_found"
	CodeClosedDay      = "closed_day"
	CodeOutsideHours   = "outside_hours"
	CodeSlotTaken      = "slot_taken"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode returns the code of a BusinessError in err's chain.
func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}

// StoreError hides a persistence failure behind a stable code.
// Error() never includes the cause; Unwrap exposes it for logging.
type StoreError struct {
	Code  string
	cause error
}

func (e StoreError) Error() string {
	return e.Code
}

func (e StoreError) Unwrap() error {
	return e.cause
}

func ErrStore(code string, cause error) error {
	return StoreError{Code: code, cause: cause}
}

func IsStore(err error) bool {
	var se StoreError
	return errors.As(err, &se)
}

// Cause returns the wrapped store failure, or err itself. Log this, never
// send it to a client.
func Cause(err error) error {
	var se StoreError
	if errors.As(err, &se) && se.cause != nil {
		return se.cause
	}
	return err
}
