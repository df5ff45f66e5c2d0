package failure

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	KindRoomNotFound       = "room_not_found"
	KindRoomNotAvailable   = "room_not_available"
	KindBookingNotFound    = "booking_not_found"
	KindInvalidInput       = "invalid_input"
	KindStorageUnavailable = "storage_unavailable"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
// Kind, when set, identifies the failure for errors.Is regardless of the message.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Kind    string `json:"kind,omitempty"`
}

var InvalidPageParam = &Failure{Code: http.StatusBadRequest, Message: "invalid page parameter", Kind: KindInvalidInput}
var InvalidLimitParam = &Failure{Code: http.StatusBadRequest, Message: "invalid limit parameter", Kind: KindInvalidInput}

var (
	ErrRoomNotFound       = &Failure{Code: http.StatusNotFound, Message: "room not found", Kind: KindRoomNotFound}
	ErrRoomNotAvailable   = &Failure{Code: http.StatusConflict, Message: "room not available", Kind: KindRoomNotAvailable}
	ErrBookingNotFound    = &Failure{Code: http.StatusNotFound, Message: "booking not found", Kind: KindBookingNotFound}
	ErrInvalidInput       = &Failure{Code: http.StatusBadRequest, Message: "invalid input", Kind: KindInvalidInput}
	ErrStorageUnavailable = &Failure{Code: http.StatusServiceUnavailable, Message: "storage unavailable", Kind: KindStorageUnavailable}
)

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// Is reports whether target is a Failure of the same kind.
func (e *Failure) Is(target error) bool {
	t, ok := target.(*Failure)
	if !ok || t.Kind == "" {
		return false
	}

	return e.Kind == t.Kind
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// Unimplemented returns a new Failure with code for unimplemented method.
func Unimplemented(methodName string) error {
	return &Failure{
		Code:    http.StatusNotImplemented,
		Message: methodName,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

func RoomNotFound(roomID string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: fmt.Sprintf("room %s not found", roomID),
		Kind:    KindRoomNotFound,
	}
}

func RoomNotAvailable(roomID string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: fmt.Sprintf("room %s is not available", roomID),
		Kind:    KindRoomNotAvailable,
	}
}

func BookingNotFound(bookingID string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: fmt.Sprintf("booking %s not found", bookingID),
		Kind:    KindBookingNotFound,
	}
}

// InvalidInput returns a new Failure for malformed ids, prices or dates.
func InvalidInput(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
		Kind:    KindInvalidInput,
	}
}

// StorageUnavailable returns a new Failure for a table that could not be read or written.
func StorageUnavailable(err error) error {
	if err == nil {
		return nil
	}

	return &Failure{
		Code:    http.StatusServiceUnavailable,
		Message: "storage unavailable: " + err.Error(),
		Kind:    KindStorageUnavailable,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
