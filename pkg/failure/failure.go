package failure

import (
	"errors"
	"fmt"
)

// Kind classifies a Failure so callers can branch without string matching.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalidSeat
	KindInvalidPhone
	KindInvalidShowtime
	KindConflict
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindInvalidSeat:
		return "invalid_seat"
	case KindInvalidPhone:
		return "invalid_phone"
	case KindInvalidShowtime:
		return "invalid_showtime"
	case KindConflict:
		return "conflict"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Failure is a domain error carrying a Kind and a user-facing message.
type Failure struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

// Sentinels for errors.Is. Matching is by Kind, not by message.
var (
	ErrInvalidSeat     = &Failure{Kind: KindInvalidSeat, Message: "invalid seat"}
	ErrInvalidPhone    = &Failure{Kind: KindInvalidPhone, Message: "invalid phone number"}
	ErrInvalidShowtime = &Failure{Kind: KindInvalidShowtime, Message: "invalid showtime"}
	ErrConflict        = &Failure{Kind: KindConflict, Message: "conflict"}
	ErrNotFound        = &Failure{Kind: KindNotFound, Message: "not found"}
)

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// Is reports whether target is a Failure of the same Kind.
func (e *Failure) Is(target error) bool {
	t, ok := target.(*Failure)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// InvalidSeat returns a new Failure for a seat outside the catalog.
func InvalidSeat(seat string) error {
	return &Failure{
		Kind:    KindInvalidSeat,
		Message: fmt.Sprintf("seat %q does not exist", seat),
	}
}

// InvalidSeatFromString returns a new Failure for seat input problems that are not about one seat.
func InvalidSeatFromString(msg string) error {
	return &Failure{
		Kind:    KindInvalidSeat,
		Message: msg,
	}
}

// InvalidPhone returns a new Failure for a malformed phone number.
func InvalidPhone(msg string) error {
	return &Failure{
		Kind:    KindInvalidPhone,
		Message: msg,
	}
}

func InvalidShowtime(msg string) error {
	return &Failure{
		Kind:    KindInvalidShowtime,
		Message: msg,
	}
}

// Conflict returns a new Failure for conflict situations.
func Conflict(msg string) error {
	return &Failure{
		Kind:    KindConflict,
		Message: msg,
	}
}

// NotFound returns a new Failure for a missing entity.
func NotFound(msg string) error {
	return &Failure{
		Kind:    KindNotFound,
		Message: msg,
	}
}

// InternalError returns a new Failure with message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Kind:    KindInternal,
			Message: err.Error(),
		}
	}

	return nil
}

// GetKind returns the Kind of the first Failure in err's chain.
func GetKind(err error) Kind {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Kind
	}

	return KindInternal
}

// IsDomain reports whether err carries a user-recoverable Kind.
func IsDomain(err error) bool {
	return err != nil && GetKind(err) != KindInternal
}
