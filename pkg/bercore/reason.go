// Package bercore holds the small failure vocabulary shared by the
// modulation, coding, channel and BER-driver packages, so a caller
// anywhere in the chain can report "why" without inventing a new
// magic number.
package bercore

import "fmt"

// Reason names one of the few ways a simulation call can legitimately
// refuse to run. Zero value ReasonNone means "no failure".
type Reason int

const (
	ReasonNone Reason = iota
	ReasonInvalidModulation
	ReasonInvalidRange
	ReasonInvalidInput
	ReasonUnderflow
	ReasonTrellisInconsistency
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonInvalidModulation:
		return "invalid modulation order"
	case ReasonInvalidRange:
		return "value outside supported range"
	case ReasonInvalidInput:
		return "invalid input"
	case ReasonUnderflow:
		return "decoded length underflow"
	case ReasonTrellisInconsistency:
		return "trellis table inconsistency"
	default:
		return "unknown reason"
	}
}

// Sentinel returns the single negative float used to report this
// reason across the procedural boundary. This is the consolidated
// replacement for the handful of undocumented negative magic numbers
// the original BER driver returned (-0.1, -0.15, -0.2, -0.25, -0.3,
// -1.0, -10.0-n): every caller outside this module now only ever has
// to compare against one of these five fixed values.
func (r Reason) Sentinel() float64 {
	switch r {
	case ReasonInvalidModulation:
		return -1.0
	case ReasonInvalidRange:
		return -2.0
	case ReasonInvalidInput:
		return -3.0
	case ReasonUnderflow:
		return -4.0
	case ReasonTrellisInconsistency:
		return -5.0
	default:
		return 0
	}
}

// SNRSentinel is the dedicated failure value for the SNR estimator,
// matching the spec's documented -999 boundary value rather than the
// generic Reason encoding used by the BER drivers.
const SNRSentinel = -999.0

// Error reports a Reason together with human-readable context. It
// implements error and supports errors.Is against the Reason values
// exposed by Is.
type Error struct {
	Reason  Reason
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Reason.String()
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

// Is lets errors.Is(err, &bercore.Error{Reason: bercore.ReasonInvalidInput})
// work against a *bercore.Error by comparing reasons directly — there's
// no need for a sentinel error value per reason when the reason itself
// already is a small comparable value.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Reason == other.Reason
}

// New builds an *Error for the given reason and formatted message.
func New(reason Reason, format string, args ...any) *Error {
	return &Error{Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// Sentinel is the reason carried by err, translated to its float
// encoding, for use at a float-returning procedural boundary. ok is
// false when err is nil or not a *Error, in which case the caller
// should treat the result as "not a known sentinel".
func Sentinel(err error) (value float64, ok bool) {
	var be *Error
	if err == nil {
		return 0, false
	}
	be, ok = err.(*Error)
	if !ok {
		return 0, false
	}
	return be.Reason.Sentinel(), true
}
