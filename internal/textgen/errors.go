package textgen

import "fmt"

// Kind classifies a gateway failure so callers can tell "credential invalid,
// retry is pointless" apart from "transient, may retry".
type Kind string

const (
	KindUnauthorized       Kind = "unauthorized"
	KindServiceUnavailable Kind = "service_unavailable"
	KindTimeout            Kind = "timeout"
	KindUnknown            Kind = "unknown"
)

// Error is a transport, auth or service failure reaching the relay.
type Error struct {
	Kind   Kind
	Status int
	Body   string
	cause  error
}

func (e *Error) Error() string {
	switch {
	case e.Status != 0:
		return fmt.Sprintf("textgen: %s (status %d): %s", e.Kind, e.Status, e.Body)
	case e.cause != nil:
		return fmt.Sprintf("textgen: %s: %v", e.Kind, e.cause)
	}
	return fmt.Sprintf("textgen: %s", e.Kind)
}

func (e *Error) Unwrap() error { return e.cause }
