package payload

import (
	"github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
)

// UnparseableError reports that a candidate could not be turned into any
// structured value even after the repair pass. Raw carries the full model
// response for diagnostics.
type UnparseableError struct {
	Raw string
}

func (e *UnparseableError) Error() string {
	return "payload: response is not parseable as JSON, even after repair"
}

// Parse attempts a strict parse of the candidate, falling back to a
// repair-then-reparse pass. raw is the original model response and is only
// used for error reporting.
func Parse(candidate, raw string) (any, error) {
	var v any
	if err := sonic.UnmarshalString(candidate, &v); err == nil {
		return v, nil
	}

	repaired := Repair(candidate)
	if err := sonic.UnmarshalString(repaired, &v); err != nil {
		log.Debug().Err(err).Str("candidate", candidate).Msg("repair pass did not yield valid JSON")
		return nil, &UnparseableError{Raw: raw}
	}
	return v, nil
}
