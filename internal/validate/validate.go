// Package validate holds the shared request-field checks. Validation runs
// before any side effect; a failure terminates the handler.
package validate

import (
	"math"
	"strconv"

	"github.com/macosusesdk/automationd/internal/apierr"
)

// RequiredString rejects an empty required field.
func RequiredString(field, value string) error {
	if value == "" {
		return apierr.RequiredField(field)
	}
	return nil
}

func floatMeta(field string, v float64) map[string]string {
	return map[string]string{
		"field": field,
		"value": strconv.FormatFloat(v, 'g', -1, 64),
	}
}

// Coordinate rejects NaN and infinities.
func Coordinate(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return apierr.InvalidArgument(apierr.ReasonInvalidCoordinate,
			"coordinate must be finite: "+field, floatMeta(field, v))
	}
	return nil
}

// Dimension rejects non-finite or non-positive sizes.
func Dimension(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return apierr.InvalidArgument(apierr.ReasonInvalidDimension,
			"dimension must be finite and positive: "+field, floatMeta(field, v))
	}
	return nil
}

// NonNegative rejects non-finite or negative values (padding, durations).
func NonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return apierr.InvalidArgument(apierr.ReasonInvalidDimension,
			"value must be finite and non-negative: "+field, floatMeta(field, v))
	}
	return nil
}
