package flight

import "errors"

// Input errors raised when parsing selections from outer surfaces.
var (
	// ErrUnknownAttribute indicates an attribute name outside the five known ones.
	ErrUnknownAttribute = errors.New("flight: unknown attribute")

	// ErrUnknownValue indicates a value not in the attribute's option list.
	ErrUnknownValue = errors.New("flight: unknown attribute value")
)

// ValueError wraps ErrUnknownValue with the offending attribute and value.
type ValueError struct {
	Attribute Attribute
	Value     string
}

func (e *ValueError) Error() string {
	return "flight: " + e.Attribute.String() + ": unknown value " + quote(e.Value) +
		" (want one of " + joinOptions(e.Attribute) + ")"
}

func (e *ValueError) Unwrap() error {
	return ErrUnknownValue
}
