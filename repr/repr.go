// Package repr renders values for diagnostic output.
package repr

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

// Formatter renders a value as text.
type Formatter func(v any) string

// GoSyntax renders v using its Go-syntax representation (%#v).
// Strings come out quoted and nil as <nil>.
func GoSyntax(v any) string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%#v", v)
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSON renders v as compact JSON. Values that cannot be encoded fall back to GoSyntax.
func JSON(v any) string {
	s, err := json.MarshalToString(v)
	if err != nil {
		return GoSyntax(v)
	}
	return s
}

// Default is the formatter used when none is configured.
var Default Formatter = GoSyntax
