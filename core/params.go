package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the declared type of a parameter.
type Kind string

const (
	KindString  Kind = "string"
	KindInteger Kind = "integer"
	KindLong    Kind = "long"
	KindDouble  Kind = "double"
	KindBoolean Kind = "boolean"
)

type coerceFunc func(value interface{}) (interface{}, error)

var coercers = map[Kind]coerceFunc{
	KindString:  coerceString,
	KindInteger: coerceInteger,
	KindLong:    coerceLong,
	KindDouble:  coerceDouble,
	KindBoolean: coerceBoolean,
}

// Valid returns true if the kind has a coercion.
func (k Kind) Valid() bool {
	_, ok := coercers[k]
	return ok
}

// Coerce converts value into the Go type of the kind: string, int, int64,
// float64 or bool.
func (k Kind) Coerce(value interface{}) (interface{}, error) {
	coerce, ok := coercers[k]
	if !ok {
		return nil, &CoercionError{Value: value, Kind: k, Err: fmt.Errorf("unsupported kind")}
	}
	return coerce(value)
}

func coerceString(value interface{}) (interface{}, error) {
	if s, ok := value.(string); ok {
		return s, nil
	}
	return fmt.Sprint(value), nil
}

func coerceInteger(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case bool, float32, float64:
		return nil, &CoercionError{Value: value, Kind: KindInteger}
	}

	parsed, err := strconv.ParseInt(fmt.Sprint(value), 10, 32)
	if err != nil {
		return nil, &CoercionError{Value: value, Kind: KindInteger, Err: err}
	}
	return int(parsed), nil
}

func coerceLong(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case bool, float32, float64:
		return nil, &CoercionError{Value: value, Kind: KindLong}
	}

	parsed, err := strconv.ParseInt(fmt.Sprint(value), 10, 64)
	if err != nil {
		return nil, &CoercionError{Value: value, Kind: KindLong, Err: err}
	}
	return parsed, nil
}

func coerceDouble(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case bool:
		return nil, &CoercionError{Value: value, Kind: KindDouble}
	}

	text := strings.TrimSpace(fmt.Sprint(value))
	if isNumericLiteral(text) {
		// Drop the f/d type suffix, the regex guarantees hex values carry a
		// p exponent so the suffix can't be a hex digit.
		text = strings.TrimRight(text, "fFdD")
	}

	parsed, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, &CoercionError{Value: value, Kind: KindDouble, Err: err}
	}
	return parsed, nil
}

func coerceBoolean(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		if isBooleanLiteral(v) {
			return v == "true", nil
		}
	}
	return nil, &CoercionError{Value: value, Kind: KindBoolean}
}

// Bind resolves the arguments of a command against its parameter specs.
//
// Values are returned in parameter declaration order regardless of the order the
// flags were given in; optional parameters that weren't given are nil. Tokens
// that no parameter consumed are returned as leftovers. All missing required
// parameters are reported together in a single MissingParametersError.
func Bind(args []string, specs []ParameterSpec, vars *Variables) ([]interface{}, []string, error) {
	remaining := append([]string(nil), args...)
	values := make([]interface{}, 0, len(specs))
	var missing [][]string

	for _, spec := range specs {
		keyIndex := indexOfAnyKey(remaining, spec.Keys)

		switch {
		case keyIndex >= 0:
			if keyIndex+1 >= len(remaining) {
				return nil, remaining, &ArgumentError{Msg: "Missing argument for the flag " + formatKeys(spec.Keys)}
			}

			value, err := resolveValue(remaining[keyIndex+1], spec.Kind, vars)
			if err != nil {
				return nil, remaining, err
			}
			values = append(values, value)
			remaining = append(remaining[:keyIndex], remaining[keyIndex+2:]...)

		case spec.Required:
			missing = append(missing, spec.Keys)

		default:
			values = append(values, nil)
		}
	}

	if len(missing) > 0 {
		return nil, remaining, &MissingParametersError{Keys: missing}
	}

	return values, remaining, nil
}

// indexOfAnyKey finds the first occurrence of a key, trying keys in order.
func indexOfAnyKey(args []string, keys []string) int {
	for _, key := range keys {
		for i, arg := range args {
			if arg == key {
				return i
			}
		}
	}
	return -1
}

// resolveValue turns a value token into a typed value: 'literals' and
// numbers are used as written, true and false are booleans and anything else
// refers to a variable.
func resolveValue(token string, kind Kind, vars *Variables) (interface{}, error) {
	switch {
	case isStringLiteral(token):
		return kind.Coerce(unquoteLiteral(token))
	case isNumericLiteral(token):
		return kind.Coerce(token)
	case isBooleanLiteral(token):
		return kind.Coerce(token == "true")
	}

	stored, ok := vars.Get(token)
	if !ok {
		return nil, &ArgumentError{Msg: fmt.Sprintf("Variable %s not found.", token)}
	}
	return kind.Coerce(stored)
}

// Unrecognized formats warnings for arguments that no parameter consumed.
// Leftovers are reported as flag/value pairs; a trailing unpaired token is
// reported on its own.
func Unrecognized(leftover []string) []string {
	var out []string
	for i := 0; i < len(leftover); i += 2 {
		if i+1 < len(leftover) {
			out = append(out, fmt.Sprintf("Unrecognized parameter: %s %s", leftover[i], leftover[i+1]))
		} else {
			out = append(out, fmt.Sprintf("Unrecognized parameter: %s", leftover[i]))
		}
	}
	return out
}
