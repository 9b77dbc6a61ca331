package core

import (
	"errors"
	"fmt"
	"strings"
)

// SyntaxError is returned for lines that can't be tokenized.
type SyntaxError struct {
	Line string
	Msg  string
}

func (err *SyntaxError) Error() string {
	return err.Msg
}

// ReservedKeywordError is returned when an assignment targets a command name
// or keyword.
type ReservedKeywordError struct {
	Name string
}

func (err *ReservedKeywordError) Error() string {
	return fmt.Sprintf("%s is a reserved keyword", err.Name)
}

// ArgumentError reports a bad argument: a flag without a value, an unknown
// variable reference or a built-in missing its options.
type ArgumentError struct {
	Msg string
}

func (err *ArgumentError) Error() string {
	return err.Msg
}

// MissingParametersError lists every required parameter that wasn't given.
type MissingParametersError struct {
	Command string
	Keys    [][]string
}

func (err *MissingParametersError) Error() string {
	var sb strings.Builder
	sb.WriteString("Please add parameter(s) with key(s): ")
	for _, keys := range err.Keys {
		sb.WriteString("\n\t- ")
		sb.WriteString(formatKeys(keys))
	}
	return sb.String()
}

// CoercionError is returned when a value can't be converted to the declared
// parameter kind.
type CoercionError struct {
	Value interface{}
	Kind  Kind
	Err   error
}

func (err *CoercionError) Error() string {
	if err.Err != nil {
		return fmt.Sprintf("Unable to convert %q to %s: %v", fmt.Sprint(err.Value), err.Kind, err.Err)
	}
	return fmt.Sprintf("Unable to convert %q to %s", fmt.Sprint(err.Value), err.Kind)
}

func (err *CoercionError) Unwrap() error {
	return err.Err
}

// OwnerError is returned when an owner instance can't be created.
type OwnerError struct {
	Owner string
	Err   error
}

func (err *OwnerError) Error() string {
	return fmt.Sprintf("Could not create instance of %q: %v", err.Owner, err.Err)
}

func (err *OwnerError) Unwrap() error {
	return err.Err
}

// InvocationError wraps a failure raised by a command's invoker.
type InvocationError struct {
	Command string
	// Frame is the innermost location the failure was raised from, if known.
	Frame string
	Err   error
}

func (err *InvocationError) Error() string {
	return fmt.Sprintf("command %q failed: %v", err.Command, err.Err)
}

func (err *InvocationError) Unwrap() error {
	return err.Err
}

// IOError is returned when a script or history file can't be accessed.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (err *IOError) Error() string {
	return fmt.Sprintf("could not %s %q: %v", err.Op, err.Path, err.Err)
}

func (err *IOError) Unwrap() error {
	return err.Err
}

// ReplayError aborts a script replay. The failing line has already been
// reported to the user when it's returned.
type ReplayError struct {
	File string
	Line int
	Text string
	Err  error
}

func (err *ReplayError) Error() string {
	return fmt.Sprintf("%s:%d: %v", err.File, err.Line, err.Err)
}

func (err *ReplayError) Unwrap() error {
	return err.Err
}

// Translate converts an error raised while running a line into the message
// shown to the user.
func Translate(err error) string {
	var (
		invocationErr *InvocationError
		ownerErr      *OwnerError
		coercionErr   *CoercionError
		ioErr         *IOError
	)

	switch {
	case err == nil:
		return ""
	case errors.As(err, &invocationErr):
		location := invocationErr.Frame
		if location == "" {
			location = invocationErr.Command
		}
		return fmt.Sprintf("Something went wrong in called method: %s\nCaused by %v", location, invocationErr.Err)
	case errors.As(err, &ownerErr):
		return fmt.Sprintf("Could not create instance of requested owner %q.\nCaused by %v", ownerErr.Owner, ownerErr.Err)
	case errors.As(err, &coercionErr):
		return "Unable to cast value, \n" + coercionErr.Error()
	case errors.As(err, &ioErr):
		return ioErr.Error()
	default:
		return err.Error()
	}
}

// formatKeys renders flag keys as a bracketed list, e.g. [-x, --xvalue].
func formatKeys(keys []string) string {
	return "[" + strings.Join(keys, ", ") + "]"
}
