package core

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	cases := map[string]struct {
		err      error
		expected string
	}{
		"nil": {nil, ""},
		"syntax": {
			&SyntaxError{Msg: "Unclosed string."},
			"Unclosed string.",
		},
		"reserved": {
			&ReservedKeywordError{Name: "exit"},
			"exit is a reserved keyword",
		},
		"invocation-without-frame": {
			&InvocationError{Command: "fail", Err: fmt.Errorf("boom")},
			"Something went wrong in called method: fail\nCaused by boom",
		},
		"invocation-with-frame": {
			&InvocationError{Command: "fail", Frame: "run(cmd.go:12)", Err: fmt.Errorf("boom")},
			"Something went wrong in called method: run(cmd.go:12)\nCaused by boom",
		},
		"owner": {
			&OwnerError{Owner: "db", Err: fmt.Errorf("offline")},
			"Could not create instance of requested owner \"db\".\nCaused by offline",
		},
		"coercion": {
			&CoercionError{Value: "yes", Kind: KindBoolean},
			"Unable to cast value, \nUnable to convert \"yes\" to boolean",
		},
		"replay": {
			&ReplayError{File: "f", Line: 2, Err: &ArgumentError{Msg: "No output file given"}},
			"f:2: No output file given",
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			assert.Equal(t, tc.expected, Translate(tc.err))
		})
	}
}

func explode() {
	var m map[string]int
	m["boom"] = 1
}

func TestInvoke_panicFrame(t *testing.T) {
	ti := newTestInterpreter(t)
	d := &Descriptor{
		Name: "explode",
		Invoke: func(interface{}, Args) (interface{}, error) {
			explode()
			return nil, nil
		},
	}

	_, err := ti.invoke(d, nil, nil)

	var invocationErr *InvocationError
	assert.ErrorAs(t, err, &invocationErr)
	assert.True(t, strings.HasPrefix(invocationErr.Frame, "explode(errors_test.go:"), invocationErr.Frame)
	assert.Contains(t, invocationErr.Err.Error(), "assignment to entry in nil map")
}

func TestInvoke_errorFrame(t *testing.T) {
	ti := newTestInterpreter(t)
	d := &Descriptor{
		Name: "stacked",
		Invoke: func(interface{}, Args) (interface{}, error) {
			return nil, errors.Wrap(errors.New("root cause"), "context")
		},
	}

	_, err := ti.invoke(d, nil, nil)

	var invocationErr *InvocationError
	assert.ErrorAs(t, err, &invocationErr)
	assert.True(t, strings.HasPrefix(invocationErr.Frame, "TestInvoke_errorFrame.func1(errors_test.go:"), invocationErr.Frame)
	assert.Equal(t, "context: root cause", invocationErr.Err.Error())
}
