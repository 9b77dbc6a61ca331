package core

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// ownerCache holds one lazily created instance per owner name.
type ownerCache struct {
	instances map[string]interface{}
}

func newOwnerCache() *ownerCache {
	return &ownerCache{instances: make(map[string]interface{})}
}

// instance returns the shared instance for the owner, creating it on first
// use. Commands without an owner run against nil.
func (c *ownerCache) instance(owner *Owner) (interface{}, error) {
	if owner == nil {
		return nil, nil
	}
	if inst, ok := c.instances[owner.Name]; ok {
		return inst, nil
	}

	inst, err := owner.New()
	if err != nil {
		return nil, &OwnerError{Owner: owner.Name, Err: err}
	}
	c.instances[owner.Name] = inst
	return inst, nil
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// invoke calls the command, turning returned errors and panics into an
// InvocationError that points at the innermost frame of the failure.
func (i *Interpreter) invoke(d *Descriptor, owner interface{}, args Args) (result interface{}, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		cause, ok := r.(error)
		if !ok {
			cause = fmt.Errorf("%v", r)
		}
		i.logger.Debug("command panicked", "command", d.Name, "panic", r)
		result = nil
		err = &InvocationError{
			Command: d.Name,
			Frame:   panicFrame(errors.WithStack(cause)),
			Err:     cause,
		}
	}()

	result, err = d.Invoke(owner, args)
	if err != nil {
		return nil, &InvocationError{
			Command: d.Name,
			Frame:   innermostFrame(err),
			Err:     err,
		}
	}
	return result, nil
}

// innermostFrame returns the location an error was created at when the error
// carries a stack, or "" when it doesn't.
func innermostFrame(err error) string {
	var tracer stackTracer
	for e := err; e != nil; e = errors.Unwrap(e) {
		if t, ok := e.(stackTracer); ok {
			tracer = t
		}
	}
	if tracer == nil {
		return ""
	}

	trace := tracer.StackTrace()
	if len(trace) == 0 {
		return ""
	}
	return formatFrame(trace[0])
}

// panicFrame finds the frame that raised a panic in a stack captured while
// recovering from it.
func panicFrame(err error) string {
	tracer, ok := err.(stackTracer)
	if !ok {
		return ""
	}

	trace := tracer.StackTrace()
	for idx, frame := range trace {
		if frameFunc(frame) != "runtime.gopanic" {
			continue
		}
		for _, caller := range trace[idx+1:] {
			if !strings.HasPrefix(frameFunc(caller), "runtime.") {
				return formatFrame(caller)
			}
		}
	}
	return ""
}

func frameFunc(f errors.Frame) string {
	fn := runtime.FuncForPC(uintptr(f) - 1)
	if fn == nil {
		return "unknown"
	}
	return fn.Name()
}

// formatFrame renders a frame as function(file:line).
func formatFrame(f errors.Frame) string {
	return fmt.Sprintf("%n(%s:%d)", f, f, f)
}
