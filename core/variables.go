package core

import "sort"

// Variables holds the values assigned during a session.
//
// Access is single threaded: one driver owns a session at a time and nested
// script calls run synchronously on the same goroutine.
type Variables struct {
	values map[string]interface{}
}

// NewVariables creates an empty variable store.
func NewVariables() *Variables {
	return &Variables{}
}

// Set assigns value to name, replacing any previous value.
func (v *Variables) Set(name string, value interface{}) {
	if v.values == nil {
		v.values = make(map[string]interface{})
	}
	v.values[name] = value
}

// Get looks up a variable. A variable holding nil, such as the result of a
// command that returned nothing, is reported as absent.
func (v *Variables) Get(name string) (interface{}, bool) {
	val, ok := v.values[name]
	if !ok || val == nil {
		return nil, false
	}
	return val, true
}

// Names returns the sorted names of all assigned variables.
func (v *Variables) Names() []string {
	var out []string
	for k := range v.values {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
