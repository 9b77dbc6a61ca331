package core

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// InvokeFunc runs a command. owner is the command's owner instance, nil for
// commands without an owner, and args holds one value per declared parameter
// in declaration order.
type InvokeFunc func(owner interface{}, args Args) (interface{}, error)

// Owner identifies the object a group of commands runs against. A single
// instance is created per interpreter on first use and shared by every
// command with the same owner name.
type Owner struct {
	Name string                       `json:"name" validate:"required"`
	New  func() (interface{}, error) `json:"-" validate:"required"`
}

// ParameterSpec declares one parameter of a command.
type ParameterSpec struct {
	// Keys are the flag aliases that introduce the value, e.g. -x and --xvalue.
	Keys     []string `json:"keys" validate:"required,min=1,unique,dive,required,excludesall= "`
	Required bool     `json:"required"`
	Kind     Kind     `json:"kind" validate:"required,paramkind"`
	Help     string   `json:"help"`
}

// Descriptor holds the static metadata and invoker of a command.
type Descriptor struct {
	Name        string          `json:"name" validate:"required,excludesall= ="`
	Description string          `json:"description"`
	Owner       *Owner          `json:"owner"`
	Params      []ParameterSpec `json:"params" validate:"dive"`
	Invoke      InvokeFunc      `json:"-" validate:"required"`
}

// OwnerName returns the name of the command's owner or an empty string.
func (d *Descriptor) OwnerName() string {
	if d.Owner == nil {
		return ""
	}
	return d.Owner.Name
}

// hasKey reports whether token is a flag key of any parameter.
func (d *Descriptor) hasKey(token string) bool {
	for _, p := range d.Params {
		for _, k := range p.Keys {
			if k == token {
				return true
			}
		}
	}
	return false
}

// Validate checks the descriptor for basic semantic errors.
func (d *Descriptor) Validate() error {
	if err := descriptorValidator().Struct(d); err != nil {
		return fmt.Errorf("invalid command %q: %w", d.Name, err)
	}
	return nil
}

func descriptorValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	validate.RegisterValidation("paramkind", func(fl validator.FieldLevel) bool {
		return Kind(fl.Field().String()).Valid()
	})
	validate.RegisterStructValidation(uniqueFlagKeys, Descriptor{})
	return validate
}

// uniqueFlagKeys rejects descriptors where two parameters share a flag key.
func uniqueFlagKeys(sl validator.StructLevel) {
	d := sl.Current().Interface().(Descriptor)

	seen := make(map[string]bool)
	for _, p := range d.Params {
		for _, k := range p.Keys {
			if seen[k] {
				sl.ReportError(d.Params, "params", "Params", "uniquekeys", k)
				return
			}
			seen[k] = true
		}
	}
}

// Args are the bound parameter values passed to an InvokeFunc.
type Args []interface{}

// IsSet returns true if the parameter at i was given.
func (a Args) IsSet(i int) bool {
	return i >= 0 && i < len(a) && a[i] != nil
}

// String returns the string parameter at i, or "" if unset.
func (a Args) String(i int) string {
	if !a.IsSet(i) {
		return ""
	}
	if s, ok := a[i].(string); ok {
		return s
	}
	return fmt.Sprint(a[i])
}

// Int returns the integer parameter at i, or 0 if unset.
func (a Args) Int(i int) int {
	v, _ := a.get(i).(int)
	return v
}

// Int64 returns the long parameter at i, or 0 if unset.
func (a Args) Int64(i int) int64 {
	v, _ := a.get(i).(int64)
	return v
}

// Float64 returns the double parameter at i, or 0 if unset.
func (a Args) Float64(i int) float64 {
	v, _ := a.get(i).(float64)
	return v
}

// Bool returns the boolean parameter at i, or false if unset.
func (a Args) Bool(i int) bool {
	v, _ := a.get(i).(bool)
	return v
}

func (a Args) get(i int) interface{} {
	if !a.IsSet(i) {
		return nil
	}
	return a[i]
}
