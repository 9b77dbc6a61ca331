package core

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func nopInvoke(interface{}, Args) (interface{}, error) {
	return nil, nil
}

func TestNewRegistry_order(t *testing.T) {
	r, err := NewRegistry([]*Descriptor{
		{Name: "zeta", Invoke: nopInvoke},
		{Name: "alpha", Invoke: nopInvoke},
		{Name: "mid", Invoke: nopInvoke},
	}, nil)

	assert.Nil(t, err)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, r.Names())
	assert.Equal(t, 3, r.Len())
}

func TestNewRegistry_duplicateKeepsLast(t *testing.T) {
	var logs bytes.Buffer
	logger := log.New(&logs)

	first := &Descriptor{Name: "dup", Description: "first", Invoke: nopInvoke}
	second := &Descriptor{Name: "dup", Description: "second", Invoke: nopInvoke}

	r, err := NewRegistry([]*Descriptor{first, {Name: "other", Invoke: nopInvoke}, second}, logger)
	assert.Nil(t, err)

	d, ok := r.Lookup("dup")
	assert.True(t, ok)
	assert.Equal(t, "second", d.Description)
	assert.Equal(t, []string{"dup", "other"}, r.Names())
	assert.Contains(t, logs.String(), "command registered twice")
}

func TestNewRegistry_invalid(t *testing.T) {
	cases := map[string]*Descriptor{
		"no-name":    {Invoke: nopInvoke},
		"space-name": {Name: "two words", Invoke: nopInvoke},
		"equals":     {Name: "a=b", Invoke: nopInvoke},
		"no-invoke":  {Name: "cmd"},
		"bad-kind": {Name: "cmd", Invoke: nopInvoke, Params: []ParameterSpec{
			{Keys: []string{"-x"}, Kind: "complex"},
		}},
		"no-keys": {Name: "cmd", Invoke: nopInvoke, Params: []ParameterSpec{
			{Kind: KindString},
		}},
		"shared-key": {Name: "cmd", Invoke: nopInvoke, Params: []ParameterSpec{
			{Keys: []string{"-x", "--ex"}, Kind: KindString},
			{Keys: []string{"--ex"}, Kind: KindInteger},
		}},
		"owner-without-constructor": {Name: "cmd", Invoke: nopInvoke, Owner: &Owner{Name: "o"}},
	}

	for tn, d := range cases {
		t.Run(tn, func(t *testing.T) {
			_, err := NewRegistry([]*Descriptor{d}, nil)
			assert.Error(t, err)
		})
	}
}

func TestRegistry_Search(t *testing.T) {
	r, err := NewRegistry([]*Descriptor{
		{Name: "add", Invoke: nopInvoke},
		{Name: "address", Invoke: nopInvoke},
		{Name: "print-all", Invoke: nopInvoke},
	}, nil)
	assert.Nil(t, err)

	var names []string
	for _, d := range r.Search("add") {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"add", "address"}, names)
	assert.Empty(t, r.Search("zzz"))
}

func TestRegistry_Suggest(t *testing.T) {
	r, err := NewRegistry([]*Descriptor{
		{Name: "add", Invoke: nopInvoke},
		{Name: "echo", Invoke: nopInvoke},
	}, nil)
	assert.Nil(t, err)

	assert.Equal(t, "add", r.Suggest("ad"))
	assert.Equal(t, "echo", r.Suggest("ecoh"))
	assert.Equal(t, "", r.Suggest("add"))
	assert.Equal(t, "", r.Suggest("completely-different"))
}
