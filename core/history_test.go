package core

import (
	"fmt"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistory_ExportRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "history.txt", []byte("stale contents\nmore\nlines\n"), 0644))

	history := NewHistory()
	history.Record("a = 1")
	history.Record("print a")
	require.NoError(t, history.Export(fs, "history.txt"))

	contents, err := afero.ReadFile(fs, "history.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"a = 1", "print a"}, strings.Split(strings.TrimSuffix(string(contents), "\n"), "\n"))
}

func TestHistory_ExportUnwritable(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())

	err := NewHistory().Export(fs, "history.txt")

	var ioErr *IOError
	assert.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "write", ioErr.Op)
}

func TestHistory_LinesIsCopy(t *testing.T) {
	history := NewHistory()
	history.Record("a")

	lines := history.Lines()
	lines[0] = "changed"

	assert.Equal(t, []string{"a"}, history.Lines())
}

func ExampleVariables() {
	vars := NewVariables()
	vars.Set("b", "two")
	vars.Set("a", 1)
	vars.Set("empty", nil)

	value, ok := vars.Get("a")
	fmt.Println(value, ok)
	_, ok = vars.Get("empty")
	fmt.Println(ok)
	fmt.Println(vars.Names())

	// Output: 1 true
	// false
	// [a b empty]
}
