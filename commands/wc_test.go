package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWcCount(t *testing.T) {
	count := countText("Hello,\nworld !")

	assert.Equal(t, 1, count.lines)
	assert.Equal(t, 3, count.words)
	assert.Equal(t, 14, count.bytes)
	assert.Equal(t, 14, count.chars)
}

func TestWcCount_multibyte(t *testing.T) {
	count := countText("héllo")

	assert.Equal(t, 6, count.bytes)
	assert.Equal(t, 5, count.chars)
	assert.Equal(t, 1, count.words)
}

func TestWc(t *testing.T) {
	cases := goldenTestSuite{
		"bytes": {Lines: []string{`n = wc -t "one two  three"`, `print n`}},
		"chars": {Lines: []string{`wc -m true -t "héllo"`}},
	}

	cases.Run(t)
}
