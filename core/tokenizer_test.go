package core

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ExampleTokenize() {
	fmt.Printf("%q\n", Tokenize(`add -x 2 -t "hello world"`))

	// Output: ["add" "-x" "2" "-t" "'hello world'"]
}

func ExampleParseLine() {
	parsed, _ := ParseLine(`sum = add -x 2 -y 3`)

	fmt.Printf("target: %q\n", parsed.Target)
	fmt.Printf("command: %q\n", parsed.Command)
	fmt.Printf("args: %q\n", parsed.Args)

	// Output: target: "sum"
	// command: "add"
	// args: ["-x" "2" "-y" "3"]
}

func TestStripComments(t *testing.T) {
	cases := map[string]struct {
		line     string
		expected string
		wantErr  bool
	}{
		"no-comment":        {line: `print x`, expected: `print x`},
		"trailing-hash":     {line: `print x # show x`, expected: `print x `},
		"trailing-bang":     {line: `print x ! show x`, expected: `print x `},
		"whole-line":        {line: `# print x`, expected: ``},
		"whole-line-bang":   {line: `!print x`, expected: ``},
		"quoted-hash":       {line: `echo -t "a # b"`, expected: `echo -t "a # b"`},
		"quoted-then-trail": {line: `echo -t "a # b" # c`, expected: `echo -t "a # b" `},
		"unclosed":          {line: `echo -t "open`, wantErr: true},
		"unclosed-comment":  {line: `echo # "open`, wantErr: true},
		"leading-unclosed":  {line: `# "open`, expected: ``},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			actual, err := StripComments(tc.line)
			if tc.wantErr {
				var syntaxErr *SyntaxError
				assert.ErrorAs(t, err, &syntaxErr)
				assert.Equal(t, "Unclosed string.", err.Error())
				return
			}

			assert.Nil(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestStripComments_keepsQuotedText(t *testing.T) {
	for _, quoted := range []string{"a # b", "!!", "x=y # z", "#"} {
		line := fmt.Sprintf(`echo -t "%s" # trailing`, quoted)

		stripped, err := StripComments(line)
		assert.Nil(t, err)
		assert.True(t, strings.Contains(stripped, `"`+quoted+`"`), "lost quoted text in %q", stripped)
	}
}

func TestParseLine(t *testing.T) {
	cases := map[string]struct {
		line     string
		expected *ParsedLine
	}{
		"command": {
			line:     `print a b`,
			expected: &ParsedLine{Command: "print", Args: []string{"a", "b"}},
		},
		"assignment": {
			line:     `sum = add -x 2`,
			expected: &ParsedLine{Target: "sum", Command: "add", Args: []string{"-x", "2"}},
		},
		"target-whitespace-removed": {
			line:     `my var=print a`,
			expected: &ParsedLine{Target: "myvar", Command: "print", Args: []string{"a"}},
		},
		"quoted-equals": {
			line:     `echo -t "a=b"`,
			expected: &ParsedLine{Command: "echo", Args: []string{"-t", "'a=b'"}},
		},
		"literal": {
			line:     `s = "two words"`,
			expected: &ParsedLine{Target: "s", Command: "'two words'", Args: []string{}},
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			actual, err := ParseLine(tc.line)

			assert.Nil(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestParseLine_errors(t *testing.T) {
	cases := map[string]string{
		"= add":  "Missing variable name before '='.",
		"x =":    "Missing command.",
		"x =   ": "Missing command.",
	}

	for line, msg := range cases {
		t.Run(line, func(t *testing.T) {
			_, err := ParseLine(line)

			var syntaxErr *SyntaxError
			assert.ErrorAs(t, err, &syntaxErr)
			assert.EqualError(t, err, msg)
		})
	}
}

func TestPrepareLine(t *testing.T) {
	line, err := PrepareLine("   print a   # comment  ")
	assert.Nil(t, err)
	assert.Equal(t, "print a", line)

	line, err = PrepareLine("   ")
	assert.Nil(t, err)
	assert.Equal(t, "", line)

	line, err = PrepareLine("  # only a comment")
	assert.Nil(t, err)
	assert.Equal(t, "", line)
}
