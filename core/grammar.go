package core

import (
	"regexp"
)

const (
	PrintKeyword       = "print"
	HelpKeyword        = "help"
	CallKeyword        = "call"
	WriteScriptKeyword = "write-script"

	// helpLineFormat lays out one parameter row of a command's help.
	helpLineFormat = "%-30s%-20s%-15s%s\n"
)

var (
	// ExitKeywords stop the interactive loop or a script replay.
	ExitKeywords = []string{"q", "Q", "exit"}

	commentSymbols = []byte{'#', '!'}

	// tokenRegex splits a command into words, keeping "quoted spans" whole.
	tokenRegex = regexp.MustCompile(`([^"]\S*|".+?")\s*`)

	// literalRegex matches an explicit 'string literal'.
	literalRegex = regexp.MustCompile(`^'(.*?)'$`)

	// fpRegex accepts anything a permissive float parser would: signed
	// decimal or hex floats, NaN, Infinity, an exponent and a type suffix.
	fpRegex = regexp.MustCompile(
		`^[\x00-\x20]*[+-]?(` +
			`NaN|` +
			`Infinity|` +
			`(((` + digits + `(\.)?(` + digits + `?)(` + exponent + `)?)|` +
			`(\.(` + digits + `)(` + exponent + `)?)|` +
			`((` +
			`(0[xX]` + hexDigits + `(\.)?)|` +
			`(0[xX]` + hexDigits + `?(\.)` + hexDigits + `)` +
			`)[pP][+-]?` + digits + `))` +
			`[fFdD]?))` +
			`[\x00-\x20]*$`)
)

const (
	digits    = `([0-9]+)`
	hexDigits = `([0-9a-fA-F]+)`
	exponent  = `[eE][+-]?` + digits
)

// IsExitKeyword returns true if the line asks the driver to stop.
func IsExitKeyword(line string) bool {
	for _, kw := range ExitKeywords {
		if line == kw {
			return true
		}
	}
	return false
}

func isCommentSymbol(c byte) bool {
	for _, sym := range commentSymbols {
		if c == sym {
			return true
		}
	}
	return false
}

// isStringLiteral reports whether the token was written as 'literal'.
func isStringLiteral(token string) bool {
	return literalRegex.MatchString(token)
}

func isNumericLiteral(token string) bool {
	return fpRegex.MatchString(token)
}

func isBooleanLiteral(token string) bool {
	return token == "true" || token == "false"
}

// isLiteral reports whether the token can be stored without running a command.
func isLiteral(token string) bool {
	return isStringLiteral(token) || isNumericLiteral(token) || isBooleanLiteral(token)
}

// unquoteLiteral removes the quote markers from a 'literal'.
func unquoteLiteral(token string) string {
	if m := literalRegex.FindStringSubmatch(token); m != nil {
		return m[1]
	}
	return token
}
