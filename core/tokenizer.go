package core

import (
	"strings"
)

// ParsedLine is a single tokenized instruction.
type ParsedLine struct {
	// Target is the variable receiving the result, empty if the line is not
	// an assignment.
	Target string
	// Command is the first word of the instruction.
	Command string
	// Args holds the remaining words in order.
	Args []string
}

// HasTarget returns true if the line assigns its result to a variable.
func (p *ParsedLine) HasTarget() bool {
	return p.Target != ""
}

// StripComments removes a trailing comment from the line. Comment symbols
// inside double quoted spans are kept. A line starting with a comment symbol
// becomes empty.
func StripComments(line string) (string, error) {
	var quotes []int
	var comments []int

	for i := 0; i < len(line); i++ {
		switch c := line[i]; {
		case c == '"':
			quotes = append(quotes, i)
		case isCommentSymbol(c):
			if i == 0 {
				return "", nil
			}
			comments = append(comments, i)
		}
	}

	if len(quotes)%2 != 0 {
		return "", &SyntaxError{Line: line, Msg: "Unclosed string."}
	}

	for _, idx := range comments {
		if !insideQuotes(quotes, idx) {
			return line[:idx], nil
		}
	}

	return line, nil
}

// insideQuotes checks whether idx falls strictly between a pair of quote
// positions.
func insideQuotes(quotes []int, idx int) bool {
	for j := 0; j+1 < len(quotes); j += 2 {
		if idx > quotes[j] && idx < quotes[j+1] {
			return true
		}
	}
	return false
}

// assignmentIndex finds the first '=' outside of a quoted span or -1.
func assignmentIndex(line string) int {
	inQuote := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inQuote = !inQuote
		case '=':
			if !inQuote {
				return i
			}
		}
	}
	return -1
}

// Tokenize splits a command into words. Double quoted spans stay together
// and their double quotes are rewritten as single quotes so later stages
// treat them as explicit literals.
func Tokenize(text string) []string {
	var out []string
	for _, m := range tokenRegex.FindAllStringSubmatch(text, -1) {
		out = append(out, strings.ReplaceAll(m[1], `"`, `'`))
	}
	return out
}

// ParseLine splits a comment-free, non-blank line into an optional
// assignment target, a command and its arguments.
func ParseLine(line string) (*ParsedLine, error) {
	parsed := &ParsedLine{}
	commandText := strings.TrimSpace(line)

	if idx := assignmentIndex(line); idx >= 0 {
		parsed.Target = strings.Join(strings.Fields(line[:idx]), "")
		commandText = strings.TrimSpace(line[idx+1:])

		if parsed.Target == "" {
			return nil, &SyntaxError{Line: line, Msg: "Missing variable name before '='."}
		}
	}

	tokens := Tokenize(commandText)
	if len(tokens) == 0 {
		return nil, &SyntaxError{Line: line, Msg: "Missing command."}
	}

	parsed.Command = tokens[0]
	parsed.Args = tokens[1:]
	return parsed, nil
}

// PrepareLine trims and strips comments from a raw input line. The returned
// line is empty when there's nothing to run.
func PrepareLine(raw string) (string, error) {
	line, err := StripComments(strings.TrimSpace(raw))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
