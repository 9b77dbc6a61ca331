package core

import (
	"errors"
	"fmt"

	"github.com/josephlewis42/goosecli/core/logger"
)

// Dispatch resolves a parsed line and runs it.
//
// Registered commands take precedence over the built-ins. A line that assigns
// a literal stores it directly. Unknown commands are reported but aren't an
// error.
func (i *Interpreter) Dispatch(p *ParsedLine) (interface{}, error) {
	if p.HasTarget() && i.isReserved(p.Target) {
		return nil, &ReservedKeywordError{Name: p.Target}
	}

	if d, ok := i.registry.Lookup(p.Command); ok {
		return i.runCommand(d, p)
	}

	switch p.Command {
	case PrintKeyword:
		i.printVariables(p.Args)
		return nil, nil
	case HelpKeyword:
		i.help(p.Args)
		return nil, nil
	case CallKeyword:
		return nil, i.callScript(p.Args)
	case WriteScriptKeyword:
		return nil, i.writeScript(p.Args)
	}

	if p.HasTarget() && isLiteral(p.Command) {
		value := literalValue(p.Command)
		i.session.Variables.Set(p.Target, value)
		i.recordEvent(logger.EventAssignment, map[string]interface{}{
			"target": p.Target,
		})
		return value, nil
	}

	fmt.Fprintf(i.out, "Command '%s' not found.\n", p.Command)
	if suggestion := i.registry.Suggest(p.Command); suggestion != "" {
		fmt.Fprintf(i.out, "Did you mean '%s'?\n", suggestion)
	}
	i.recordEvent(logger.EventUnknownCommand, map[string]interface{}{
		"command": p.Command,
	})
	return nil, nil
}

// isReserved returns true for names that can't be assigned to.
func (i *Interpreter) isReserved(name string) bool {
	return i.registry.Has(name) ||
		IsExitKeyword(name) ||
		name == PrintKeyword ||
		name == HelpKeyword
}

// literalValue converts a literal token into the value stored for it.
// Numbers keep their text so the consuming parameter decides their type.
func literalValue(token string) interface{} {
	switch {
	case isStringLiteral(token):
		return unquoteLiteral(token)
	case isBooleanLiteral(token):
		return token == "true"
	default:
		return token
	}
}

// runCommand binds the arguments of a registered command, invokes it and
// stores the result if the line has a target.
func (i *Interpreter) runCommand(d *Descriptor, p *ParsedLine) (interface{}, error) {
	if len(p.Args) > 0 && !d.hasKey(p.Args[0]) {
		switch p.Args[0] {
		case "-h", "--help":
			fmt.Fprint(i.out, GenerateHelp(d))
			return nil, nil
		case "-d", "--description":
			fmt.Fprintln(i.out, d.Description)
			return nil, nil
		}
	}

	result, err := i.bindAndInvoke(d, p.Args)
	if err != nil {
		i.recordEvent(logger.EventInvalidInvocation, map[string]interface{}{
			"command": d.Name,
			"error":   err.Error(),
		})
		return nil, err
	}

	if p.HasTarget() {
		i.session.Variables.Set(p.Target, result)
	}
	i.recordEvent(logger.EventRunCommand, map[string]interface{}{
		"command": d.Name,
		"target":  p.Target,
	})
	return result, nil
}

func (i *Interpreter) bindAndInvoke(d *Descriptor, args []string) (interface{}, error) {
	values, leftover, err := Bind(args, d.Params, i.session.Variables)

	var missing *MissingParametersError
	if err == nil || errors.As(err, &missing) {
		for _, warning := range Unrecognized(leftover) {
			fmt.Fprintln(i.out, i.colors.Sprint(colorYellow, warning))
		}
	}
	if missing != nil {
		missing.Command = d.Name
	}
	if err != nil {
		return nil, err
	}

	owner, err := i.owners.instance(d.Owner)
	if err != nil {
		return nil, err
	}

	i.logger.Debug("invoking command", "command", d.Name, "owner", d.OwnerName(), "args", values)
	return i.invoke(d, owner, values)
}
