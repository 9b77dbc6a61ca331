// Package logger is a standardized event logging framework for the
// interpreter. Events are stored as newline delimited JSON objects.
package logger
