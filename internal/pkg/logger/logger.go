// Package logger provides the logging abstraction used across the service,
// with console and rotating-file implementations behind a factory.
package logger

// Logger defines the logging interface
type Logger interface {
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Panic(args ...interface{})
}
