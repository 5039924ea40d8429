package core

// Logger is the minimal logging interface the renderer reports progress through
type Logger interface {
	Printf(format string, args ...interface{})
}
