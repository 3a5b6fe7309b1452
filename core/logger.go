package core

// Logger is any service that can log application events.
// args may hold errors, maps of extra data and the Caller that triggered the event.
type Logger interface {
	Enable(enabled bool)
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Fatal(msg string, args ...interface{})
}

// Caller identifies the client behind a logged event.
type Caller struct {
	ID        string
	RemoteIP  string
	UserAgent string
}
