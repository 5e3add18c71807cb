package i

// Logger is the component logger handed to services.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}
