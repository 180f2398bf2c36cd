package logger

// Logger is the structured logging surface the rest of the application
// depends on. Entries carry the emitting component plus arbitrary fields.
type Logger interface {
	Debug(component, message string, fields map[string]interface{})
	Info(component, message string, fields map[string]interface{})
	Warning(component, message string, fields map[string]interface{})
	Error(component string, err error, fields map[string]interface{})
}
