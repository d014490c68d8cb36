package rn2903

// Logger is an optional logging interface that can be provided to the
// driver. This allows integration with any logging framework.
//
// Example with logrus:
//
//	type LogrusLogger struct{ l *logrus.Logger }
//
//	func (l *LogrusLogger) Debug(msg string, kv ...interface{}) { l.l.Debug(append([]interface{}{msg}, kv...)...) }
//	func (l *LogrusLogger) Info(msg string, kv ...interface{})  { l.l.Info(append([]interface{}{msg}, kv...)...) }
//	func (l *LogrusLogger) Error(msg string, kv ...interface{}) { l.l.Error(append([]interface{}{msg}, kv...)...) }
//
//	txvr, err := rn2903.New(port, rn2903.WithLogger(&LogrusLogger{l: logrus.New()}))
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}

// logDebug logs a debug message if a logger is configured.
func (t *Transceiver) logDebug(msg string, keysAndValues ...interface{}) {
	if t.config.Logger != nil {
		t.config.Logger.Debug(msg, keysAndValues...)
	}
}

// logInfo logs an info message if a logger is configured.
func (t *Transceiver) logInfo(msg string, keysAndValues ...interface{}) {
	if t.config.Logger != nil {
		t.config.Logger.Info(msg, keysAndValues...)
	}
}
