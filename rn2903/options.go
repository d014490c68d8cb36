package rn2903

import "time"

// Config holds the driver configuration.
type Config struct {
	// Model is the expected version banner prefix, checked at
	// construction ("RN2903" or "RN2483")
	Model string

	// ReadTimeout is the maximum wait for the immediate response line
	// of a transaction
	ReadTimeout time.Duration

	// WindowTimeout is the maximum wait for the second-phase event
	// line of radio rx/tx operations (the device-side receive or
	// transmit window)
	WindowTimeout time.Duration

	// CommandDelay is an optional settle delay between writing a
	// command and reading its response
	CommandDelay time.Duration

	// Logger is used for logging operations (optional)
	Logger Logger
}

// defaultConfig returns the default configuration. The read timeout
// matches the module's factory serial settings; the window timeout
// covers the longest radio receive window the driver waits on by
// default.
func defaultConfig() Config {
	return Config{
		Model:         "RN2903",
		ReadTimeout:   time.Second,
		WindowTimeout: 30 * time.Second,
	}
}

// Option is a functional option for configuring the Transceiver.
type Option func(*Config)

// WithModel sets the expected version banner prefix.
// Use "RN2483" for the 433/868 MHz variant of the module family.
//
// Example:
//
//	txvr, err := rn2903.New(port, rn2903.WithModel("RN2483"))
func WithModel(model string) Option {
	return func(c *Config) {
		if model != "" {
			c.Model = model
		}
	}
}

// WithReadTimeout sets the maximum wait for a transaction's immediate
// response line.
//
// Example:
//
//	txvr, err := rn2903.New(port, rn2903.WithReadTimeout(2*time.Second))
func WithReadTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		if timeout > 0 {
			c.ReadTimeout = timeout
		}
	}
}

// WithWindowTimeout sets the maximum wait for the asynchronous second
// line of radio receive and transmit operations. Continuous receive
// (window 0) may need a much longer timeout than the default.
//
// Example:
//
//	txvr, err := rn2903.New(port, rn2903.WithWindowTimeout(5*time.Minute))
func WithWindowTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		if timeout > 0 {
			c.WindowTimeout = timeout
		}
	}
}

// WithCommandDelay sets a settle delay between writing a command and
// reading its response. The module needs roughly 12ms to start
// answering; transports with their own buffering usually don't need
// this.
//
// Example:
//
//	txvr, err := rn2903.New(port, rn2903.WithCommandDelay(12*time.Millisecond))
func WithCommandDelay(delay time.Duration) Option {
	return func(c *Config) {
		if delay >= 0 {
			c.CommandDelay = delay
		}
	}
}

// WithLogger sets a logger for driver operations.
//
// Example:
//
//	txvr, err := rn2903.New(port, rn2903.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
