package loader

import (
	"time"

	"github.com/avastar-tools/go-usb8xxx/protocol"
)

// Config holds the loader configuration.
type Config struct {
	// ProgressCallback is called after every accepted block (optional)
	ProgressCallback ProgressCallback

	// Logger is used for logging operations (optional)
	Logger Logger

	// Retries is the transport retry budget per block. The budget is
	// shared across send and receive failures for a block and refilled
	// after every accepted block.
	Retries int

	// RetryDelay is the sleep between transport retry attempts
	RetryDelay time.Duration

	// RxBufferSize is the receive buffer size for sync responses
	RxBufferSize int
}

// defaultConfig returns the default configuration, matching the timings
// and budgets of the Marvell reference driver.
func defaultConfig() Config {
	return Config{
		Retries:      protocol.MaxFWRetry,
		RetryDelay:   protocol.RetryDelay,
		RxBufferSize: protocol.FWDnldRxBufSize,
	}
}

// Option is a functional option for configuring the Loader.
type Option func(*Config)

// WithProgressCallback sets a callback function to track transfer progress.
//
// Example:
//
//	ldr := loader.New(device,
//	    loader.WithProgressCallback(func(p loader.Progress) {
//	        fmt.Printf("%.1f%% complete\n", p.Percentage)
//	    }),
//	)
func WithProgressCallback(callback ProgressCallback) Option {
	return func(c *Config) {
		c.ProgressCallback = callback
	}
}

// WithLogger sets a logger for the loader operations.
//
// Example:
//
//	ldr := loader.New(device, loader.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithRetries sets the transport retry budget per block.
// Default is protocol.MaxFWRetry.
//
// Example:
//
//	ldr := loader.New(device, loader.WithRetries(5))
func WithRetries(retries int) Option {
	return func(c *Config) {
		if retries > 0 {
			c.Retries = retries
		}
	}
}

// WithRetryDelay sets the sleep between transport retry attempts.
// Default is protocol.RetryDelay.
//
// Example:
//
//	ldr := loader.New(device, loader.WithRetryDelay(50*time.Millisecond))
func WithRetryDelay(delay time.Duration) Option {
	return func(c *Config) {
		if delay >= 0 {
			c.RetryDelay = delay
		}
	}
}

// WithRxBufferSize sets the receive buffer size for sync responses.
// Default is protocol.FWDnldRxBufSize.
func WithRxBufferSize(size int) Option {
	return func(c *Config) {
		if size >= protocol.SyncHeaderSize {
			c.RxBufferSize = size
		}
	}
}
