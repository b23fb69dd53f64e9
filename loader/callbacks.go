package loader

import "time"

// Transfer phases reported through ProgressCallback.
const (
	// PhaseProbing is the chip revision probe before the transfer
	PhaseProbing = "probing"

	// PhaseFlashing is the block-by-block firmware transfer
	PhaseFlashing = "flashing"

	// PhaseComplete is reported once after the last block is acked
	PhaseComplete = "complete"
)

// Progress contains information about a running firmware transfer.
// Passed to ProgressCallback after every accepted block.
type Progress struct {
	// Phase is the current phase, one of the Phase* constants
	Phase string

	// Block is the number of blocks acknowledged so far
	Block int

	// SeqNum is the sequence number of the last acknowledged block
	SeqNum uint32

	// BytesWritten is the number of wire bytes sent so far,
	// excluding retransmissions
	BytesWritten int

	// ImageOffset is the image cursor position in bytes
	ImageOffset int

	// ImageSize is the total image size in bytes
	ImageSize int

	// Percentage is the completion percentage by image offset (0.0-100.0)
	Percentage float64

	// ElapsedTime is the time elapsed since the transfer started
	ElapsedTime time.Duration
}

// ProgressCallback is called after every accepted block to report
// progress. Implementations should return quickly; the callback runs on
// the transfer path between blocks.
//
// Example:
//
//	ldr := loader.New(device,
//	    loader.WithProgressCallback(func(p loader.Progress) {
//	        fmt.Printf("[%s] %.1f%% - block %d (seq %d)\n",
//	            p.Phase, p.Percentage, p.Block, p.SeqNum)
//	    }),
//	)
type ProgressCallback func(Progress)

// Logger is an optional logging interface that can be provided to the
// loader. This allows integration with any logging framework.
//
// Example with the standard log package:
//
//	type StdLogger struct{}
//	func (l *StdLogger) Debug(msg string, kv ...interface{}) { log.Println(msg, kv) }
//	func (l *StdLogger) Info(msg string, kv ...interface{})  { log.Println(msg, kv) }
//	func (l *StdLogger) Error(msg string, kv ...interface{}) { log.Println(msg, kv) }
//
//	ldr := loader.New(device, loader.WithLogger(&StdLogger{}))
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
