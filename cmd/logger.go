package cmd

import (
	"fmt"
	"log"
	"os"
)

// stderrLogger adapts the standard log package to the loader.Logger
// interface. Debug output is gated on the --verbose flag.
type stderrLogger struct {
	logger  *log.Logger
	verbose bool
}

func newStderrLogger(verbose bool) *stderrLogger {
	return &stderrLogger{
		logger:  log.New(os.Stderr, "", log.Ltime|log.Lmicroseconds),
		verbose: verbose,
	}
}

func (l *stderrLogger) Debug(msg string, kv ...interface{}) {
	if l.verbose {
		l.logger.Println(append([]interface{}{"DEBUG", msg}, formatPairs(kv)...)...)
	}
}

func (l *stderrLogger) Info(msg string, kv ...interface{}) {
	l.logger.Println(append([]interface{}{"INFO ", msg}, formatPairs(kv)...)...)
}

func (l *stderrLogger) Error(msg string, kv ...interface{}) {
	l.logger.Println(append([]interface{}{"ERROR", msg}, formatPairs(kv)...)...)
}

// formatPairs renders key-value pairs as key=value tokens.
func formatPairs(kv []interface{}) []interface{} {
	out := make([]interface{}, 0, (len(kv)+1)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, fmt.Sprintf("%v=%v", kv[i], kv[i+1]))
	}
	return out
}
