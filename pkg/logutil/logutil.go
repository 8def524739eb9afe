// Package logutil provides a registry of loggers that can be redirected as a
// group. Loggers are silent until SetOutput or SetOutputFile is called.
package logutil

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

var (
	mu      sync.Mutex
	out     io.Writer = io.Discard
	outFile *os.File
	loggers []*log.Logger
)

// GetLogger gets a logger with the given prefix. The logger writes to the
// output configured by SetOutput or SetOutputFile.
func GetLogger(prefix string) *log.Logger {
	mu.Lock()
	defer mu.Unlock()
	logger := log.New(out, prefix, log.LstdFlags)
	loggers = append(loggers, logger)
	return logger
}

// SetOutput redirects the output of all loggers, past and future, to the
// given writer.
func SetOutput(newOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	closeOutFile()
	out = newOut
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
}

// SetOutputFile is like SetOutput, but opens the named file for appending,
// creating it if needed. An empty name silences all loggers.
func SetOutputFile(fname string) error {
	if fname == "" {
		SetOutput(io.Discard)
		return nil
	}
	file, err := os.OpenFile(fname, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %q: %w", fname, err)
	}
	mu.Lock()
	defer mu.Unlock()
	closeOutFile()
	outFile = file
	out = file
	for _, logger := range loggers {
		logger.SetOutput(out)
	}
	return nil
}

func closeOutFile() {
	if outFile != nil {
		outFile.Close()
		outFile = nil
	}
}
