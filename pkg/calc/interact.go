package calc

import (
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"src.polyc.dev/pkg/sys"
)

// interact runs the calculator as a line-edited REPL on the terminal. Ctrl-C
// aborts the current input line; Ctrl-D ends the session. Aborted lines do
// not advance the line number.
func interact(fds [3]*os.File, cfg Config) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if cfg.HistoryFile != "" {
		if f, err := os.Open(cfg.HistoryFile); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
		defer func() {
			f, err := os.Create(cfg.HistoryFile)
			if err != nil {
				logger.Println("save history:", err)
				return
			}
			ln.WriteHistory(f)
			f.Close()
		}()
	}

	// Restore the terminal before dying on a termination signal.
	sigc := sys.NotifySignals(syscall.SIGTERM, syscall.SIGHUP)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(1)
	}()

	c := New(fds[1], fds[2])
	for {
		text, err := ln.Prompt(cfg.Prompt)
		if err == liner.ErrPromptAborted {
			fmt.Fprintln(fds[1])
			continue
		}
		if err != nil {
			// io.EOF on Ctrl-D, or the terminal went away.
			fmt.Fprintln(fds[1])
			return nil
		}
		c.ProcessLine(text)
		if strings.TrimSpace(text) != "" {
			ln.AppendHistory(text)
		}
	}
}
