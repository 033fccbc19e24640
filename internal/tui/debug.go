package tui

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Optional debug logging to a file (the TUI owns the terminal, so stderr is
// not usable while running). Enabled by setting SHOPFRONT_TUI_DEBUG_LOG to a
// path.
func debugLogPath() string {
	return strings.TrimSpace(os.Getenv("SHOPFRONT_TUI_DEBUG_LOG"))
}

func debugLogf(format string, args ...any) {
	path := debugLogPath()
	if path == "" {
		return
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	fmt.Fprintf(f, "%s "+format+"\n", append([]any{time.Now().Format(time.RFC3339)}, args...)...)
}
