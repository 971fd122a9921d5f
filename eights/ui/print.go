package ui

import (
	"fmt"
	"io"
	"strings"
	"time"
)

func fprintfln(w io.Writer, delay time.Duration, format string, args ...interface{}) {
	fprintln(w, delay, fmt.Sprintf(format, args...))
}

func fprintln(w io.Writer, delay time.Duration, text string) {
	fmt.Fprint(w, text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(w)
	}
	if delay > 0 {
		time.Sleep(delay)
	}
}
