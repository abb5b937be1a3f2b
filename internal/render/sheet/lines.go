package sheet

import "io"

// lines writes newline-terminated output and keeps the first error.
type lines struct {
	w   io.Writer
	err error
}

func (l *lines) println(s string) {
	if l.err != nil {
		return
	}
	_, l.err = io.WriteString(l.w, s+"\n")
}
