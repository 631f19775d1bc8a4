package app

// errorLog suppresses repeats of the same per-frame error so a broken
// draw call is logged once rather than every frame.
type errorLog struct {
	last string
}

// changed reports whether err should be logged: it is non-nil and differs
// from the previous frame's error. A nil err clears the history.
func (l *errorLog) changed(err error) bool {
	if err == nil {
		l.last = ""
		return false
	}
	msg := err.Error()
	if msg == l.last {
		return false
	}
	l.last = msg
	return true
}
