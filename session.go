package calc

import (
	"math"
	"strconv"
	"strings"
)

// Session holds the state a calculator keeps between evaluations: the last
// answer and the options to evaluate with. The zero Session evaluates with
// default options and has no answer. It is not safe to use a Session
// concurrently.
type Session struct {
	opts []Option
	ans  float64
	has  bool
}

// NewSession creates a session that evaluates with the given options.
func NewSession(opts ...Option) *Session {
	return &Session{opts: append([]Option(nil), opts...)}
}

// Eval evaluates a display string. If evaluation succeeds, the result becomes
// the session's answer. Otherwise, including when there is nothing to
// evaluate, the session is unchanged.
func (s *Session) Eval(display string) (float64, error) {
	r, err := Evaluate(display, s.opts...)
	if err != nil {
		return 0, err
	}
	s.ans, s.has = r, true
	return r, nil
}

// Answer returns the last answer. ok is false if there has been no successful
// evaluation since the session was created or cleared.
func (s *Session) Answer() (ans float64, ok bool) {
	return s.ans, s.has
}

// Clear forgets the last answer.
func (s *Session) Clear() {
	s.ans, s.has = 0, false
}

// Splice puts the last answer into a display string, the way pressing an
// answer key would: it replaces an empty or zero display and is appended to
// any other. Infinite and NaN answers can't be typed, so with one of those or
// with no answer, the display is returned unchanged.
func (s *Session) Splice(display string) string {
	if !s.has || math.IsInf(s.ans, 0) || math.IsNaN(s.ans) {
		return display
	}
	a := strconv.FormatFloat(s.ans, 'f', -1, 64)
	if t := strings.TrimSpace(display); t == "" || t == "0" {
		return a
	}
	return display + a
}
