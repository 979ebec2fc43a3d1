package core

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/automoto/barr/components"
)

// Script is a fixed input sequence for headless runs.
//
// The text is a list of steps separated by commas or whitespace. Each step
// is a set of held keys, L (left), R (right) and J (jump), or "-" for none,
// optionally followed by ":count" to hold them for that many frames:
//
//	R:90, RJ:1, R:40, -:30
//
// Jump counts as freshly pressed on the first frame of every run of frames
// that hold J.
type Script struct {
	frames []components.Controls
}

func ParseScript(text string) (*Script, error) {
	s := &Script{}
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	jumpHeld := false
	for _, field := range fields {
		keys, count, err := parseStep(field)
		if err != nil {
			return nil, err
		}
		for i := 0; i < count; i++ {
			c := keys
			c.JumpPressed = c.Jump && !jumpHeld
			jumpHeld = c.Jump
			s.frames = append(s.frames, c)
		}
	}
	return s, nil
}

func parseStep(field string) (components.Controls, int, error) {
	var c components.Controls
	keys, countText, hasCount := strings.Cut(field, ":")

	count := 1
	if hasCount {
		n, err := strconv.Atoi(countText)
		if err != nil || n < 0 {
			return c, 0, fmt.Errorf("script step %q: bad frame count", field)
		}
		count = n
	}

	if keys == "-" {
		return c, count, nil
	}
	if keys == "" {
		return c, 0, fmt.Errorf("script step %q: no keys", field)
	}
	for _, k := range strings.ToUpper(keys) {
		switch k {
		case 'L':
			c.Left = true
		case 'R':
			c.Right = true
		case 'J':
			c.Jump = true
		default:
			return c, 0, fmt.Errorf("script step %q: unknown key %q", field, k)
		}
	}
	return c, count, nil
}

// Len is the number of scripted frames.
func (s *Script) Len() int {
	return len(s.frames)
}

// Controls returns the input for a frame. Frames past the end are idle.
func (s *Script) Controls(frame int) components.Controls {
	if frame < 0 || frame >= len(s.frames) {
		return components.Controls{}
	}
	return s.frames[frame]
}
