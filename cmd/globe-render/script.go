package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// action is one scripted pointer event applied before a frame is drawn
type action struct {
	frame int
	leave bool
	x, y  float64
}

// script collects -move and -leave flags in frame order
type script struct {
	actions []action
}

// moveFlag parses "x,y@frame"
type moveFlag struct{ s *script }

func (f moveFlag) String() string { return "" }

func (f moveFlag) Set(v string) error {
	pos, frame, err := splitFrame(v)
	if err != nil {
		return err
	}
	xs, ys, ok := strings.Cut(pos, ",")
	if !ok {
		return fmt.Errorf("move %q: want x,y@frame", v)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return fmt.Errorf("move %q: %w", v, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return fmt.Errorf("move %q: %w", v, err)
	}
	f.s.add(action{frame: frame, x: x, y: y})
	return nil
}

// leaveFlag parses "@frame" or "frame"
type leaveFlag struct{ s *script }

func (f leaveFlag) String() string { return "" }

func (f leaveFlag) Set(v string) error {
	if !strings.Contains(v, "@") {
		v = "@" + v
	}
	pos, frame, err := splitFrame(v)
	if err != nil {
		return err
	}
	if pos != "" {
		return fmt.Errorf("leave %q: want @frame", v)
	}
	f.s.add(action{frame: frame, leave: true})
	return nil
}

func splitFrame(v string) (string, int, error) {
	pos, fs, ok := strings.Cut(v, "@")
	if !ok {
		return "", 0, fmt.Errorf("%q: missing @frame", v)
	}
	frame, err := strconv.Atoi(strings.TrimSpace(fs))
	if err != nil || frame < 0 {
		return "", 0, fmt.Errorf("%q: bad frame number", v)
	}
	return strings.TrimSpace(pos), frame, nil
}

func (s *script) add(a action) {
	s.actions = append(s.actions, a)
	sort.SliceStable(s.actions, func(i, j int) bool { return s.actions[i].frame < s.actions[j].frame })
}

// due returns the actions for frame, in flag order
func (s *script) due(frame int) []action {
	lo := sort.Search(len(s.actions), func(i int) bool { return s.actions[i].frame >= frame })
	hi := lo
	for hi < len(s.actions) && s.actions[hi].frame == frame {
		hi++
	}
	return s.actions[lo:hi]
}
