// Package punchwindow decides whether a wall-clock instant falls inside the
// daily punch-in window. The window is defined purely by local hour and
// minute in a fixed-offset zone, so 09:45:59 is still inside a window that
// ends at 09:45. Evaluation is pure; callers poll it as often as they like.
package punchwindow

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type Window struct {
	start int // minutes since local midnight, inclusive
	end   int // minutes since local midnight, inclusive
	loc   *time.Location
	label string
}

// Status reports the outcome of evaluating the window at one instant.
// Field names follow the check-in client's time-status payload.
type Status struct {
	Allowed     bool   `json:"isPunchInAllowed"`
	Message     string `json:"message"`
	CurrentTime string `json:"currentTime"`
	Timezone    string `json:"timezone"`
}

// New builds a Window from "HH:MM" boundaries and a UTC offset such as
// "+05:30" or "-03:00". The label names the zone in status payloads.
func New(start, end, utcOffset, label string) (Window, error) {
	startMin, err := parseClock(start)
	if err != nil {
		return Window{}, fmt.Errorf("invalid window start %q: %w", start, err)
	}
	endMin, err := parseClock(end)
	if err != nil {
		return Window{}, fmt.Errorf("invalid window end %q: %w", end, err)
	}
	if endMin < startMin {
		return Window{}, fmt.Errorf("window end %s is before start %s", end, start)
	}
	offsetSec, err := parseOffset(utcOffset)
	if err != nil {
		return Window{}, fmt.Errorf("invalid UTC offset %q: %w", utcOffset, err)
	}

	return Window{
		start: startMin,
		end:   endMin,
		loc:   time.FixedZone(label, offsetSec),
		label: label,
	}, nil
}

// Location returns the fixed-offset zone the window is evaluated in.
func (w Window) Location() *time.Location {
	return w.loc
}

// Evaluate reports whether at falls inside the window, with a status
// message describing the before, inside, or after state.
func (w Window) Evaluate(at time.Time) Status {
	local := at.In(w.loc)
	current := local.Hour()*60 + local.Minute()
	currentClock := local.Format("15:04:05")

	status := Status{
		CurrentTime: currentClock,
		Timezone:    w.label,
	}

	switch {
	case current < w.start:
		status.Message = fmt.Sprintf("Punch-in opens at %s, current time is %s", formatClock(w.start), currentClock)
	case current <= w.end:
		status.Allowed = true
		status.Message = fmt.Sprintf("Punch-in closes at %s, current time is %s", formatClock(w.end), currentClock)
	default:
		status.Message = fmt.Sprintf("Punch-in window has closed, current time is %s", currentClock)
	}

	return status
}

func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

func parseOffset(s string) (int, error) {
	sign := 1
	switch {
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	case strings.HasPrefix(s, "-"):
		sign = -1
		s = s[1:]
	}

	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("expected HH:MM")
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, err
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, err
	}
	if hours < 0 || hours > 14 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("offset out of range")
	}

	return sign * (hours*3600 + minutes*60), nil
}
