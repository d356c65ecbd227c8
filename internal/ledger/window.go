package ledger

import (
	"fmt"
	"time"
)

// Window is a spend aggregation period ending now.
type Window string

const (
	WindowLast7Days  Window = "7d"
	WindowLast30Days Window = "30d"
	WindowAllTime    Window = "all"
)

// ParseWindow accepts "7d", "30d" and "all". An empty string means all time.
func ParseWindow(s string) (Window, error) {
	switch Window(s) {
	case WindowLast7Days, WindowLast30Days, WindowAllTime:
		return Window(s), nil
	case "":
		return WindowAllTime, nil
	}
	return "", fmt.Errorf("unknown window %q", s)
}

// Since returns the inclusive lower bound of the window relative to now, or
// nil for all time. Bounds start at local midnight: "last 7 days" is
// [todayStart - 6 days, now].
func (w Window) Since(now time.Time) *time.Time {
	var days int
	switch w {
	case WindowLast7Days:
		days = 6
	case WindowLast30Days:
		days = 29
	default:
		return nil
	}
	start := StartOfDay(now).AddDate(0, 0, -days)
	return &start
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfMonth returns midnight of the first day of t's calendar month.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}
