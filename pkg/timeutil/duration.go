package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Window is a relative span of calendar time such as "2w" or "1y3mo".
// Months and years are applied with time.AddDate and share its normalization.
type Window struct {
	Years  int
	Months int
	Days   int
}

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	windowUnits   = map[string]func(w *Window, n int){
		"d":      func(w *Window, n int) { w.Days += n },
		"day":    func(w *Window, n int) { w.Days += n },
		"days":   func(w *Window, n int) { w.Days += n },
		"w":      func(w *Window, n int) { w.Days += 7 * n },
		"wk":     func(w *Window, n int) { w.Days += 7 * n },
		"wks":    func(w *Window, n int) { w.Days += 7 * n },
		"week":   func(w *Window, n int) { w.Days += 7 * n },
		"weeks":  func(w *Window, n int) { w.Days += 7 * n },
		"mo":     func(w *Window, n int) { w.Months += n },
		"month":  func(w *Window, n int) { w.Months += n },
		"months": func(w *Window, n int) { w.Months += n },
		"y":      func(w *Window, n int) { w.Years += n },
		"yr":     func(w *Window, n int) { w.Years += n },
		"year":   func(w *Window, n int) { w.Years += n },
		"years":  func(w *Window, n int) { w.Years += n },
	}
)

// ParseWindow parses "3d", "2w", "1mo" or "1y2w" style windows.
func ParseWindow(input string) (Window, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		return Window{}, fmt.Errorf("empty window")
	}

	var w Window
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return Window{}, fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}
		n, err := strconv.Atoi(matches[1])
		if err != nil {
			return Window{}, fmt.Errorf("invalid window value %q: %w", matches[1], err)
		}
		add, ok := windowUnits[matches[2]]
		if !ok {
			return Window{}, fmt.Errorf("unsupported window unit %q", matches[2])
		}
		add(&w, n)
		remaining = remaining[len(matches[0]):]
	}

	if w == (Window{}) {
		return Window{}, fmt.Errorf("window must be greater than zero")
	}
	return w, nil
}

// Since returns the start of the day the window reaches back to from now.
// A window of one day covers yesterday and today.
func (w Window) Since(now time.Time) time.Time {
	return StartOfDay(now).AddDate(-w.Years, -w.Months, -w.Days)
}

// String renders the window with y, mo, w and d tokens.
func (w Window) String() string {
	var b strings.Builder
	if w.Years > 0 {
		fmt.Fprintf(&b, "%dy", w.Years)
	}
	if w.Months > 0 {
		fmt.Fprintf(&b, "%dmo", w.Months)
	}
	if weeks := w.Days / 7; weeks > 0 {
		fmt.Fprintf(&b, "%dw", weeks)
	}
	if days := w.Days % 7; days > 0 {
		fmt.Fprintf(&b, "%dd", days)
	}
	if b.Len() == 0 {
		return "0d"
	}
	return b.String()
}
