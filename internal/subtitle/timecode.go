package subtitle

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// a non-negative duration with millisecond resolution
type TimeCode time.Duration

func (t TimeCode) Duration() time.Duration {
	return time.Duration(t)
}

// formats the time code as HH:MM:SS,mmm
func (t TimeCode) SRT() string {
	d := time.Duration(t)
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}

// formats the time code as HH:MM:SS.mmm, hours always emitted
func (t TimeCode) VTT() string {
	d := time.Duration(t)
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	millis := int(d.Milliseconds()) % 1000

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}

// parses an SRT timestamp of the form HH:MM:SS,mmm
func ParseSRTTimeCode(s string) (TimeCode, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 3 {
		return 0, fmt.Errorf("%w: %q", ErrFormat, s)
	}

	secField, msField, found := strings.Cut(parts[2], ",")
	if !found {
		return 0, fmt.Errorf("%w: %q missing millisecond separator", ErrFormat, s)
	}

	return buildTimeCode(s, parts[0], parts[1], secField, msField)
}

// parses a VTT timestamp of the form MM:SS.mmm or HH:MM:SS.mmm.
// The fractional part may carry fewer than 3 digits; it is right-padded
// with zeros and truncated to millisecond precision.
func ParseVTTTimeCode(s string) (TimeCode, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")

	var hourField, minField, secField string
	switch len(parts) {
	case 2:
		hourField, minField, secField = "0", parts[0], parts[1]
	case 3:
		hourField, minField, secField = parts[0], parts[1], parts[2]
	default:
		return 0, fmt.Errorf("%w: %q", ErrFormat, s)
	}

	sec, frac, found := strings.Cut(secField, ".")
	if !found || frac == "" {
		return 0, fmt.Errorf("%w: %q missing fractional seconds", ErrFormat, s)
	}
	if len(frac) < 3 {
		frac += strings.Repeat("0", 3-len(frac))
	}
	frac = frac[:3]

	return buildTimeCode(s, hourField, minField, sec, frac)
}

func buildTimeCode(raw, hours, minutes, seconds, millis string) (TimeCode, error) {
	h, err := parseField(hours)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrFormat, raw)
	}
	m, err := parseField(minutes)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrFormat, raw)
	}
	s, err := parseField(seconds)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrFormat, raw)
	}
	ms, err := parseField(millis)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrFormat, raw)
	}

	d := time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(ms)*time.Millisecond

	return TimeCode(d), nil
}

func parseField(field string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative component %d", n)
	}
	return n, nil
}
