// Package dateutil provides token-based date and time formats.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDateFormat indicates an invalid date format string.
var ErrInvalidDateFormat = errors.New("invalid date format")

// MaxDateFormatLength limits format string length to prevent abuse.
const MaxDateFormatLength = 50

// DefaultTimestampFormat names generated worksheet files, e.g. 20251019_143005.
const DefaultTimestampFormat = "YYYYMMDD_HHmmss"

// dateTokens maps user-friendly tokens to Go time format components.
// Ordered by length descending for greedy matching. Tokens are case-sensitive:
// MM is the month, mm the minute.
var dateTokens = []struct {
	token string
	goFmt string
}{
	{"YYYY", "2006"},
	{"MMMM", "January"},
	{"MMM", "Jan"},
	{"YY", "06"},
	{"MM", "01"},
	{"DD", "02"},
	{"HH", "15"},
	{"mm", "04"},
	{"ss", "05"},
	{"M", "1"},
	{"D", "2"},
}

// TimestampPresets provides named shortcuts for common timestamp formats.
var TimestampPresets = map[string]string{
	"compact": DefaultTimestampFormat,
	"iso":     "YYYY-MM-DD_HH-mm-ss",
	"date":    "YYYY-MM-DD",
}

// segment is either a Go layout fragment for one token or literal text.
type segment struct {
	text   string
	layout bool
}

// parseSegments splits format into tokens and literal runs.
// Tokens: YYYY, YY, MMMM, MMM, MM, M, DD, D, HH, mm, ss
// Bracketed text is literal: [T] is the letter T. Other non-token
// characters are literal too.
func parseSegments(format string) ([]segment, error) {
	if format == "" {
		return nil, fmt.Errorf("%w: format cannot be empty", ErrInvalidDateFormat)
	}
	if len(format) > MaxDateFormatLength {
		return nil, fmt.Errorf("%w: format exceeds %d characters", ErrInvalidDateFormat, MaxDateFormatLength)
	}

	var segs []segment
	literal := func(text string) {
		if n := len(segs); n > 0 && !segs[n-1].layout {
			segs[n-1].text += text
			return
		}
		segs = append(segs, segment{text: text})
	}

	i := 0
	for i < len(format) {
		if format[i] == '[' {
			end := strings.Index(format[i+1:], "]")
			if end == -1 {
				return nil, fmt.Errorf("%w: unclosed bracket at position %d", ErrInvalidDateFormat, i)
			}
			literal(format[i+1 : i+1+end])
			i += end + 2
			continue
		}

		matched := false
		for _, t := range dateTokens {
			if strings.HasPrefix(format[i:], t.token) {
				segs = append(segs, segment{text: t.goFmt, layout: true})
				i += len(t.token)
				matched = true
				break
			}
		}

		if !matched {
			literal(format[i : i+1])
			i++
		}
	}
	return segs, nil
}

// ParseDateFormat converts a user-friendly format string to Go's time format.
// Literal text is copied into the layout as is, so a literal that happens to
// be a Go layout element ("Mon", "PM", digits) is reinterpreted by
// time.Format. FormatTimestamp does not have this problem.
// Returns ErrInvalidDateFormat if the format is empty, too long, or has unclosed brackets.
func ParseDateFormat(format string) (string, error) {
	segs, err := parseSegments(format)
	if err != nil {
		return "", err
	}
	var result strings.Builder
	for _, seg := range segs {
		result.WriteString(seg.text)
	}
	return result.String(), nil
}

// ResolveTimestampFormat expands a preset name (case-insensitive) or returns
// the format unchanged. An empty value yields DefaultTimestampFormat.
func ResolveTimestampFormat(format string) string {
	if format == "" {
		return DefaultTimestampFormat
	}
	if preset, ok := TimestampPresets[strings.ToLower(format)]; ok {
		return preset
	}
	return format
}

// FormatTimestamp renders t using a token format or preset name.
// Only tokens go through time.Format; literal text is written verbatim.
func FormatTimestamp(format string, t time.Time) (string, error) {
	segs, err := parseSegments(ResolveTimestampFormat(format))
	if err != nil {
		return "", err
	}
	var result strings.Builder
	for _, seg := range segs {
		if seg.layout {
			result.WriteString(t.Format(seg.text))
		} else {
			result.WriteString(seg.text)
		}
	}
	return result.String(), nil
}
