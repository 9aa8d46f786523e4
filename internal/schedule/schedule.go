// Package schedule parses and renders class timetables such as
// "월 18:00~20:00, 수 19:00~21:00".
package schedule

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	ErrUnknownDay = errors.New("unknown weekday")
	ErrBadTime    = errors.New("time must be HH:MM")
	ErrTimeOrder  = errors.New("start must be before end")
	ErrMalformed  = errors.New("malformed schedule segment")
)

// Days in display order, Monday first.
var Days = []string{"월", "화", "수", "목", "금", "토", "일"}

var dayIndex = func() map[string]int {
	m := make(map[string]int, len(Days))
	for i, d := range Days {
		m[d] = i
	}
	return m
}()

// Segment: one or more slash-joined days, then a start~end range.
var segmentRe = regexp.MustCompile(`^([월화수목금토일](?:\s*/\s*[월화수목금토일])*)\s+(\d{1,2}:\d{2})\s*~\s*(\d{1,2}:\d{2})$`)

type Entry struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

func (e Entry) String() string {
	return fmt.Sprintf("%s %s~%s", e.Day, e.Start, e.End)
}

// Parse reads a comma separated schedule. The legacy "월/수/금 18:00~20:00"
// form expands into one entry per day. Segments that do not parse are skipped.
func Parse(s string) []Entry {
	entries, _ := parse(s)
	return entries
}

// ParseStrict is Parse but fails on the first malformed segment.
func ParseStrict(s string) ([]Entry, error) {
	entries, bad := parse(s)
	if bad != "" {
		return nil, fmt.Errorf("%w: %q", ErrMalformed, bad)
	}
	return entries, nil
}

func parse(s string) ([]Entry, string) {
	entries := []Entry{}
	var firstBad string

	for _, seg := range strings.Split(s, ",") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}

		m := segmentRe.FindStringSubmatch(seg)
		if m == nil {
			if firstBad == "" {
				firstBad = seg
			}
			continue
		}

		start, okStart := normalizeTime(m[2])
		end, okEnd := normalizeTime(m[3])
		if !okStart || !okEnd {
			if firstBad == "" {
				firstBad = seg
			}
			continue
		}

		for _, day := range strings.Split(m[1], "/") {
			entries = append(entries, Entry{Day: strings.TrimSpace(day), Start: start, End: end})
		}
	}

	sortEntries(entries)
	return entries, firstBad
}

// Build renders entries in canonical order as "월 18:00~20:00, 수 19:00~21:00".
func Build(entries []Entry) string {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sortEntries(sorted)

	parts := make([]string, len(sorted))
	for i, e := range sorted {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}

// Validate checks every entry has a known day, HH:MM times and start < end.
func Validate(entries []Entry) error {
	for _, e := range entries {
		if _, ok := dayIndex[e.Day]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownDay, e.Day)
		}
		start, ok := minutes(e.Start)
		if !ok {
			return fmt.Errorf("%w: %q", ErrBadTime, e.Start)
		}
		end, ok := minutes(e.End)
		if !ok {
			return fmt.Errorf("%w: %q", ErrBadTime, e.End)
		}
		if start >= end {
			return fmt.Errorf("%w: %s", ErrTimeOrder, e)
		}
	}
	return nil
}

func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		di, dj := dayIndex[entries[i].Day], dayIndex[entries[j].Day]
		if di != dj {
			return di < dj
		}
		return entries[i].Start < entries[j].Start
	})
}

// normalizeTime zero-pads "9:00" to "09:00". Range checks are left to Validate.
func normalizeTime(s string) (string, bool) {
	h, m, ok := strings.Cut(s, ":")
	if !ok || len(m) != 2 {
		return "", false
	}
	if len(h) == 1 {
		h = "0" + h
	}
	return h + ":" + m, true
}

func minutes(s string) (int, bool) {
	if len(s) != 5 || s[2] != ':' {
		return 0, false
	}
	h, err := strconv.Atoi(s[:2])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(s[3:])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
