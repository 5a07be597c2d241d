package modis

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// GranuleDate extracts the observation date from a granule archive URL.
// The LP DAAC archive stores granules under a YYYY.MM.DD directory:
//
//	.../MOD09GA.005/2013.08.03/MOD09GA.A2013215.h10v03.005.2013217100343.hdf
func GranuleDate(rawURL string) (time.Time, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing granule URL: %w", err)
	}
	for _, seg := range strings.Split(u.Path, "/") {
		if t, err := time.ParseInLocation("2006.01.02", seg, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("no YYYY.MM.DD path segment in %q", rawURL)
}

// Range is an inclusive integer interval.
type Range struct {
	Min int
	Max int
}

// ParseRange parses a hyphen-separated range such as "2000-2005". A bare
// value without a hyphen denotes the degenerate range covering just that
// value.
func ParseRange(s string) (Range, error) {
	lo, hi, found := strings.Cut(s, "-")
	if !found {
		hi = lo
	}
	min, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return Range{}, fmt.Errorf("invalid range %q: %w", s, err)
	}
	max, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return Range{}, fmt.Errorf("invalid range %q: %w", s, err)
	}
	return Range{Min: min, Max: max}, nil
}

// Contains reports whether v falls inside the inclusive range.
func (r Range) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// FilterYearDOY keeps the URLs whose granule year and day-of-year both fall
// inside the given inclusive ranges. Input order is preserved. URLs without
// a parseable observation date are dropped.
func FilterYearDOY(urls []string, years, doys Range) []string {
	var kept []string
	for _, u := range urls {
		d, err := GranuleDate(u)
		if err != nil {
			continue
		}
		if years.Contains(d.Year()) && doys.Contains(d.YearDay()) {
			kept = append(kept, u)
		}
	}
	return kept
}
