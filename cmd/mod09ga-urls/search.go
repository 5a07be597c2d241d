package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/cgoodale/echo-mod09ga/pkg/echo"
	"github.com/cgoodale/echo-mod09ga/pkg/modis"
)

var (
	startFlag = &cli.StringFlag{
		Name:    "start",
		Aliases: []string{"s"},
		Usage:   "start date in YYYYMMDD format (inclusive)",
	}
	endFlag = &cli.StringFlag{
		Name:    "end",
		Aliases: []string{"e"},
		Usage:   "end date in YYYYMMDD format (inclusive)",
	}
	yearsFlag = &cli.StringFlag{
		Name:    "years",
		Aliases: []string{"y"},
		Usage:   "range of years, hyphen separated, e.g. 2000-2005",
	}
	doysFlag = &cli.StringFlag{
		Name:    "doys",
		Aliases: []string{"d"},
		Usage:   "range of days of year, hyphen separated, e.g. 150-300",
	}
)

func searchFlags() []cli.Flag {
	return []cli.Flag{startFlag, endFlag, yearsFlag, doysFlag}
}

// searchArgs is the fully parsed query for one invocation. years and doys
// are nil unless both flags were given; when set they take the place of the
// start/end date bound.
type searchArgs struct {
	query echo.GranuleQuery
	years *modis.Range
	doys  *modis.Range
}

func parseSearchArgs(cmd *cli.Command) (*searchArgs, error) {
	if cmd.Args().Len() != 1 {
		return nil, fmt.Errorf("expected 1 argument: tile identifier in h##v## format, e.g. h11v03")
	}
	return buildSearchArgs(
		cmd.Args().First(),
		cmd.String(startFlag.Name),
		cmd.String(endFlag.Name),
		cmd.String(yearsFlag.Name),
		cmd.String(doysFlag.Name),
	)
}

// buildSearchArgs validates all inputs before any network call is made. An
// inverted start/end range is not an error here; it is forwarded to the
// catalog as given.
func buildSearchArgs(tileArg, start, end, years, doys string) (*searchArgs, error) {
	tile, err := modis.ParseTile(tileArg)
	if err != nil {
		return nil, err
	}

	args := &searchArgs{query: echo.GranuleQuery{Tile: tile}}

	if years != "" && doys != "" {
		yr, err := modis.ParseRange(years)
		if err != nil {
			return nil, fmt.Errorf("invalid year range: %w", err)
		}
		dr, err := modis.ParseRange(doys)
		if err != nil {
			return nil, fmt.Errorf("invalid day-of-year range: %w", err)
		}
		args.years, args.doys = &yr, &dr
		// Year/DOY ranges replace the start/end date bound.
		return args, nil
	}

	if start != "" {
		if args.query.Start, err = parseDate(start); err != nil {
			return nil, err
		}
	}
	if end != "" {
		if args.query.End, err = parseDate(end); err != nil {
			return nil, err
		}
	}
	return args, nil
}

// parseDate parses a YYYYMMDD calendar date.
func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation("20060102", s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYYMMDD", s)
	}
	return t, nil
}

// filter applies the client-side year/day-of-year filter when configured.
// A year and day-of-year pair cannot be expressed as one contiguous
// temporal interval, so it is applied after collection instead.
func (a *searchArgs) filter(urls []string) []string {
	if a.years == nil || a.doys == nil {
		return urls
	}
	return modis.FilterYearDOY(urls, *a.years, *a.doys)
}
