package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cgoodale/echo-mod09ga/pkg/modis"
)

func TestParseDate(t *testing.T) {
	d, err := parseDate("20130803")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2013, 8, 3, 0, 0, 0, 0, time.UTC), d)

	for _, bad := range []string{"2013080", "201308033", "2013-08-03", "abcdefgh", "20131301"} {
		_, err := parseDate(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestBuildSearchArgs(t *testing.T) {
	args, err := buildSearchArgs("h11v03", "", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, modis.Tile{H: 11, V: 3}, args.query.Tile)
	assert.True(t, args.query.Start.IsZero())
	assert.True(t, args.query.End.IsZero())
	assert.Nil(t, args.years)
	assert.Nil(t, args.doys)
}

func TestBuildSearchArgsDates(t *testing.T) {
	args, err := buildSearchArgs("h11v03", "20050101", "20051231", "", "")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2005, 1, 1, 0, 0, 0, 0, time.UTC), args.query.Start)
	assert.Equal(t, time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC), args.query.End)
}

func TestBuildSearchArgsInvertedRangeAccepted(t *testing.T) {
	// start > end is forwarded to the catalog, not rejected locally.
	args, err := buildSearchArgs("h11v03", "20100101", "20050101", "", "")
	require.NoError(t, err)
	assert.True(t, args.query.Start.After(args.query.End))
}

func TestBuildSearchArgsTileError(t *testing.T) {
	_, err := buildSearchArgs("11v03", "", "", "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "h##v##")
}

func TestBuildSearchArgsDateError(t *testing.T) {
	_, err := buildSearchArgs("h11v03", "2005-01-01", "", "", "")
	require.Error(t, err)

	_, err = buildSearchArgs("h11v03", "", "205x0101", "", "")
	require.Error(t, err)
}

func TestBuildSearchArgsYearDOYRanges(t *testing.T) {
	args, err := buildSearchArgs("h09v05", "20050101", "20051231", "2000-2005", "150-300")
	require.NoError(t, err)

	require.NotNil(t, args.years)
	require.NotNil(t, args.doys)
	assert.Equal(t, modis.Range{Min: 2000, Max: 2005}, *args.years)
	assert.Equal(t, modis.Range{Min: 150, Max: 300}, *args.doys)

	// Year/DOY ranges replace the start/end date bound entirely.
	assert.True(t, args.query.Start.IsZero())
	assert.True(t, args.query.End.IsZero())
}

func TestBuildSearchArgsYearDOYRequiresBoth(t *testing.T) {
	// Only one of the two range flags is ignored, matching the date path.
	args, err := buildSearchArgs("h09v05", "", "", "2000-2005", "")
	require.NoError(t, err)
	assert.Nil(t, args.years)
	assert.Nil(t, args.doys)
}

func TestSearchArgsFilter(t *testing.T) {
	urls := []string{
		"http://host/MOD09GA.005/2012.01.10/a.hdf",
		"http://host/MOD09GA.005/2013.08.03/b.hdf",
	}

	args, err := buildSearchArgs("h11v03", "", "", "2013-2013", "200-250")
	require.NoError(t, err)
	assert.Equal(t, []string{urls[1]}, args.filter(urls))

	// Without ranges the filter is the identity.
	args, err = buildSearchArgs("h11v03", "", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, urls, args.filter(urls))
}

func TestDestPath(t *testing.T) {
	dest, err := destPath("/tmp/out", "http://host/MOD09GA.005/2013.08.03/MOD09GA.A2013215.h10v03.005.hdf")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/out/MOD09GA.A2013215.h10v03.005.hdf", dest)

	_, err = destPath("/tmp/out", "http://host/")
	assert.Error(t, err)
}
