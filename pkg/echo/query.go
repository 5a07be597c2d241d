package echo

import (
	"net/url"
	"strconv"
	"time"

	"github.com/cgoodale/echo-mod09ga/pkg/modis"
)

// DatasetID is the ECHO dataset identifier for the MOD09GA collection.
const DatasetID = "MODIS/Terra Surface Reflectance Daily L2G Global 1km and 500m SIN Grid V005"

// GranuleQuery describes one granule search. Start and End are inclusive
// calendar dates (midnight UTC); a zero value leaves that side of the
// temporal range open. An inverted range is encoded as given and never
// rejected locally; the catalog decides what it yields.
type GranuleQuery struct {
	Tile  modis.Tile
	Start time.Time
	End   time.Time
}

// Values encodes the query for one catalog page. The tile is expressed as
// the HORIZONTALTILENUMBER / VERTICALTILENUMBER attribute triples the
// catalog expects, the date bounds as a temporal[] interval.
func (q GranuleQuery) Values(pageSize, pageNum int) url.Values {
	v := url.Values{}
	v.Set("dataset_id", DatasetID)
	addTileAttribute(v, "HORIZONTALTILENUMBER", q.Tile.H)
	addTileAttribute(v, "VERTICALTILENUMBER", q.Tile.V)
	if !q.Start.IsZero() || !q.End.IsZero() {
		v.Add("temporal[]", temporalInterval(q.Start, q.End))
	}
	v.Set("page_size", strconv.Itoa(pageSize))
	v.Set("page_num", strconv.Itoa(pageNum))
	return v
}

func addTileAttribute(v url.Values, name string, value int) {
	v.Add("attribute[][name]", name)
	v.Add("attribute[][type]", "int")
	v.Add("attribute[][value]", strconv.Itoa(value))
}

// temporalInterval renders "start,end" in RFC3339. The end bound covers the
// whole end day so the date is inclusive.
func temporalInterval(start, end time.Time) string {
	var lo, hi string
	if !start.IsZero() {
		lo = start.UTC().Format(time.RFC3339)
	}
	if !end.IsZero() {
		hi = end.UTC().Add(24*time.Hour - time.Second).Format(time.RFC3339)
	}
	return lo + "," + hi
}
