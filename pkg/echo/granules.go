package echo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"net/http"
	"strings"
)

// cursorAtEndHeader signals pagination state on granule search responses.
// The value "false" means another page exists.
const cursorAtEndHeader = "Echo-Cursor-At-End"

// Granule is one catalog entry for a MOD09GA observation.
type Granule struct {
	ID    string  `json:"id"`
	Links []*Link `json:"links"`
}

// Link is one hypermedia link attached to a granule entry.
type Link struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

// HDFLink returns the href of the granule's first .hdf download link, or
// the empty string when the entry carries none.
func (g *Granule) HDFLink() string {
	if g == nil {
		return ""
	}
	for _, l := range g.Links {
		if l != nil && strings.HasSuffix(l.Href, ".hdf") {
			return l.Href
		}
	}
	return ""
}

// granulePage mirrors the granules.json feed envelope.
type granulePage struct {
	Feed struct {
		Entry []*Granule `json:"entry"`
	} `json:"feed"`
}

// Granules streams matching granules lazily, driving page_num upward until
// the catalog reports the cursor is at the end. Catalog order is preserved.
// Any transport or API failure terminates the sequence with an error.
func (c *Client) Granules(ctx context.Context, query GranuleQuery) iter.Seq2[*Granule, error] {
	return func(yield func(*Granule, error) bool) {
		for pageNum := 1; ; pageNum++ {
			u := *c.baseURL
			u.RawQuery = query.Values(c.pageSize, pageNum).Encode()

			resp, err := c.doRequest(ctx, http.MethodGet, u.String(), nil)
			if err != nil {
				yield(nil, fmt.Errorf("echo: fetching page %d: %w", pageNum, err))
				return
			}
			if resp.StatusCode != http.StatusOK {
				body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
				resp.Body.Close()
				if c.logger != nil {
					c.logger.Errorf("echo: request failed status=%d", resp.StatusCode)
				}
				yield(nil, &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))})
				return
			}

			var page granulePage
			err = json.NewDecoder(resp.Body).Decode(&page)
			atEnd := resp.Header.Get(cursorAtEndHeader) != "false"
			resp.Body.Close()
			if err != nil {
				yield(nil, fmt.Errorf("echo: decoding page %d: %w", pageNum, err))
				return
			}

			for _, g := range page.Feed.Entry {
				if g == nil {
					continue
				}
				if !yield(g, nil) {
					return
				}
			}

			if atEnd {
				return
			}
		}
	}
}

// URLs collects the .hdf download URL of every matching granule, in the
// order the catalog returns them. Granules without an hdf link are skipped.
// A zero-match query yields an empty slice and no error.
func (c *Client) URLs(ctx context.Context, query GranuleQuery) ([]string, error) {
	var urls []string
	for g, err := range c.Granules(ctx, query) {
		if err != nil {
			return nil, err
		}
		href := g.HDFLink()
		if href == "" {
			if c.logger != nil {
				c.logger.Debugf("echo: granule %s has no hdf link", g.ID)
			}
			continue
		}
		urls = append(urls, href)
	}
	return urls, nil
}
