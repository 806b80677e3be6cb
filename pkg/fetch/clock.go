package fetch

import (
	"fmt"
	"time"
)

// DefaultTimeURL is a public service returning the current time as JSON.
const DefaultTimeURL = "http://date.jsontest.com/"

// timeDocument is the subset of the time service response we care about.
type timeDocument struct {
	Time string `json:"time"`
}

// CurrentSecond returns the seconds component of the clock reported by
// the time service at url.
func (c *Client) CurrentSecond(url string) (int, error) {
	var doc timeDocument
	if err := c.GetJSON(url, &doc); err != nil {
		return 0, err
	}

	t, err := time.Parse("3:04:05 PM", doc.Time)
	if err != nil {
		return 0, fmt.Errorf("parse time %q: %w", doc.Time, err)
	}
	return t.Second(), nil
}
