package site

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

// Data is the content of the site's data file.
type Data struct {
	Links []ExternalLink `toml:"links"`
	Talks []Talk         `toml:"talks"`
}

// ParseData decodes a TOML data file. Empty input gives empty Data.
//
//	[[links]]
//	date = 2021-04-01
//	title = "Something I wrote elsewhere"
//	url = "https://example.com/elsewhere"
//
//	[[talks]]
//	title = "A talk"
//	  [[talks.occurrences]]
//	  date = 2019-06-12
//	  event_name = "GopherCon"
//	  event_url = "https://gophercon.com"
//	  venue_name = "Town Hall"
func ParseData(b []byte) (*Data, error) {
	var d Data
	if len(b) == 0 {
		return &d, nil
	}
	err := toml.Unmarshal(b, &d)
	if err != nil {
		return nil, fmt.Errorf("ParseData: %w", err)
	}
	return &d, nil
}
