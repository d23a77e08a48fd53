package douban

import "encoding/json"

// Result is a category response body exactly as the server sent it.
type Result json.RawMessage

// Decode unmarshals the body into v.
func (r Result) Decode(v any) error {
	return json.Unmarshal(r, v)
}

// MarshalJSON emits the body unchanged.
func (r Result) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	return r, nil
}

func (r Result) String() string { return string(r) }

// CategoryPage is the shape the local category endpoint normally returns.
// The fetcher does not enforce it; use Result.Decode.
type CategoryPage struct {
	Code    int    `json:"code" yaml:"code"`
	Message string `json:"message" yaml:"message"`
	List    []Item `json:"list" yaml:"list"`
}

// Item is one entry of a category listing.
type Item struct {
	ID     string `json:"id" yaml:"id"`
	Title  string `json:"title" yaml:"title"`
	Poster string `json:"poster" yaml:"poster"`
	Rate   string `json:"rate" yaml:"rate"`
	Year   string `json:"year" yaml:"year"`
}
