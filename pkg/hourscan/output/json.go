// Package output serializes and summarizes search results.
package output

import (
	"encoding/json"
)

// ToJSON serializes v (results, a report, or a summary) to JSON.
func ToJSON(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
