package movies

import (
	"fmt"
	"io"
	"os"

	"github.com/tidwall/gjson"
)

// LoadFile reads and decodes the credits document at path.
// Read failures wrap ErrSourceUnavailable.
func LoadFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceUnavailable, path, err)
	}

	return DecodeBytes(data)
}

// Decode reads the whole stream and decodes it as a credits document.
func Decode(r io.Reader) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	return DecodeBytes(data)
}

// DecodeBytes decodes a credits document.
//
// The document must be a JSON array. Elements that are not objects still
// produce a Record (with no cast) so that downstream skip accounting stays
// aligned with input positions.
func DecodeBytes(data []byte) ([]Record, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: invalid JSON", ErrMalformedDocument)
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, fmt.Errorf("%w: root is %s, want array", ErrMalformedDocument, doc.Type)
	}

	entries := doc.Array()
	out := make([]Record, 0, len(entries))
	for _, entry := range entries {
		out = append(out, recordFrom(entry))
	}

	return out, nil
}

func recordFrom(entry gjson.Result) Record {
	if !entry.IsObject() {
		return Record{}
	}
	id := entry.Get("movie_id")
	if !id.Exists() {
		id = entry.Get("id")
	}

	return Record{
		ID:    id.Int(),
		Title: entry.Get("title").String(),
		cast:  entry.Get("cast"),
	}
}
