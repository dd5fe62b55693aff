package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"mime"

	"github.com/goccy/go-yaml"

	"github.com/vmunix/marquee/internal/appconfig"
)

// Tree is a decoded configuration document: objects are map[string]any,
// arrays are []any, numbers are json.Number (JSON) or Go numeric types (YAML).
type Tree map[string]any

// Decode turns a raw document into a Tree based on its content type.
// JSON is assumed when the content type is empty or unrecognized.
func Decode(doc *appconfig.Document) (Tree, error) {
	if doc == nil || len(bytes.TrimSpace(doc.Content)) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrMalformedDocument)
	}

	if isYAML(doc.ContentType) {
		var tree Tree
		if err := yaml.Unmarshal(doc.Content, &tree); err != nil {
			return nil, fmt.Errorf("%w: decode yaml: %v", ErrMalformedDocument, err)
		}
		if tree == nil {
			return nil, fmt.Errorf("%w: document is not a mapping", ErrMalformedDocument)
		}
		return tree, nil
	}

	dec := json.NewDecoder(bytes.NewReader(doc.Content))
	dec.UseNumber()

	var tree Tree
	if err := dec.Decode(&tree); err != nil {
		return nil, fmt.Errorf("%w: decode json: %v", ErrMalformedDocument, err)
	}
	if tree == nil {
		return nil, fmt.Errorf("%w: document is not an object", ErrMalformedDocument)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after document", ErrMalformedDocument)
	}
	return tree, nil
}

func isYAML(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	switch mediaType {
	case "application/x-yaml", "application/yaml", "text/yaml", "text/x-yaml":
		return true
	}
	return false
}

// Parse reads the movies array of tree into entries, in document order.
// id and movieName are required on every element; a missing or null genre
// becomes DefaultGenre. Any structural violation fails the whole document.
// Names, ids and duplicates are passed through without validation.
func Parse(tree Tree) ([]Entry, error) {
	raw, ok := tree["movies"]
	if !ok {
		return nil, fmt.Errorf("%w: missing movies", ErrMalformedDocument)
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: movies is %T, not an array", ErrMalformedDocument, raw)
	}

	entries := make([]Entry, 0, len(items))
	for i, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: movies[%d] is not an object", ErrMalformedDocument, i)
		}
		entry, err := parseEntry(obj)
		if err != nil {
			return nil, fmt.Errorf("%w: movies[%d]: %v", ErrMalformedDocument, i, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// ParseDocument decodes and parses a raw document in one step.
func ParseDocument(doc *appconfig.Document) ([]Entry, error) {
	tree, err := Decode(doc)
	if err != nil {
		return nil, err
	}
	return Parse(tree)
}

func parseEntry(obj map[string]any) (Entry, error) {
	rawID, ok := obj["id"]
	if !ok || rawID == nil {
		return Entry{}, errors.New("missing id")
	}
	id, ok := toInt64(rawID)
	if !ok {
		return Entry{}, fmt.Errorf("id %v is not an integer", rawID)
	}

	rawName, ok := obj["movieName"]
	if !ok || rawName == nil {
		return Entry{}, errors.New("missing movieName")
	}
	name, ok := rawName.(string)
	if !ok {
		return Entry{}, fmt.Errorf("movieName is %T, not a string", rawName)
	}

	genre, err := optString(obj["genre"])
	if err != nil {
		return Entry{}, fmt.Errorf("genre: %w", err)
	}

	return NewEntry(id, name, genre), nil
}

// optString renders an optional scalar as a string; nil yields "".
func optString(v any) (string, error) {
	switch s := v.(type) {
	case nil:
		return "", nil
	case string:
		return s, nil
	case map[string]any, []any:
		return "", fmt.Errorf("unexpected %T", v)
	default:
		return fmt.Sprint(s), nil
	}
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return integral(f)
	case float64:
		return integral(n)
	case float32:
		return integral(float64(n))
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return fromUint(uint64(n))
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return fromUint(n)
	}
	return 0, false
}

func integral(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

func fromUint(u uint64) (int64, bool) {
	if u > math.MaxInt64 {
		return 0, false
	}
	return int64(u), true
}

type document struct {
	Movies []Entry `json:"movies"`
}

// Encode renders entries in the configuration document shape.
func Encode(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.Marshal(document{Movies: entries})
	if err != nil {
		return nil, fmt.Errorf("encode catalog: %w", err)
	}
	return data, nil
}

// contentTypeJSON is the content type Encode produces.
const contentTypeJSON = "application/json"

// EncodeDocument wraps Encode in an appconfig.Document.
func EncodeDocument(entries []Entry) (*appconfig.Document, error) {
	data, err := Encode(entries)
	if err != nil {
		return nil, err
	}
	return &appconfig.Document{Content: data, ContentType: contentTypeJSON}, nil
}
