package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// decode parses manifest bytes into an order-preserving document. The
// ordered-map library decodes nested objects as plain (unordered) Go maps,
// so this walks the token stream itself and builds *Document values at
// every nesting level. Numbers stay json.Number so they re-serialize
// exactly as written.
func decode(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("parsing %s: top-level value is not an object", FileName)
	}
	return decodeObject(dec)
}

// decodeObject consumes the members of an object whose opening brace has
// already been read, including the closing brace.
func decodeObject(dec *json.Decoder) (*Document, error) {
	doc := orderedmap.New[string, any]()

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", tok)
		}

		val, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		doc.Set(key, val)
	}

	// Closing '}'.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return doc, nil
}

// decodeValue reads one JSON value: objects become *Document, arrays become
// []any, scalars pass through as the decoder's token types.
func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		return decodeObject(dec)
	case '[':
		arr := []any{}
		for dec.More() {
			v, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		// Closing ']'.
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %q", delim.String())
	}
}
