// Where: internal/infra/properties/properties.go
// What: Java-style properties decoding.
// Why: Read key.properties and local.properties the way the JVM build tool does.
package properties

import (
	"fmt"
	"strings"

	mprops "github.com/magiconair/properties"
)

// Encoding selects how raw bytes are decoded.
type Encoding string

const (
	// ISO88591 matches java.util.Properties.load(InputStream).
	ISO88591 Encoding = "iso-8859-1"
	UTF8     Encoding = "utf-8"
)

// ParseEncoding maps a config value to an Encoding. Empty selects ISO88591.
func ParseEncoding(name string) (Encoding, error) {
	switch Encoding(strings.ToLower(strings.TrimSpace(name))) {
	case "", ISO88591, "latin1", "latin-1":
		return ISO88591, nil
	case UTF8, "utf8":
		return UTF8, nil
	default:
		return "", fmt.Errorf("unsupported properties encoding %q", name)
	}
}

// Set is a decoded properties document.
type Set struct {
	props *mprops.Properties
}

// Decode parses properties content. ${...} references are left unexpanded.
func Decode(data []byte, enc Encoding) (Set, error) {
	loader := &mprops.Loader{
		Encoding:         libEncoding(enc),
		DisableExpansion: true,
	}
	props, err := loader.LoadBytes(data)
	if err != nil {
		return Set{}, fmt.Errorf("parse properties: %w", err)
	}
	return Set{props: props}, nil
}

// Get returns the raw value for key.
func (s Set) Get(key string) (string, bool) {
	if s.props == nil {
		return "", false
	}
	return s.props.Get(key)
}

// Keys returns the keys in file order.
func (s Set) Keys() []string {
	if s.props == nil {
		return nil
	}
	return s.props.Keys()
}

// Encode renders key/value pairs in the given order using properties escaping.
func Encode(keys []string, values map[string]string, enc Encoding) (string, error) {
	props := mprops.NewProperties()
	props.DisableExpansion = true
	for _, key := range keys {
		value, ok := values[key]
		if !ok {
			continue
		}
		if _, _, err := props.Set(key, value); err != nil {
			return "", fmt.Errorf("set property %s: %w", key, err)
		}
	}
	var buf strings.Builder
	if _, err := props.Write(&buf, libEncoding(enc)); err != nil {
		return "", fmt.Errorf("encode properties: %w", err)
	}
	return buf.String(), nil
}

func libEncoding(enc Encoding) mprops.Encoding {
	if enc == UTF8 {
		return mprops.UTF8
	}
	return mprops.ISO_8859_1
}
