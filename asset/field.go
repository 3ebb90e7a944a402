package asset

import (
	"net/url"
)

// Field is a thin accessor over one card field, created by Card.Field.
// Extraction methods convert the underlying value to the requested type
// and fail with a card-content error naming the card and the field when
// the value is absent or of the wrong type. No reflection-based coercion
// happens; each target type has its own explicit conversion.
type Field struct {
	card  string
	key   string
	value interface{}
	err   error
}

// Exists reports whether the field was present on the card or anywhere in
// its base chain.
func (f *Field) Exists() bool {
	return f.err == nil
}

// Value returns the raw field value.
func (f *Field) Value() (interface{}, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.value, nil
}

// AsString returns the field as a string.
func (f *Field) AsString() (string, error) {
	if f.err != nil {
		return "", f.err
	}
	s, ok := f.value.(string)
	if !ok {
		return "", f.typeError("a string")
	}
	return s, nil
}

// AsInt returns the field as an int. YAML integers decode as int or
// int64 depending on size; float values are accepted only when integral.
func (f *Field) AsInt() (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	switch v := f.value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		if v == float64(int(v)) {
			return int(v), nil
		}
	}
	return 0, f.typeError("an integer")
}

// AsFloat64 returns the field as a float64.
func (f *Field) AsFloat64() (float64, error) {
	if f.err != nil {
		return 0, f.err
	}
	switch v := f.value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	}
	return 0, f.typeError("a float")
}

// AsBool returns the field as a bool.
func (f *Field) AsBool() (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	b, ok := f.value.(bool)
	if !ok {
		return false, f.typeError("a boolean")
	}
	return b, nil
}

// AsURI returns the field as a parsed URI. A string value without a
// scheme is treated as a local filesystem path and returned as a file URI.
func (f *Field) AsURI() (*url.URL, error) {
	s, err := f.AsString()
	if err != nil {
		return nil, err
	}
	if s == "" {
		return nil, f.typeError("a URI or a local path")
	}
	u, parseErr := url.Parse(s)
	if parseErr == nil && u.Scheme != "" {
		return u, nil
	}
	if parseErr != nil {
		return nil, NewCardError(f.card, "the value of the field '%s' cannot be parsed as a URI: %v", f.key, parseErr)
	}
	return &url.URL{Scheme: "file", Path: s}, nil
}

// AsMap returns the field as a nested mapping.
func (f *Field) AsMap() (Metadata, error) {
	if f.err != nil {
		return nil, f.err
	}
	switch v := f.value.(type) {
	case map[string]interface{}:
		return Metadata(v).Copy(), nil
	case Metadata:
		return v.Copy(), nil
	}
	return nil, f.typeError("a mapping")
}

// AsStringList returns the field as a list of strings.
func (f *Field) AsStringList() ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	switch v := f.value.(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out, nil
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, e := range v {
			s, ok := e.(string)
			if !ok {
				return nil, f.typeError("a list of strings")
			}
			out = append(out, s)
		}
		return out, nil
	}
	return nil, f.typeError("a list of strings")
}

func (f *Field) typeError(expected string) error {
	return NewCardError(f.card, "the value of the field '%s' must be %s, but is of type %T", f.key, expected, f.value)
}
