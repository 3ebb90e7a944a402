package asset

// Reserved metadata field names.
const (
	// FieldName holds the record's own name. Mandatory in every record.
	FieldName = "name"

	// FieldBase names the parent record a card inherits from.
	FieldBase = "base"

	// FieldSource tags where a record physically came from. Attached by
	// providers at scan time; used for listing and diagnostics, never by
	// resolution logic.
	FieldSource = "__source__"
)

// Metadata is a raw asset metadata record: field name to value. Values are
// strings, numbers, booleans, nested mappings, or lists as decoded from
// the card file format.
type Metadata map[string]interface{}

// Copy returns a deep copy of the metadata. Providers hand out copies so
// that callers can mutate freely without corrupting provider caches.
func (m Metadata) Copy() Metadata {
	if m == nil {
		return nil
	}
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, e := range t {
			out[k] = copyValue(e)
		}
		return out
	case Metadata:
		return map[string]interface{}(t.Copy())
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = copyValue(e)
		}
		return out
	default:
		return v
	}
}

// MetadataProvider is a read-only source of raw metadata records keyed by
// name. Implementations cache their scan results internally and must
// return fresh copies from GetMetadata.
type MetadataProvider interface {
	// GetMetadata returns the record stored under the exact given name,
	// including environment-suffixed names. A provider with no record for
	// "foo@prod" reports not-found rather than falling back to "foo".
	GetMetadata(name string) (Metadata, error)

	// Names returns every record name known to the provider, sorted.
	Names() ([]string, error)

	// Source identifies where this provider's records come from, for
	// diagnostics and listing.
	Source() string

	// ClearCache discards memoized scan results; the next access re-scans
	// the underlying source.
	ClearCache()
}

// Scope partitions registered providers. User-scope providers are always
// consulted before global-scope ones.
type Scope int

const (
	ScopeGlobal Scope = iota
	ScopeUser
)

func (s Scope) String() string {
	switch s {
	case ScopeUser:
		return "user"
	default:
		return "global"
	}
}
