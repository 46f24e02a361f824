package nscache

import "encoding/json"

// Sizing constants for the memory estimate. Keys and string values count two
// bytes per character, numbers eight, booleans one, and every entry carries
// a fixed overhead for its bookkeeping fields.
const (
	entryOverheadBytes = 64
	numberBytes        = 8
	fallbackValueBytes = 100
)

// estimateEntrySize approximates the memory held by one entry. It is a
// diagnostic figure: monotonic with payload size, not exact.
func estimateEntrySize(key string, value any) int64 {
	return int64(2*len(key)) + estimateValueSize(value) + entryOverheadBytes
}

/*
estimateValueSize approximates the size of an opaque payload.

Structured values are probed by serializing them and counting two bytes per
serialized character. The probe must never take an operation down: a value
that cannot be serialized (cyclic structures, channels, functions) falls
back to a fixed default instead of surfacing an error.
*/
func estimateValueSize(value any) (n int64) {
	switch v := value.(type) {
	case nil:
		return 0
	case string:
		return int64(2 * len(v))
	case bool:
		return 1
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return numberBytes
	case []byte:
		return int64(len(v))
	default:
		defer func() {
			if recover() != nil {
				n = fallbackValueBytes
			}
		}()
		b, err := json.Marshal(v)
		if err != nil {
			return fallbackValueBytes
		}
		return int64(2 * len(b))
	}
}
