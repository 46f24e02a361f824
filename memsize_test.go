package nscache

import "testing"

func TestEstimateValueSize(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  int64
	}{
		{"nil", nil, 0},
		{"empty string", "", 0},
		{"string", "abcd", 8},
		{"bool", true, 1},
		{"int", 42, numberBytes},
		{"float", 3.14, numberBytes},
		{"bytes", []byte{1, 2, 3}, 3},
	}

	for _, tc := range cases {
		if got := estimateValueSize(tc.value); got != tc.want {
			t.Errorf("%s: expected %d, got %d", tc.name, tc.want, got)
		}
	}
}

func TestEstimateValueSizeStructured(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}

	small := estimateValueSize(payload{Name: "a"})
	large := estimateValueSize(payload{Name: "a considerably longer name"})
	if small <= 0 || large <= small {
		t.Fatalf("expected estimate to grow with payload: %d -> %d", small, large)
	}
}

func TestEstimateValueSizeFallback(t *testing.T) {
	// Channels cannot be serialized; the estimate must fall back instead
	// of surfacing an error.
	if got := estimateValueSize(make(chan int)); got != fallbackValueBytes {
		t.Fatalf("expected fallback %d, got %d", fallbackValueBytes, got)
	}

	cyclic := map[string]any{}
	cyclic["self"] = cyclic
	if got := estimateValueSize(cyclic); got != fallbackValueBytes {
		t.Fatalf("expected fallback %d for cyclic value, got %d", fallbackValueBytes, got)
	}
}

func TestEstimateEntrySizeIncludesKeyAndOverhead(t *testing.T) {
	got := estimateEntrySize("abc", "xy")
	want := int64(2*3 + 2*2 + entryOverheadBytes)
	if got != want {
		t.Fatalf("expected %d, got %d", want, got)
	}
}
