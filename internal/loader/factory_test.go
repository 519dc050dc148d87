package loader

import "testing"

// TestParseLayerKind tests tag resolution, including the unknown case.
func TestParseLayerKind(t *testing.T) {
	tests := []struct {
		tag  string
		want LayerKind
	}{
		{"dense", KindDense},
		{"time-distributed-dense", KindTimeDistributedDense},
		{"lstm", KindLSTM},
		{"activation", KindActivation},
		{"conv2d", KindUnknown},
		{"", KindUnknown},
		{"Dense", KindUnknown},
	}
	for _, tt := range tests {
		if got := ParseLayerKind(tt.tag); got != tt.want {
			t.Errorf("ParseLayerKind(%q) = %v, expected %v", tt.tag, got, tt.want)
		}
	}
}

// TestLayerKindString tests the tag round-trip for recognized kinds.
func TestLayerKindString(t *testing.T) {
	for _, kind := range []LayerKind{KindDense, KindTimeDistributedDense, KindLSTM, KindActivation} {
		if got := ParseLayerKind(kind.String()); got != kind {
			t.Errorf("round-trip failed for %v (tag %q)", kind, kind.String())
		}
	}
	if got := KindUnknown.String(); got != "unknown" {
		t.Errorf("KindUnknown.String() = %q", got)
	}
}
