package repositories

import "testing"

func TestPageRequestNormalizeDefaults(t *testing.T) {
	cases := []struct {
		name       string
		in         PageRequest
		wantNumber int
		wantSize   int
	}{
		{"zero values", PageRequest{}, 1, 10},
		{"negative number", PageRequest{Number: -3, Size: 20}, 1, 20},
		{"negative size", PageRequest{Number: 2, Size: -1}, 2, 10},
		{"valid request", PageRequest{Number: 4, Size: 25}, 4, 25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			if got.Number != tc.wantNumber || got.Size != tc.wantSize {
				t.Errorf("got %+v, want Number=%d Size=%d", got, tc.wantNumber, tc.wantSize)
			}
		})
	}
}

func TestPageRequestOffsetAndLimit(t *testing.T) {
	page := PageRequest{Number: 3, Size: 15}
	if page.Offset() != 30 {
		t.Errorf("expected offset 30, got %d", page.Offset())
	}
	if page.Limit() != 15 {
		t.Errorf("expected limit 15, got %d", page.Limit())
	}

	first := PageRequest{}
	if first.Offset() != 0 {
		t.Errorf("expected offset 0 for defaults, got %d", first.Offset())
	}
	if first.Limit() != 10 {
		t.Errorf("expected limit 10 for defaults, got %d", first.Limit())
	}
}
