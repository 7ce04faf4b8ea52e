package contracts

import "testing"

func TestHolderKeyDeterministic(t *testing.T) {
	a := HolderKey("holder:alice@example.com")
	b := HolderKey("holder:alice@example.com")
	if a != b {
		t.Fatalf("HolderKey is not deterministic")
	}
}

func TestHolderKeyDistinctHolders(t *testing.T) {
	a := HolderKey("holder:alice@example.com")
	b := HolderKey("holder:bob@example.com")
	if a == b {
		t.Fatalf("distinct holder ids collided")
	}
}

func TestRecordStatusString(t *testing.T) {
	cases := map[RecordStatus]string{
		StatusActive:  "Active",
		StatusRevoked: "Revoked",
	}
	for status, want := range cases {
		if got := status.String(); got != want {
			t.Errorf("RecordStatus(%d).String() = %q, want %q", status, got, want)
		}
	}
}
