// ABOUTME: Tests for the typed partition enum.
// ABOUTME: Covers parsing, naming, and active-partition selection.
package storage

import "testing"

func TestParsePartition(t *testing.T) {
	cases := []struct {
		in   string
		want Partition
		ok   bool
	}{
		{"primary", PartitionPrimary, true},
		{"demo", PartitionDemo, true},
		{"", PartitionPrimary, false},
		{"production", PartitionPrimary, false},
	}
	for _, tc := range cases {
		got, err := ParsePartition(tc.in)
		if tc.ok && err != nil {
			t.Errorf("ParsePartition(%q) failed: %v", tc.in, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("ParsePartition(%q) should fail", tc.in)
		}
		if tc.ok && got != tc.want {
			t.Errorf("ParsePartition(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestPartitionString(t *testing.T) {
	if PartitionPrimary.String() != "primary" {
		t.Errorf("PartitionPrimary = %q", PartitionPrimary)
	}
	if PartitionDemo.String() != "demo" {
		t.Errorf("PartitionDemo = %q", PartitionDemo)
	}
}

func TestSelectPartition(t *testing.T) {
	db := setupTestDB(t)

	if db.ActivePartition() != PartitionPrimary {
		t.Error("new store should start on the primary partition")
	}
	db.SelectPartition(PartitionDemo)
	if db.ActivePartition() != PartitionDemo {
		t.Error("SelectPartition(demo) did not take effect")
	}
	db.SelectPartition(PartitionPrimary)
	if db.ActivePartition() != PartitionPrimary {
		t.Error("SelectPartition(primary) did not take effect")
	}
}
