// ABOUTME: Typed two-valued partition selector for the training log.
// ABOUTME: Replaces string-built table names; each partition maps to a fixed table.
package storage

import "fmt"

// Partition names one of the two identically-shaped set-entry tables.
// Primary holds real user data and is the only target of single-entry
// appends; demo holds replaceable seed data.
type Partition int

const (
	PartitionPrimary Partition = iota
	PartitionDemo
)

// String returns the partition's external name.
func (p Partition) String() string {
	switch p {
	case PartitionDemo:
		return "demo"
	default:
		return "primary"
	}
}

// table maps the partition to its SQL table. The set of identifiers is
// closed, so no query is ever built from caller-supplied strings.
func (p Partition) table() string {
	switch p {
	case PartitionDemo:
		return "demo_training_log"
	default:
		return "training_log"
	}
}

// ParsePartition converts an external name to a Partition.
func ParsePartition(s string) (Partition, error) {
	switch s {
	case "primary", "":
		return PartitionPrimary, nil
	case "demo":
		return PartitionDemo, nil
	default:
		return PartitionPrimary, fmt.Errorf("unknown partition: %q", s)
	}
}
