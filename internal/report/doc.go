// Package report builds derived aggregate reports over the store. Reports
// are read-only snapshots: each one is stamped with its generation time and
// fails whole if any underlying aggregate query fails, so callers never see
// partially populated numbers.
package report
