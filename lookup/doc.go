// Package lookup provides a cached name → duration table used to fill in
// jobs submitted without a duration.
//
// A Table loads its contents from a types.DurationFetcher and refreshes them
// once the configured TTL has passed. Names are matched case-insensitively
// with surrounding whitespace ignored.
//
// Example:
//
//	table := lookup.NewTable(lookup.NewFileFetcher("durations.yaml"), lookup.WithTTL(5*time.Minute))
//	minutes, err := table.Resolve(ctx, "12 Oak St")
package lookup
