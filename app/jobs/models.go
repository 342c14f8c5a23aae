// Package jobs runs the scheduled work: the midnight daily reset and
// the periodic lifetime stats export. River persists the jobs in
// Postgres so a restart never loses a scheduled run.
package jobs

// DailyResetArgs is the periodic job that zeroes the daily counters.
type DailyResetArgs struct{}

// Kind returns the job type identifier for River.
func (DailyResetArgs) Kind() string { return "daily_reset" }

// StatsExportArgs is the periodic job that writes the lifetime totals
// to a spreadsheet.
type StatsExportArgs struct{}

// Kind returns the job type identifier for River.
func (StatsExportArgs) Kind() string { return "stats_export" }
