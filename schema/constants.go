package schema

// Section headers of the text report.
const (
	MonthsHeader       = "=== COMMITS PER MONTH ==="
	WeekdaysHeader     = "=== COMMITS PER WEEKDAY ==="
	ChangesHeader      = "=== FILES TOUCHED PER COMMIT ==="
	DistributionHeader = "Distribution (commits touching N files):"
)

// MonthKeyLength is the length of a YYYY-MM key.
const MonthKeyLength = 7

// WeekdayOrder is the canonical display order for weekday keys.
var WeekdayOrder = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// Query describes one git invocation made for the report.
type Query struct {
	Name    string   // Short identifier
	Section string   // Report section fed by the query
	Args    []string // Arguments passed to git after "-C <repo>"
}

// The three history queries. Each walks the full history on its own.
var (
	MonthQuery = Query{
		Name:    "months",
		Section: MonthsHeader,
		Args:    []string{"log", "--date=short", "--pretty=%ad"},
	}
	WeekdayQuery = Query{
		Name:    "weekdays",
		Section: WeekdaysHeader,
		Args:    []string{"log", "--date=format:%a", "--pretty=%ad"},
	}
	ShortstatQuery = Query{
		Name:    "shortstat",
		Section: ChangesHeader,
		Args:    []string{"log", "--shortstat", "--pretty=%h"},
	}
)

// ReportQueries lists the queries in the order they are executed.
var ReportQueries = []Query{MonthQuery, WeekdayQuery, ShortstatQuery}
