package parser

// Type filter codes understood by the ranking engine
const (
	FilterUnspecified = -1
	FilterNever       = 1
	FilterMacro       = 16
)

// Filter table keys resolved by the parser
const (
	filterNameNever = "never"
	filterNameMacro = "macro"
)

// FilterTable maps recognized keyword-like names to numeric type filter
// codes. It is read-only after construction, so a single instance can be
// shared across concurrent Parse calls.
type FilterTable struct {
	codes map[string]int
}

// DefaultFilterTable returns the filter table for the grammar slice handled
// here: the never type and the macro suffix.
func DefaultFilterTable() *FilterTable {
	return NewFilterTable(nil)
}

// NewFilterTable builds a filter table from the default rows plus extra,
// which may add rows for item kinds outside this grammar slice or override
// the defaults. The extra map is copied.
func NewFilterTable(extra map[string]int) *FilterTable {
	codes := map[string]int{
		filterNameNever: FilterNever,
		filterNameMacro: FilterMacro,
	}
	for name, code := range extra {
		codes[name] = code
	}

	return &FilterTable{codes: codes}
}

// Resolve returns the filter code for name, or FilterUnspecified when the
// name is not in the table.
func (ft *FilterTable) Resolve(name string) int {
	if code, ok := ft.codes[name]; ok {
		return code
	}

	return FilterUnspecified
}
