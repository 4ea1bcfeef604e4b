package chrono

// The accepted strptime patterns, in matching order. The order is part of the
// API: date-only forms run before datetime forms before time-only forms, and
// compact numeric forms before punctuated ones, so that the first match is
// always the most specific reading of an ambiguous string. Append only; never
// reorder.

type patternKind int

const (
	kindDate patternKind = iota
	kindDateTime
	kindTime
)

type pattern struct {
	layout string
	kind   patternKind
}

var patterns = []pattern{
	// date-only
	{"%Y%m%d", kindDate},
	{"%Y-%m-%d", kindDate},
	{"%Y/%m/%d", kindDate},
	{"%Y.%m.%d", kindDate},
	{"%d.%m.%Y", kindDate},

	// datetime, compact numeric
	{"%Y%m%d_%H%M%S", kindDateTime},
	{"%Y%m%d-%H%M%S", kindDateTime},
	{"%Y%m%dT%H%M%S", kindDateTime},
	{"%Y%m%d %H%M%S", kindDateTime},
	{"%Y%m%d%H%M%S", kindDateTime},

	// datetime, space separated
	{"%Y-%m-%d %H:%M", kindDateTime},
	{"%Y-%m-%d %H:%M:%S", kindDateTime},
	{"%Y-%m-%d %H:%M:%S.%f", kindDateTime},
	{"%Y-%m-%d %H:%M:%S,%f", kindDateTime},
	{"%Y/%m/%d %H:%M", kindDateTime},
	{"%Y/%m/%d %H:%M:%S", kindDateTime},
	{"%Y/%m/%d %H:%M:%S.%f", kindDateTime},
	{"%Y.%m.%d %H:%M", kindDateTime},
	{"%Y.%m.%d %H:%M:%S", kindDateTime},
	{"%d.%m.%Y %H:%M", kindDateTime},
	{"%d.%m.%Y %H:%M:%S", kindDateTime},

	// datetime, T separated
	{"%Y-%m-%dT%H:%M", kindDateTime},
	{"%Y-%m-%dT%H:%M:%S", kindDateTime},
	{"%Y-%m-%dT%H:%M:%S.%f", kindDateTime},
	{"%Y-%m-%dT%H:%M:%S,%f", kindDateTime},

	// time-only, compact numeric first
	{"%H%M%S", kindTime},
	{"%H:%M", kindTime},
	{"%H:%M:%S", kindTime},
	{"%H:%M:%S.%f", kindTime},
	{"%H:%M:%S,%f", kindTime},
	{"%H.%M.%S", kindTime},
	{"%I:%M %p", kindTime},
	{"%I:%M:%S %p", kindTime},
	{"%I:%M%p", kindTime},
}

// Patterns returns the accepted strptime patterns in matching order.
func Patterns() []string {
	out := make([]string, len(patterns))
	for i, p := range patterns {
		out[i] = p.layout
	}
	return out
}
