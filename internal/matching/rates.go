package matching

// RateBand is the low/medium/high hourly market rate for one job
// category.
type RateBand struct {
	Low    float64
	Medium float64
	High   float64
}

// DefaultRateBand applies to any category without market data.
var DefaultRateBand = RateBand{Low: 15, Medium: 25, High: 35}

// RateTable maps a job category to its market rate band. Lookups for
// unknown categories fall back to DefaultRateBand instead of failing.
type RateTable map[string]RateBand

// BuiltinRates covers the categories the product has shipped data for
// so far. The table is deliberately sparse: real market data is loaded
// through the rates repository, not hardcoded here.
func BuiltinRates() RateTable {
	return RateTable{
		"Software Engineer": {Low: 25, Medium: 45, High: 65},
		"Designer":          {Low: 20, Medium: 35, High: 50},
	}
}

func (t RateTable) Lookup(category string) RateBand {
	if band, ok := t[category]; ok {
		return band
	}
	return DefaultRateBand
}
