package fetcher

// Default query parameters used when positional arguments are omitted.
const (
	DefaultSymbol   = "2330.TW"
	DefaultInterval = "1d"
	DefaultRange    = "1y"
)

// region is fixed for every outbound query.
const region = "TW"

// EndpointStockChart is the named provider capability this tool calls.
const EndpointStockChart = "YahooFinance/get_stock_chart"

// Query describes a single stock chart request.
type Query struct {
	Symbol               string
	Interval             string
	Range                string
	Region               string
	IncludeAdjustedClose bool
}

// DefaultQuery returns a query populated with the built-in defaults.
func DefaultQuery() Query {
	return Query{
		Symbol:               DefaultSymbol,
		Interval:             DefaultInterval,
		Range:                DefaultRange,
		Region:               region,
		IncludeAdjustedClose: true,
	}
}

// FromArgs overlays up to three positional arguments [symbol] [interval]
// [range] on the defaults. Values are not validated; the provider decides
// what it accepts.
func FromArgs(args []string) Query {
	q := DefaultQuery()
	if len(args) >= 1 {
		q.Symbol = args[0]
	}
	if len(args) >= 2 {
		q.Interval = args[1]
	}
	if len(args) >= 3 {
		q.Range = args[2]
	}
	return q
}

// Caller defines the external capability: call a named API endpoint with a
// query mapping and get back a structured result.
type Caller interface {
	CallAPI(endpoint string, query map[string]any) (map[string]any, error)
}

// Fetcher forwards chart queries to a Caller.
type Fetcher struct {
	Caller Caller
}

// NewFetcher creates a new Fetcher.
func NewFetcher(caller Caller) *Fetcher {
	return &Fetcher{Caller: caller}
}

// Fetch performs exactly one outbound call and returns the provider's
// response unmodified. Errors from the Caller propagate as-is.
func (f *Fetcher) Fetch(q Query) (map[string]any, error) {
	return f.Caller.CallAPI(EndpointStockChart, map[string]any{
		"symbol":               q.Symbol,
		"interval":             q.Interval,
		"range":                q.Range,
		"region":               q.Region,
		"includeAdjustedClose": q.IncludeAdjustedClose,
	})
}
