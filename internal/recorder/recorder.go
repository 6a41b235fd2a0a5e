package recorder

// FetchEvent describes one outbound chart request.
type FetchEvent struct {
	Symbol       string
	Interval     string
	Range        string
	Endpoint     string
	ResponseSize int
	OK           bool
	ErrText      string
}

// Recorder logs outbound fetches for later inspection. It is write-only:
// nothing in the program reads recorded data back.
type Recorder interface {
	RecordFetch(evt *FetchEvent) error
	Close() error
}
