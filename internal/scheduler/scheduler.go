package scheduler

import (
	"encoding/json"
	"fmt"
	"io"
	"log"

	"ChartPull/internal/fetcher"
	"ChartPull/internal/recorder"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the fetch-print-record cycle, either once or on a cron
// schedule when watch mode is configured.
type Scheduler struct {
	Cron     *cron.Cron
	Fetcher  *fetcher.Fetcher
	Recorder recorder.Recorder
	Query    fetcher.Query
	Out      io.Writer
}

// NewScheduler creates a new Scheduler writing JSON lines to out.
func NewScheduler(f *fetcher.Fetcher, rec recorder.Recorder, q fetcher.Query, out io.Writer) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Fetcher:  f,
		Recorder: rec,
		Query:    q,
		Out:      out,
	}
}

// Register adds the fetch task under the given cron expression.
func (s *Scheduler) Register(cronExpr string) error {
	if _, err := s.Cron.AddFunc(cronExpr, s.task); err != nil {
		return fmt.Errorf("register fetch task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

func (s *Scheduler) task() {
	if err := s.RunNow(); err != nil {
		log.Printf("[ERROR] scheduled fetch: %v", err)
	}
}

// RunNow fetches once, prints the raw response as a single JSON line, and
// records the outcome. The response is never inspected or transformed.
func (s *Scheduler) RunNow() error {
	resp, err := s.Fetcher.Fetch(s.Query)
	if err != nil {
		s.record(0, err)
		return err
	}

	line, err := json.Marshal(resp)
	if err != nil {
		s.record(0, err)
		return fmt.Errorf("marshal response: %w", err)
	}
	fmt.Fprintln(s.Out, string(line))

	s.record(len(line), nil)
	return nil
}

func (s *Scheduler) record(size int, fetchErr error) {
	evt := &recorder.FetchEvent{
		Symbol:       s.Query.Symbol,
		Interval:     s.Query.Interval,
		Range:        s.Query.Range,
		Endpoint:     fetcher.EndpointStockChart,
		ResponseSize: size,
		OK:           fetchErr == nil,
	}
	if fetchErr != nil {
		evt.ErrText = fetchErr.Error()
	}
	if err := s.Recorder.RecordFetch(evt); err != nil {
		log.Printf("[ERROR] record fetch: %v", err)
	}
}
