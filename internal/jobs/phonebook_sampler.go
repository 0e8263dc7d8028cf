package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// PeopleCounter reports the phonebook size
type PeopleCounter interface {
	Count(ctx context.Context) (int, error)
}

// PeopleGauge receives sampled phonebook sizes
type PeopleGauge interface {
	SetPeople(n int)
}

// PhonebookSampler periodically copies the phonebook size into a gauge
type PhonebookSampler struct {
	counter  PeopleCounter
	gauge    PeopleGauge
	interval time.Duration
	timeout  time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
	running  bool
	mu       sync.Mutex
}

// NewPhonebookSampler creates a new phonebook sampler job
func NewPhonebookSampler(counter PeopleCounter, gauge PeopleGauge, interval time.Duration) *PhonebookSampler {
	if interval == 0 {
		interval = 1 * time.Minute // Default sample every minute
	}
	return &PhonebookSampler{
		counter:  counter,
		gauge:    gauge,
		interval: interval,
		timeout:  10 * time.Second,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the sampler job
func (s *PhonebookSampler) Start() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.mu.Unlock()

	s.wg.Add(1)
	go s.run()
	slog.Info("phonebook sampler started", slog.Duration("interval", s.interval))
}

// Stop gracefully stops the sampler job
func (s *PhonebookSampler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	slog.Info("phonebook sampler stopped")
}

// run is the main loop
func (s *PhonebookSampler) run() {
	defer s.wg.Done()

	// Sample immediately on start
	s.sample()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sample()
		case <-s.stopCh:
			return
		}
	}
}

func (s *PhonebookSampler) sample() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.RunOnce(ctx); err != nil {
		slog.Warn("phonebook sample failed", slog.String("error", err.Error()))
	}
}

// RunOnce samples the phonebook size once (for testing or manual trigger).
// The gauge keeps its previous value when counting fails.
func (s *PhonebookSampler) RunOnce(ctx context.Context) error {
	n, err := s.counter.Count(ctx)
	if err != nil {
		return err
	}
	s.gauge.SetPeople(n)
	return nil
}

// IsRunning returns whether the sampler is running
func (s *PhonebookSampler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
