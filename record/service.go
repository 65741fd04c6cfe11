package record

import (
	"fmt"
	"log"
	"os"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/chaos-merge/engine"
	"github.com/lixenwraith/chaos-merge/status"
)

// Service wraps a Writer over a file as a service.Service
// An empty path leaves the recorder disabled and Record becomes a no-op
type Service struct {
	mu       sync.Mutex
	path     string
	header   Header
	file     *os.File
	writer   *Writer
	failed   bool
	recorded *atomic.Int64
}

// NewService creates a disabled recorder
func NewService() *Service {
	return &Service{}
}

// Name implements service.Service
func (s *Service) Name() string {
	return "recorder"
}

// Dependencies implements service.Service
func (s *Service) Dependencies() []string {
	return []string{"status"}
}

// Init implements service.Service
// Accepted args: string output path, Header session info, *status.Registry for metrics
func (s *Service) Init(args ...any) error {
	reg := (*status.Registry)(nil)
	for _, arg := range args {
		switch v := arg.(type) {
		case string:
			s.path = v
		case Header:
			s.header = v
		case *status.Registry:
			reg = v
		}
	}
	if reg == nil {
		reg = status.NewRegistry()
	}
	s.recorded = reg.Ints.Get(status.MetricFramesRecorded)
	return nil
}

// Start implements service.Service, opens the output file
func (s *Service) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.path == "" || s.writer != nil {
		return nil
	}
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("recorder: %w", err)
	}
	w, err := NewWriter(f, s.header)
	if err != nil {
		f.Close()
		return err
	}
	s.file, s.writer = f, w
	log.Printf("recorder: session %s -> %s", w.Header().Session, s.path)
	return nil
}

// Stop implements service.Service, flushes and closes the file
func (s *Service) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writer == nil {
		return nil
	}
	err := s.writer.Flush()
	if cerr := s.file.Close(); err == nil {
		err = cerr
	}
	log.Printf("recorder: %d frames written", s.writer.Frames())
	s.file, s.writer = nil, nil
	return err
}

// Enabled reports whether frames are being written
func (s *Service) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writer != nil && !s.failed
}

// Record appends a frame; the first write error is logged and disables recording
func (s *Service) Record(f engine.Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.writer == nil || s.failed {
		return
	}
	if err := s.writer.WriteFrame(f); err != nil {
		log.Printf("recorder: %v, recording stopped", err)
		s.failed = true
		return
	}
	s.recorded.Add(1)
}
