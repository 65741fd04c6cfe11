package service

import (
	"errors"
	"strings"
	"testing"
)

type fakeService struct {
	name    string
	deps    []string
	log     *[]string
	initErr error
	args    []any
}

func (f *fakeService) Name() string           { return f.name }
func (f *fakeService) Dependencies() []string { return f.deps }
func (f *fakeService) Init(args ...any) error {
	f.args = args
	*f.log = append(*f.log, "init:"+f.name)
	return f.initErr
}
func (f *fakeService) Start() error {
	*f.log = append(*f.log, "start:"+f.name)
	return nil
}
func (f *fakeService) Stop() error {
	*f.log = append(*f.log, "stop:"+f.name)
	return nil
}

func TestHubDependencyOrder(t *testing.T) {
	var log []string
	h := NewHub()
	_ = h.Register(&fakeService{name: "audio", deps: []string{"status"}, log: &log})
	_ = h.Register(&fakeService{name: "status", log: &log})

	if err := h.InitAll(map[string][]any{"audio": {true}}); err != nil {
		t.Fatalf("InitAll failed: %v", err)
	}
	if err := h.StartAll(); err != nil {
		t.Fatalf("StartAll failed: %v", err)
	}
	if err := h.StopAll(); err != nil {
		t.Fatalf("StopAll failed: %v", err)
	}

	want := []string{"init:status", "init:audio", "start:status", "start:audio", "stop:audio", "stop:status"}
	if len(log) != len(want) {
		t.Fatalf("Expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("Expected %s at %d, got %s", want[i], i, log[i])
		}
	}

	audio := MustGet[*fakeService](h, "audio")
	if len(audio.args) != 1 || audio.args[0] != true {
		t.Errorf("Expected audio init args [true], got %v", audio.args)
	}
}

func TestHubDuplicateAndMissing(t *testing.T) {
	var log []string
	h := NewHub()
	if err := h.Register(&fakeService{name: "a", log: &log}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := h.Register(&fakeService{name: "a", log: &log}); err == nil {
		t.Error("Expected duplicate registration error")
	}

	h2 := NewHub()
	_ = h2.Register(&fakeService{name: "b", deps: []string{"ghost"}, log: &log})
	if err := h2.InitAll(nil); err == nil {
		t.Error("Expected unregistered dependency error")
	}
}

func TestHubInitRollback(t *testing.T) {
	var log []string
	boom := errors.New("boom")
	h := NewHub()
	_ = h.Register(&fakeService{name: "a", log: &log})
	_ = h.Register(&fakeService{name: "b", deps: []string{"a"}, log: &log, initErr: boom})

	err := h.InitAll(nil)
	if !errors.Is(err, boom) {
		t.Fatalf("Expected wrapped boom, got %v", err)
	}
	if log[len(log)-1] != "stop:a" {
		t.Errorf("Expected rollback stop of a, got %v", log)
	}
}

func TestHubOrderAndErrors(t *testing.T) {
	var log []string
	h := NewHub()
	_ = h.Register(&fakeService{name: "recorder", deps: []string{"status"}, log: &log})
	_ = h.Register(&fakeService{name: "audio", deps: []string{"status"}, log: &log})
	_ = h.Register(&fakeService{name: "status", log: &log})

	order, err := h.Order()
	if err != nil {
		t.Fatalf("Order failed: %v", err)
	}
	if got := strings.Join(order, ","); got != "status,audio,recorder" {
		t.Errorf("Expected status,audio,recorder, got %s", got)
	}

	if err := h.Register(&fakeService{name: "audio", log: &log}); !errors.Is(err, ErrDuplicate) {
		t.Errorf("Expected ErrDuplicate, got %v", err)
	}

	cyc := NewHub()
	_ = cyc.Register(&fakeService{name: "a", deps: []string{"b"}, log: &log})
	_ = cyc.Register(&fakeService{name: "b", deps: []string{"a"}, log: &log})
	_, err = cyc.Order()
	if !errors.Is(err, ErrCycle) {
		t.Fatalf("Expected ErrCycle, got %v", err)
	}
	if !strings.Contains(err.Error(), "a -> b -> a") {
		t.Errorf("Expected the cycle path in %q", err.Error())
	}

	miss := NewHub()
	_ = miss.Register(&fakeService{name: "b", deps: []string{"ghost"}, log: &log})
	if _, err := miss.Order(); !errors.Is(err, ErrMissing) {
		t.Errorf("Expected ErrMissing, got %v", err)
	}
}
