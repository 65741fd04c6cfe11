package manifest

import (
	"testing"

	"github.com/lixenwraith/chaos-merge/record"
	"github.com/lixenwraith/chaos-merge/service"
	"github.com/lixenwraith/chaos-merge/status"
)

func TestBuildHub(t *testing.T) {
	RegisterServices()

	hub, err := BuildHub(ActiveServices())
	if err != nil {
		t.Fatalf("BuildHub failed: %v", err)
	}
	names := hub.Names()
	if len(names) != len(ActiveServices()) {
		t.Fatalf("Expected %d services, got %v", len(ActiveServices()), names)
	}

	reg := service.MustGet[*status.Service](hub, "status").Registry()
	err = hub.InitAll(map[string][]any{
		"status":   {"canvas"},
		"audio":    {true, reg},
		"recorder": {"", record.Header{}, reg},
	})
	if err != nil {
		t.Fatalf("InitAll failed: %v", err)
	}
	if got := reg.Strings.Get(status.MetricVariant).Load(); got != "canvas" {
		t.Errorf("Expected variant canvas, got %q", got)
	}
}

func TestBuildHubUnknownService(t *testing.T) {
	RegisterServices()
	if _, err := BuildHub([]string{"status", "telepathy"}); err == nil {
		t.Error("Expected error for unregistered service")
	}
}
