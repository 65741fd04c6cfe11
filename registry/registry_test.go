package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/lixenwraith/chaos-merge/service"
	"github.com/lixenwraith/chaos-merge/status"
)

func TestRegisterService(t *testing.T) {
	RegisterService("test-status", func() service.Service { return status.NewService() })

	f, ok := GetService("test-status")
	if !ok {
		t.Fatal("Expected registered factory")
	}
	if svc := f(); svc.Name() != "status" {
		t.Errorf("Expected status service, got %s", svc.Name())
	}
	if _, ok := GetService("missing"); ok {
		t.Error("Expected missing factory lookup to fail")
	}
	if !strings.Contains(strings.Join(ServiceNames(), ","), "test-status") {
		t.Errorf("Expected test-status in %v", ServiceNames())
	}
}

func TestCatalogRequire(t *testing.T) {
	c := NewCatalog[int]()
	c.Add("ring", 2)
	c.Add("noise", 1)
	c.Add("ring", 3)

	if v, err := c.Require("ring"); err != nil || v != 3 {
		t.Errorf("Expected 3 and no error, got %d %v", v, err)
	}
	_, err := c.Require("solid")
	if !errors.Is(err, ErrUnknown) {
		t.Fatalf("Expected ErrUnknown, got %v", err)
	}
	if !strings.Contains(err.Error(), "noise, ring") {
		t.Errorf("Expected known names in %q", err.Error())
	}
}
