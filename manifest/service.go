package manifest

import (
	"fmt"

	"github.com/lixenwraith/chaos-merge/audio"
	"github.com/lixenwraith/chaos-merge/record"
	"github.com/lixenwraith/chaos-merge/registry"
	"github.com/lixenwraith/chaos-merge/service"
	"github.com/lixenwraith/chaos-merge/status"
)

// RegisterServices registers all service factories
func RegisterServices() {
	registry.RegisterService("status", func() service.Service {
		return status.NewService()
	})

	registry.RegisterService("audio", func() service.Service {
		return audio.NewService()
	})

	registry.RegisterService("recorder", func() service.Service {
		return record.NewService()
	})
}

// ActiveServices returns the ordered list of services to instantiate
func ActiveServices() []string {
	return []string{
		"status",
		"audio",
		"recorder",
	}
}

// BuildHub instantiates the named services into a new hub
func BuildHub(names []string) (*service.Hub, error) {
	hub := service.NewHub()
	for _, name := range names {
		factory, err := registry.Services.Require(name)
		if err != nil {
			return nil, fmt.Errorf("build hub: %w", err)
		}
		if err := hub.Register(factory()); err != nil {
			return nil, err
		}
	}
	return hub, nil
}
