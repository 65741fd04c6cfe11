package status

// Service exposes a Registry through the service hub so every surface shares one
type Service struct {
	reg *Registry
}

func NewService() *Service { return &Service{reg: NewRegistry()} }

func (s *Service) Name() string           { return "status" }
func (s *Service) Dependencies() []string { return nil }

// Init records the variant name when one is passed
func (s *Service) Init(args ...any) error {
	for _, a := range args {
		if v, ok := a.(string); ok {
			s.reg.Strings.Get(MetricVariant).Store(v)
		}
	}
	return nil
}

func (s *Service) Start() error { return nil }
func (s *Service) Stop() error  { return nil }

func (s *Service) Registry() *Registry { return s.reg }
