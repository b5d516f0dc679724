package registry

import "context"

// StaticRegistry is an in-memory Registry fake for tests: a fixed table
// of answers, no I/O, no timing.
type StaticRegistry struct {
	Taxpayers      map[string]Taxpayer
	Establishments map[string]bool // key: nit+"|"+code
	Persons        map[string]Person

	// Unavailable, if set, makes every method return ErrUnavailable —
	// for exercising the engine's REGISTRY_UNAVAILABLE path.
	Unavailable bool
}

// NewStaticRegistry returns an empty StaticRegistry ready for population.
func NewStaticRegistry() *StaticRegistry {
	return &StaticRegistry{
		Taxpayers:      map[string]Taxpayer{},
		Establishments: map[string]bool{},
		Persons:        map[string]Person{},
	}
}

func (s *StaticRegistry) NitExists(ctx context.Context, nit string) (bool, error) {
	if s.Unavailable {
		return false, ErrUnavailable
	}
	_, ok := s.Taxpayers[nit]
	return ok, nil
}

func (s *StaticRegistry) GetTaxpayer(ctx context.Context, nit string) (*Taxpayer, error) {
	if s.Unavailable {
		return nil, ErrUnavailable
	}
	tp, ok := s.Taxpayers[nit]
	if !ok {
		return nil, nil
	}
	return &tp, nil
}

func (s *StaticRegistry) EstablishmentActive(ctx context.Context, nit, code string, atDate string) (bool, error) {
	if s.Unavailable {
		return false, ErrUnavailable
	}
	return s.Establishments[nit+"|"+code], nil
}

func (s *StaticRegistry) ValidateCUI(ctx context.Context, cui string) (*Person, error) {
	if s.Unavailable {
		return nil, ErrUnavailable
	}
	p, ok := s.Persons[cui]
	if !ok {
		return &Person{Valid: false}, nil
	}
	return &p, nil
}
