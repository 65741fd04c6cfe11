package engine

import (
	"testing"

	"github.com/lixenwraith/chaos-merge/parameter"
)

func addPlain(s *BodyStore, x float64) BodyID {
	i := s.add(bodyInit{x: x, r: 1, group: parameter.NoGroup})
	return s.ids[i]
}

func TestBodyStoreCompactKeepsIDsStable(t *testing.T) {
	s := NewBodyStore(4)
	ids := make([]BodyID, 6)
	for i := range ids {
		ids[i] = addPlain(s, float64(i))
	}

	s.kill(1)
	s.kill(4)
	s.kill(4) // double kill is a no-op
	if s.Live() != 4 {
		t.Errorf("Expected 4 live before compact, got %d", s.Live())
	}
	if _, ok := s.Lookup(ids[1]); ok {
		t.Error("Expected dead body hidden from Lookup before compact")
	}

	s.Compact()
	if s.Len() != 4 || s.Live() != 4 {
		t.Fatalf("Expected 4 slots, got len %d live %d", s.Len(), s.Live())
	}
	for k, id := range ids {
		i, ok := s.Lookup(id)
		if k == 1 || k == 4 {
			if ok {
				t.Errorf("Expected id %d removed", id)
			}
			continue
		}
		if !ok {
			t.Fatalf("Expected id %d present", id)
		}
		if s.x[i] != float64(k) {
			t.Errorf("Expected id %d to keep x %d, got %v", id, k, s.x[i])
		}
	}
}

func TestBodyStoreIDsNeverReused(t *testing.T) {
	s := NewBodyStore(2)
	first := addPlain(s, 0)
	s.Clear()
	second := addPlain(s, 0)
	if second == first {
		t.Errorf("Expected fresh id after Clear, got %d twice", first)
	}
	if s.Len() != 1 {
		t.Errorf("Expected 1 slot, got %d", s.Len())
	}
}

func TestBodyStoreCompactAll(t *testing.T) {
	s := NewBodyStore(2)
	for i := 0; i < 5; i++ {
		addPlain(s, float64(i))
	}
	for i := 0; i < 5; i++ {
		s.kill(i)
	}
	s.Compact()
	if s.Len() != 0 || s.Live() != 0 {
		t.Errorf("Expected empty store, got len %d live %d", s.Len(), s.Live())
	}
	if len(s.slot) != 0 {
		t.Errorf("Expected empty id map, got %d", len(s.slot))
	}
}
