package population

import "testing"

func TestState_Validate(t *testing.T) {
	valid := State{Generation: 2, PopulationSize: 10, Males: 4, Females: 6, ColorblindMales: 1, ColorblindFemales: 1, CarrierFemales: 5}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid state, got %v", err)
	}

	broken := map[string]State{
		"size mismatch":       {PopulationSize: 9, Males: 4, Females: 6},
		"colorblind males":    {PopulationSize: 10, Males: 4, Females: 6, ColorblindMales: 5},
		"female overlap":      {PopulationSize: 10, Males: 4, Females: 6, ColorblindFemales: 3, CarrierFemales: 4},
		"negative generation": {Generation: -1},
		"negative count":      {PopulationSize: 0, Males: -1, Females: 1},
		"negative carriers":   {PopulationSize: 2, Males: 1, Females: 1, CarrierFemales: -1},
	}
	for name, s := range broken {
		if err := s.Validate(); err == nil {
			t.Errorf("%s: expected validation error for %+v", name, s)
		}
	}
}

func TestState_Derived(t *testing.T) {
	s := State{PopulationSize: 10, Males: 5, Females: 5, ColorblindMales: 2, ColorblindFemales: 1}
	if s.Colorblind() != 3 {
		t.Errorf("expected 3 colorblind, got %d", s.Colorblind())
	}
	if s.Extinct() {
		t.Error("populated state reported extinct")
	}
	if !(State{Generation: 4}).Extinct() {
		t.Error("empty state should be extinct")
	}
}
