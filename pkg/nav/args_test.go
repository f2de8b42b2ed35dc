package nav

import "testing"

func TestNormalizeNilYieldsEmpty(t *testing.T) {
	a := Normalize(nil)
	if !a.IsEmpty() {
		t.Errorf("Normalize(nil) = %+v, want empty", a)
	}
}

func TestNormalizeIdentityPassthrough(t *testing.T) {
	in := Args{ID: "P1", Title: "T", Payload: 42}
	out := Normalize(in)
	if out != in {
		t.Errorf("Normalize(Args) = %+v, want %+v unchanged", out, in)
	}

	// Pointer form is dereferenced but otherwise untouched.
	out = Normalize(&in)
	if out != in {
		t.Errorf("Normalize(*Args) = %+v, want %+v", out, in)
	}

	var nilArgs *Args
	if a := Normalize(nilArgs); !a.IsEmpty() {
		t.Errorf("Normalize((*Args)(nil)) = %+v, want empty", a)
	}
}

func TestNormalizeKeyedMap(t *testing.T) {
	a := Normalize(map[string]any{"id": "P1", "title": "Widget", "data": []int{1, 2}})
	if a.ID != "P1" {
		t.Errorf("ID = %q, want P1", a.ID)
	}
	if a.Title != "Widget" {
		t.Errorf("Title = %q, want Widget", a.Title)
	}
	if p, ok := a.Payload.([]int); !ok || len(p) != 2 {
		t.Errorf("Payload = %v, want []int{1,2}", a.Payload)
	}
}

func TestNormalizeKeyedMapMissingFields(t *testing.T) {
	a := Normalize(map[string]any{"id": "P2"})
	if a.ID != "P2" || a.Title != "" || a.Payload != nil {
		t.Errorf("partial map normalized to %+v", a)
	}

	// Non-string id/title values are ignored, not coerced.
	a = Normalize(map[string]any{"id": 7, "title": true})
	if a.ID != "" || a.Title != "" {
		t.Errorf("non-string keys lifted: %+v", a)
	}
}

func TestNormalizeMapWithoutRecognizedKeys(t *testing.T) {
	// Any map[string]any takes the destructuring rule, even one carrying
	// none of the recognized keys — it must not fall through to the
	// payload rule and come back wrapped whole.
	a := Normalize(map[string]any{"color": "red", "qty": 3})
	if !a.IsEmpty() {
		t.Errorf("unrecognized-key map normalized to %+v, want empty", a)
	}
}

func TestNormalizeArbitraryValueBecomesPayload(t *testing.T) {
	type order struct{ N int }
	cases := []any{"plain string", 99, order{N: 3}, []string{"a"}}
	for _, in := range cases {
		a := Normalize(in)
		if a.ID != "" || a.Title != "" {
			t.Errorf("Normalize(%v) lifted fields: %+v", in, a)
		}
		if a.Payload == nil {
			t.Errorf("Normalize(%v) dropped payload", in)
		}
	}
}

func TestNormalizeArgsBeforeMapRule(t *testing.T) {
	// An Args value must win the type switch before any destructuring; a
	// payload that happens to be a keyed map must survive intact.
	in := Args{Payload: map[string]any{"id": "nested"}}
	out := Normalize(in)
	if out.ID != "" {
		t.Errorf("already-canonical value was re-destructured: %+v", out)
	}
	m, ok := out.Payload.(map[string]any)
	if !ok || m["id"] != "nested" {
		t.Errorf("payload map mangled: %+v", out.Payload)
	}
}
