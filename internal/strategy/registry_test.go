package strategy

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func registryIDs(r *Registry) []string {
	var ids []string
	for _, s := range r.Strategies() {
		ids = append(ids, s.ID())
	}
	return ids
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()

	want := []string{"JSON_SCHEMA", "JSON_ONLY", "B64_ONLY", "YAML_ONLY", "MARKDOWN_ONLY"}
	if diff := cmp.Diff(want, registryIDs(r)); diff != "" {
		t.Errorf("DefaultRegistry() ids mismatch (-want +got):\n%s", diff)
	}

	for _, id := range []string{(&JSONStrategy{}).ID(), (&Base64Strategy{}).ID()} {
		if !r.Contains(id) {
			t.Errorf("DefaultRegistry() missing %s", id)
		}
	}
}

func TestNewRegistry(t *testing.T) {
	t.Run("duplicate id", func(t *testing.T) {
		_, err := NewRegistry(&JSONStrategy{}, &JSONStrategy{})
		if !errors.Is(err, ErrDuplicateID) {
			t.Errorf("NewRegistry() error = %v, want %v", err, ErrDuplicateID)
		}
	})

	t.Run("nil strategy", func(t *testing.T) {
		if _, err := NewRegistry(&JSONStrategy{}, nil); err == nil {
			t.Error("NewRegistry() with nil strategy returned no error")
		}
	})

	t.Run("empty", func(t *testing.T) {
		r, err := NewRegistry()
		if err != nil {
			t.Fatalf("NewRegistry() error = %v", err)
		}
		if got := r.Check("anything"); len(got) != 0 {
			t.Errorf("Check() on empty registry = %v, want no records", got)
		}
	})

	t.Run("keeps order", func(t *testing.T) {
		r, err := NewRegistry(&Base64Strategy{}, &JSONStrategy{})
		if err != nil {
			t.Fatalf("NewRegistry() error = %v", err)
		}
		if diff := cmp.Diff([]string{"B64_ONLY", "JSON_ONLY"}, registryIDs(r)); diff != "" {
			t.Errorf("NewRegistry() ids mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestRegistry_Check(t *testing.T) {
	r := DefaultRegistry()

	inputs := []string{
		`{"hello": "world"}`,
		"aGVsbG8gd29ybGQ=",
		"asoidjfas'odifujasd[ofiuasdf",
		"",
		"# Title\n\n- item",
		"key: value",
		"\x00\xff\xfe",
	}

	for _, input := range inputs {
		records := r.Check(input)
		if len(records) != r.Len() {
			t.Fatalf("Check(%q) returned %d records, want %d", input, len(records), r.Len())
		}
		for i, rec := range records {
			if rec.Family != r.Strategies()[i].Family() {
				t.Errorf("Check(%q)[%d].Family = %v, want registry order", input, i, rec.Family)
			}
			if rec.Confidence < 0 || rec.Confidence > 1 {
				t.Errorf("Check(%q)[%d].Confidence = %v, out of range", input, i, rec.Confidence)
			}
		}
	}
}

func TestRegistry_CheckScenarios(t *testing.T) {
	r, err := NewRegistry(&JSONStrategy{}, &Base64Strategy{})
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	tests := []struct {
		name  string
		input string
		want  []float64
	}{
		{"json", `{"hello": "world"}`, []float64{1.0, 0.0}},
		{"base64", "aGVsbG8gd29ybGQ=", []float64{0.0, 1.0}},
		{"garbage", "asoidjfas'odifujasd[ofiuasdf", []float64{0.0, 0.0}},
		{"empty", "", []float64{0.0, 0.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []float64
			for _, rec := range r.Check(tt.input) {
				got = append(got, rec.Confidence)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Check(%q) confidences mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestDefaultRegistry_GarbageIsUnsure(t *testing.T) {
	for _, rec := range DefaultRegistry().Check("asoidjfas'odifujasd[ofiuasdf") {
		if rec.Confidence >= 0.1 {
			t.Errorf("%s confidence = %v, want < 0.1", rec.DisplayName, rec.Confidence)
		}
	}
}

func TestRegistry_Get(t *testing.T) {
	r := DefaultRegistry()

	if s := r.Get("B64_ONLY"); s == nil || s.Family() != Base64 {
		t.Errorf("Get(B64_ONLY) = %v, want Base64Strategy", s)
	}
	if s := r.Get("nope"); s != nil {
		t.Errorf("Get(nope) = %v, want nil", s)
	}
}

func TestRegistry_Children(t *testing.T) {
	r := DefaultRegistry()

	children := r.Children("JSON_ONLY")
	if len(children) != 1 || children[0].ID() != "JSON_SCHEMA" {
		t.Errorf("Children(JSON_ONLY) = %v, want [JSON_SCHEMA]", children)
	}
	if got := r.Children("B64_ONLY"); len(got) != 0 {
		t.Errorf("Children(B64_ONLY) = %v, want none", got)
	}
}

func TestRegistry_Contains(t *testing.T) {
	r := DefaultRegistry().Without("YAML_ONLY")

	tests := []struct {
		id   string
		want bool
	}{
		{"JSON_SCHEMA", true},
		{"B64_ONLY", true},
		{"YAML_ONLY", false},
		{"json_only", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := r.Contains(tt.id); got != tt.want {
			t.Errorf("Contains(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestRegistry_Without(t *testing.T) {
	r := DefaultRegistry()
	trimmed := r.Without("JSON_SCHEMA", "MARKDOWN_ONLY", "unknown")

	if diff := cmp.Diff([]string{"JSON_ONLY", "B64_ONLY", "YAML_ONLY"}, registryIDs(trimmed)); diff != "" {
		t.Errorf("Without() ids mismatch (-want +got):\n%s", diff)
	}
	if r.Len() != 5 {
		t.Errorf("Without() modified the original registry, Len() = %d", r.Len())
	}
	if got := r.Without(registryIDs(r)...).Len(); got != 0 {
		t.Errorf("Without(all).Len() = %d, want 0", got)
	}
}

func TestRegistry_StrategiesIsCopy(t *testing.T) {
	r := DefaultRegistry()
	s := r.Strategies()
	s[0] = &stubStrategy{id: "intruder"}

	if r.Strategies()[0].ID() != "JSON_SCHEMA" {
		t.Error("Strategies() exposed the registry's backing slice")
	}
}
