package profile

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParseColumnSelector(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		kind  SelectorKind
		index int
		label string
	}{
		{"empty", "", SelectorNone, 0, ""},
		{"positive integer is 1-based index", "2", SelectorIndex, 1, ""},
		{"first column", "1", SelectorIndex, 0, ""},
		{"padded integer", " 3 ", SelectorIndex, 2, ""},
		{"zero is a label", "0", SelectorLabel, 0, "0"},
		{"negative is a label", "-1", SelectorLabel, 0, "-1"},
		{"plain label", "name", SelectorLabel, 0, "name"},
		{"decimal is a label", "1.5", SelectorLabel, 0, "1.5"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sel := ParseColumnSelector(tc.raw)
			if sel.Kind() != tc.kind {
				t.Fatalf("expected kind %d, got %d", tc.kind, sel.Kind())
			}
			if idx, ok := sel.Index(); ok && idx != tc.index {
				t.Fatalf("expected index %d, got %d", tc.index, idx)
			}
			if label, ok := sel.Label(); ok && label != tc.label {
				t.Fatalf("expected label %q, got %q", tc.label, label)
			}
			if sel.String() != tc.raw {
				t.Fatalf("expected raw %q to round-trip, got %q", tc.raw, sel.String())
			}
		})
	}
}

func TestSelectorConstructors(t *testing.T) {
	byIdx := ByIndex(2)
	if idx, ok := byIdx.Index(); !ok || idx != 1 {
		t.Fatalf("expected zero-based index 1, got %d %v", idx, ok)
	}
	if byIdx.String() != "2" {
		t.Fatalf("expected raw form 2, got %q", byIdx.String())
	}

	byLabel := ByLabel("age")
	if label, ok := byLabel.Label(); !ok || label != "age" {
		t.Fatalf("expected label age, got %q %v", label, ok)
	}
}

func TestProfileJSONRoundTrip(t *testing.T) {
	idx := 0
	p := Profile{
		RemoveBlankRows:     true,
		TrimPrefixes:        []string{"SKIP", "#"},
		DeleteColumn:        ParseColumnSelector("2"),
		FormatDatetime:      &idx,
		UseFirstRowAsHeader: true,
	}

	data, err := json.Marshal(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var back Profile
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !back.RemoveBlankRows || !back.UseFirstRowAsHeader {
		t.Fatalf("bool fields lost in round trip: %+v", back)
	}
	if len(back.TrimPrefixes) != 2 || back.TrimPrefixes[0] != "SKIP" {
		t.Fatalf("prefixes lost in round trip: %v", back.TrimPrefixes)
	}
	if got, ok := back.DeleteColumn.Index(); !ok || got != 1 {
		t.Fatalf("selector lost in round trip: %+v", back.DeleteColumn)
	}
	if back.FormatDatetime == nil || *back.FormatDatetime != 0 {
		t.Fatalf("format_datetime index 0 lost in round trip: %v", back.FormatDatetime)
	}
}

func TestProfileJSONOmitsUnsetFields(t *testing.T) {
	data, err := json.Marshal(Profile{RemoveBlankRows: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "remove_blank_rows") {
		t.Fatalf("expected remove_blank_rows in %s", text)
	}
	for _, absent := range []string{"trim_prefixes", "delete_column", "format_datetime", "use_first_row_as_header"} {
		if strings.Contains(text, absent) {
			t.Fatalf("expected %s to be omitted when unset, got %s", absent, text)
		}
	}
}

func TestProfileJSONIgnoresUnknownFields(t *testing.T) {
	var p Profile
	err := json.Unmarshal([]byte(`{"remove_blank_rows": true, "future_option": 7}`), &p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !p.RemoveBlankRows {
		t.Fatal("expected remove_blank_rows to be read")
	}
}

func TestValidate(t *testing.T) {
	neg := -1
	zero := 0

	cases := []struct {
		name    string
		profile Profile
		wantErr bool
	}{
		{"empty profile", Profile{}, false},
		{"datetime column zero", Profile{FormatDatetime: &zero}, false},
		{"negative datetime column", Profile{FormatDatetime: &neg}, true},
		{"empty prefix", Profile{TrimPrefixes: []string{"ok", ""}}, true},
		{"normal prefixes", Profile{TrimPrefixes: []string{"a", "b"}}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.profile.Validate()
			if tc.wantErr && err == nil {
				t.Fatal("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestSteps(t *testing.T) {
	idx := 3
	p := Profile{
		RemoveBlankRows: true,
		TrimPrefixes:    []string{"x"},
		DeleteColumn:    ByLabel("notes"),
		FormatDatetime:  &idx,
	}
	steps := p.Steps()
	if len(steps) != 4 {
		t.Fatalf("expected 4 steps, got %d: %v", len(steps), steps)
	}
	if !strings.Contains(steps[2], "notes") {
		t.Fatalf("expected label in step description, got %q", steps[2])
	}

	if got := len(Profile{}.Steps()); got != 0 {
		t.Fatalf("expected no steps for empty profile, got %d", got)
	}
	if !(Profile{}).IsEmpty() {
		t.Fatal("expected empty profile to report IsEmpty")
	}
}
