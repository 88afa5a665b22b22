package recovery

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

const wellFormed = `{"company":"Acme","jobTitle":"Senior Engineer","title":"Senior Engineer","summary":"s","skills":{"Backend":["Go"]},"experience":[{"title":"Engineer","details":["did things"]}]}`

func mustParse(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err != nil {
		t.Fatalf("recovered bytes are not valid JSON: %v", err)
	}
	return obj
}

func TestRecover_StrictPath(t *testing.T) {
	got, err := Recover(wellFormed)
	if err != nil {
		t.Fatalf("Recover() error = %v", err)
	}
	// A clean object passes through the strict path byte-for-byte.
	if string(got) != wellFormed {
		t.Errorf("Recover() = %q, want input unchanged", got)
	}
}

func TestRecover_FencedWithTrailingComma(t *testing.T) {
	fenced := "```json\n{\"title\":\"T\",\"summary\":\"S\",\"skills\":{\"A\":[\"x\",\"y\",]},\"experience\":[],}\n```"
	clean := `{"title":"T","summary":"S","skills":{"A":["x","y"]},"experience":[]}`

	got, err := Recover(fenced)
	if err != nil {
		t.Fatalf("Recover() error = %v", err)
	}
	if !reflect.DeepEqual(mustParse(t, got), mustParse(t, []byte(clean))) {
		t.Errorf("repaired structure differs from comma-free version:\n%s", got)
	}
}

func TestRecover_LeadInPrefixes(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"here is", "Here is the JSON you asked for:\n" + wellFormed},
		{"here's", "here's: " + wellFormed},
		{"this is", "This is " + wellFormed},
		{"the json is", "The JSON is:\n```\n" + wellFormed + "\n```"},
		{"trailing prose", wellFormed + "\n\nLet me know if you need anything else!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Recover(tt.input)
			if err != nil {
				t.Fatalf("Recover(%q) error = %v", tt.input, err)
			}
			obj := mustParse(t, got)
			if obj["company"] != "Acme" {
				t.Errorf("recovered object lost data: %v", obj)
			}
		})
	}
}

func TestRecover_Refusal(t *testing.T) {
	tests := []string{
		"I'm sorry, but I can't help with that.",
		"I cannot generate this resume.",
		"  I apologize, this request is too complex.",
		"I'M SORRY - no.",
	}

	for _, input := range tests {
		var refusal *RefusalError
		_, err := Recover(input)
		if !errors.As(err, &refusal) {
			t.Errorf("Recover(%q) error = %T, want *RefusalError", input, err)
			continue
		}
		if refusal.Preview == "" {
			t.Error("refusal preview is empty")
		}
	}
}

func TestRecover_RefusalSkipsExtraction(t *testing.T) {
	// Even with an embedded JSON object, a refusal prefix fails immediately.
	input := "I cannot do that, but here is something: " + wellFormed
	var refusal *RefusalError
	if _, err := Recover(input); !errors.As(err, &refusal) {
		t.Fatalf("Recover() error = %T, want *RefusalError", err)
	}
}

func TestRecover_NoObject(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"plain prose", "The model produced no structured output at all."},
		{"only open brace", "some text { never closed"},
		{"only close brace", "} stray"},
		{"braces reversed", "} backwards {"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var parseErr *ParseError
			_, err := Recover(tt.input)
			if !errors.As(err, &parseErr) {
				t.Fatalf("Recover(%q) error = %T, want *ParseError", tt.input, err)
			}
			if !strings.Contains(parseErr.Message, "no JSON object found") {
				t.Errorf("ParseError message = %q", parseErr.Message)
			}
		})
	}
}

func TestRecover_UnrepairableCarriesDiagnostics(t *testing.T) {
	broken := `{"title": "unterminated`
	padding := strings.Repeat("x", 2000)
	input := broken + padding + "}"

	var parseErr *ParseError
	_, err := Recover(input)
	if !errors.As(err, &parseErr) {
		t.Fatalf("Recover() error = %T, want *ParseError", err)
	}
	if parseErr.Length != len(input) {
		t.Errorf("Length = %d, want %d", parseErr.Length, len(input))
	}
	if len(parseErr.Head) != 1000 {
		t.Errorf("Head length = %d, want 1000", len(parseErr.Head))
	}
	if len(parseErr.Tail) != 500 {
		t.Errorf("Tail length = %d, want 500", len(parseErr.Tail))
	}
	if parseErr.Cause == nil {
		t.Error("ParseError should wrap the strict-parse failure")
	}
}

func TestStripWrappers(t *testing.T) {
	in := "```json\n{\"a\":1}\n```"
	if got := stripWrappers(in); got != `{"a":1}` {
		t.Errorf("stripWrappers(%q) = %q", in, got)
	}
}

func TestExtractObject(t *testing.T) {
	text := `noise {"a": {"b": 1}} more noise`
	got, ok := extractObject(text)
	if !ok || got != `{"a": {"b": 1}}` {
		t.Errorf("extractObject() = %q, %v", got, ok)
	}
}
