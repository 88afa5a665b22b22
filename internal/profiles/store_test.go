package profiles

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const validProfile = `{
	"name": "Jane Doe",
	"email": "jane@example.com",
	"phone": "+1 555 0100",
	"location": "Denver, CO",
	"experience": [
		{"company": "Acme", "title": "Engineer", "start_date": "2020-01-01", "end_date": "present"}
	],
	"education": [
		{"degree": "BSc", "school": "CU Boulder", "start_year": "2012", "end_year": "2016"}
	]
}`

func writeProfile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name+".json"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestStore_Load(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "jane", validProfile)

	profile, err := NewStore(dir).Load("jane")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if profile.Name != "Jane Doe" {
		t.Errorf("Name = %q, want Jane Doe", profile.Name)
	}
	if len(profile.Experience) != 1 || profile.Experience[0].Company != "Acme" {
		t.Errorf("Experience = %+v", profile.Experience)
	}
}

func TestStore_LoadMissing(t *testing.T) {
	var notFound *NotFoundError
	_, err := NewStore(t.TempDir()).Load("nobody")
	if !errors.As(err, &notFound) {
		t.Fatalf("Load() error = %T, want *NotFoundError", err)
	}
	if notFound.Name != "nobody" {
		t.Errorf("Name = %q, want nobody", notFound.Name)
	}
}

func TestStore_LoadRejectsPathTraversal(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "jane", validProfile)

	for _, name := range []string{"../jane", "sub/jane", ".", "..", ""} {
		var notFound *NotFoundError
		if _, err := NewStore(dir).Load(name); !errors.As(err, &notFound) {
			t.Errorf("Load(%q) error = %v, want *NotFoundError", name, err)
		}
	}
}

func TestStore_LoadInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	writeProfile(t, dir, "broken", `{"name": `)

	if _, err := NewStore(dir).Load("broken"); err == nil {
		t.Fatal("Load() on malformed profile should fail")
	}
}

func TestStore_LoadFailsValidation(t *testing.T) {
	dir := t.TempDir()
	// Missing required name, experience entry missing start_date.
	writeProfile(t, dir, "invalid", `{"experience": [{"company": "Acme"}]}`)

	if _, err := NewStore(dir).Load("invalid"); err == nil {
		t.Fatal("Load() on invalid profile should fail")
	}
}
