package modules

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// newTestStore creates a store over two temp directories and returns it
// with the directories.
func newTestStore(t *testing.T) (*Store, string, string) {
	t.Helper()
	universal := t.TempDir()
	conditional := t.TempDir()
	return NewStore(universal, conditional), universal, conditional
}

func writeModule(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name+".md"), []byte(content), 0o644); err != nil {
		t.Fatalf("setup: write module: %v", err)
	}
}

// --- Store partition ---

func TestIsUniversal(t *testing.T) {
	for _, name := range Universal() {
		if !IsUniversal(name) {
			t.Errorf("IsUniversal(%s) = false, want true", name)
		}
	}
	for _, name := range []string{"props", "state", "api", "made-up"} {
		if IsUniversal(name) {
			t.Errorf("IsUniversal(%s) = true, want false", name)
		}
	}
}

func TestPath_PartitionByName(t *testing.T) {
	s, universal, conditional := newTestStore(t)

	if got := s.Path("architecture"); got != filepath.Join(universal, "architecture.md") {
		t.Errorf("universal path = %s", got)
	}
	if got := s.Path("props"); got != filepath.Join(conditional, "props.md") {
		t.Errorf("conditional path = %s", got)
	}
}

// --- Load ---

func TestLoad_ReadsFromDisk(t *testing.T) {
	s, universal, _ := newTestStore(t)
	writeModule(t, universal, "architecture", "## Section: Architecture\n\nbody")

	got, err := s.Load("architecture")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !strings.Contains(got, "body") {
		t.Errorf("Load = %q, want template body", got)
	}
}

func TestLoad_MissingIsModuleUnavailable(t *testing.T) {
	s, _, _ := newTestStore(t)

	_, err := s.Load("props")
	if !errors.Is(err, ErrModuleUnavailable) {
		t.Fatalf("err = %v, want ErrModuleUnavailable", err)
	}
}

func TestLoad_CacheServesRepeatReads(t *testing.T) {
	s, _, conditional := newTestStore(t)
	writeModule(t, conditional, "props", "## Section: Props\n\nv1")

	first, err := s.Load("props")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	second, err := s.Load("props")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if first != second {
		t.Error("repeat Load should return identical content")
	}
}

// --- Section extraction ---

func TestExtractSection_SectionHeadingToMetadata(t *testing.T) {
	doc := "# Module: props\n\nintro text\n\n## Section: Props\n\n## Props\n\ncontent here\n\n---\n\n## Metadata\n\n- Module: props\n"
	got := ExtractSection(doc)

	if !strings.Contains(got, "content here") {
		t.Errorf("section missing content: %q", got)
	}
	if strings.Contains(got, "intro text") {
		t.Error("section should not include preamble")
	}
	if strings.Contains(got, "Metadata") {
		t.Error("section should not include the metadata block")
	}
	if strings.Contains(got, "## Section:") {
		t.Error("section should not include the Section heading itself")
	}
}

func TestExtractSection_RuleWithoutMetadataIsKept(t *testing.T) {
	doc := "## Section: X\n\nbefore\n\n---\n\nafter the rule\n"
	got := ExtractSection(doc)
	if !strings.Contains(got, "after the rule") {
		t.Errorf("a --- not followed by ## Metadata must not terminate the section: %q", got)
	}
}

func TestExtractSection_ToEndOfDocument(t *testing.T) {
	doc := "## Section: X\n\nall the way down\n"
	got := ExtractSection(doc)
	if got != "all the way down" {
		t.Errorf("got %q", got)
	}
}

func TestExtractSection_FallbackFirstHeading(t *testing.T) {
	doc := "preamble\n\n## Props\n\ncontent\n"
	got := ExtractSection(doc)
	if !strings.HasPrefix(got, "## Props") {
		t.Errorf("fallback should start at the first ## heading: %q", got)
	}
	if strings.Contains(got, "preamble") {
		t.Error("fallback should drop the preamble")
	}
}

func TestExtractSection_NoHeadingsWholeDocument(t *testing.T) {
	doc := "just text\nno headings\n"
	got := ExtractSection(doc)
	if got != "just text\nno headings" {
		t.Errorf("got %q", got)
	}
}

// --- Embedded defaults ---

func TestWriteDefaults_WritesAllModules(t *testing.T) {
	universal := t.TempDir()
	conditional := t.TempDir()

	written, err := WriteDefaults(universal, conditional)
	if err != nil {
		t.Fatalf("WriteDefaults: %v", err)
	}
	if len(written) == 0 {
		t.Fatal("no templates written")
	}

	for _, name := range Universal() {
		if _, err := os.Stat(filepath.Join(universal, name+".md")); err != nil {
			t.Errorf("universal module %s missing: %v", name, err)
		}
	}
	for _, name := range []string{"props", "state", "events", "api"} {
		if _, err := os.Stat(filepath.Join(conditional, name+".md")); err != nil {
			t.Errorf("conditional module %s missing: %v", name, err)
		}
	}
}

func TestWriteDefaults_NeverClobbersExisting(t *testing.T) {
	universal := t.TempDir()
	conditional := t.TempDir()
	writeModule(t, conditional, "props", "user edited")

	if _, err := WriteDefaults(universal, conditional); err != nil {
		t.Fatalf("WriteDefaults: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(conditional, "props.md"))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "user edited" {
		t.Error("WriteDefaults must not overwrite an existing template")
	}
}

func TestDefaults_EverySectionExtractable(t *testing.T) {
	universal := t.TempDir()
	conditional := t.TempDir()
	written, err := WriteDefaults(universal, conditional)
	if err != nil {
		t.Fatalf("WriteDefaults: %v", err)
	}

	s := NewStore(universal, conditional)
	for _, name := range written {
		section, err := s.Section(name)
		if err != nil {
			t.Errorf("Section(%s): %v", name, err)
			continue
		}
		if section == "" {
			t.Errorf("Section(%s) is empty", name)
		}
		if strings.Contains(section, "## Metadata") {
			t.Errorf("Section(%s) leaks the metadata block", name)
		}
	}
}
