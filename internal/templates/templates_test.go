package templates

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestEnvironment(t *testing.T, files map[string]string) (*Environment, string) {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write template: %v", err)
		}
	}
	return NewEnvironment(root), root
}

func TestLookupAndRender(t *testing.T) {
	env, _ := newTestEnvironment(t, map[string]string{
		"greet.tmpl": "Hello {{.name}}!",
	})

	tpl, err := env.Lookup("greet.tmpl")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}

	out := filepath.Join(t.TempDir(), "out.html")
	if err := tpl.RenderToFile(out, map[string]any{"name": "webgen"}); err != nil {
		t.Fatalf("RenderToFile failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "Hello webgen!" {
		t.Fatalf("unexpected output: %q", data)
	}
}

func TestLookupNestedName(t *testing.T) {
	env, _ := newTestEnvironment(t, map[string]string{
		filepath.Join("partials", "item.tmpl"): "item",
	})
	if _, err := env.Lookup("partials/item.tmpl"); err != nil {
		t.Fatalf("nested lookup failed: %v", err)
	}
}

func TestLookupMissingTemplate(t *testing.T) {
	env, _ := newTestEnvironment(t, nil)
	if _, err := env.Lookup("absent.tmpl"); err == nil {
		t.Fatalf("expected error for missing template")
	}
}

func TestLookupRejectsEscapingName(t *testing.T) {
	env, _ := newTestEnvironment(t, nil)
	for _, name := range []string{"../outside.tmpl", "/etc/passwd", ""} {
		if _, err := env.Lookup(name); err == nil {
			t.Fatalf("expected rejection of name %q", name)
		}
	}
}

func TestRenderMissingBindingFails(t *testing.T) {
	env, _ := newTestEnvironment(t, map[string]string{
		"strict.tmpl": "{{.present}} {{.absent}}",
	})
	tpl, err := env.Lookup("strict.tmpl")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	out := filepath.Join(t.TempDir(), "out.html")
	if err := tpl.RenderToFile(out, map[string]any{"present": "x"}); err == nil {
		t.Fatalf("expected error for missing binding")
	}
}

func TestRenderOverwritesExistingFile(t *testing.T) {
	env, _ := newTestEnvironment(t, map[string]string{
		"v.tmpl": "{{.v}}",
	})
	tpl, err := env.Lookup("v.tmpl")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}

	out := filepath.Join(t.TempDir(), "out.html")
	for _, v := range []string{"one", "two"} {
		if err := tpl.RenderToFile(out, map[string]any{"v": v}); err != nil {
			t.Fatalf("RenderToFile failed: %v", err)
		}
	}
	data, _ := os.ReadFile(out)
	if !strings.Contains(string(data), "two") {
		t.Fatalf("file not overwritten: %q", data)
	}
}
