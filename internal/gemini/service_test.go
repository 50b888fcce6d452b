package gemini

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestServiceWebSearch_InvalidQueryNeverSpawns(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "invoked")
	script := writeScript(t, dir, "gemini", fmt.Sprintf(`touch %q; echo out`, marker))
	t.Setenv(EnvBin, script)

	svc := NewService()
	tests := []struct {
		name  string
		query string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"too long", strings.Repeat("x", MaxQueryLen+1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.WebSearch(context.Background(), tt.query, "", "")
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("got %v, want ErrInvalidInput", err)
			}
		})
	}
	if _, err := os.Stat(marker); err == nil {
		t.Error("subprocess spawned for invalid input")
	}
}

func TestServiceWebSearch_ExecutableNotFound(t *testing.T) {
	t.Setenv(EnvBin, "")
	t.Setenv("PATH", t.TempDir())

	_, err := NewService().WebSearch(context.Background(), "a query", "", "")
	if !errors.Is(err, ErrExecutableNotFound) {
		t.Fatalf("got %v, want ErrExecutableNotFound", err)
	}
}

func TestServiceWebSearch_CommandShape(t *testing.T) {
	// Fake gemini that echoes its argv, one per line.
	dir := t.TempDir()
	script := writeScript(t, dir, "gemini", `printf '%s\n' "$@"`)
	t.Setenv(EnvBin, script)

	out, err := NewService().WebSearch(context.Background(), "look up ```stuff``` for $5", "my-model", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"-m", "my-model", "-o", "text", "--allowed-tools", "google_web_search"} {
		if !strings.Contains(out, want+"\n") {
			t.Errorf("argv missing %q:\n%s", want, out)
		}
	}
	if !strings.Contains(out, "'''stuff'''") {
		t.Errorf("query not sanitized in prompt:\n%s", out)
	}
	if !strings.Contains(out, `\$5`) {
		t.Errorf("dollar not escaped in prompt:\n%s", out)
	}
	if !strings.Contains(out, "Act as a research assistant.") {
		t.Errorf("prompt wrapper missing:\n%s", out)
	}
}

func TestServiceCodeReview_PathOutsideRoot(t *testing.T) {
	root := t.TempDir()
	outside := filepath.Join(t.TempDir(), "secret.go")
	if err := os.WriteFile(outside, []byte("package secret\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	svc := NewService(WithRoot(root))
	_, err := svc.CodeReview(context.Background(), outside, "review this", "", "")
	if !errors.Is(err, ErrAccessDenied) {
		t.Fatalf("got %v, want ErrAccessDenied", err)
	}
}

func TestServiceCodeReview_NonTextNeverSpawns(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "blob.bin")
	if err := os.WriteFile(path, []byte{0xde, 0xad, 0xbe, 0xef, 0xff}, 0o644); err != nil {
		t.Fatal(err)
	}
	// Bin resolution would fail loudly if reached; NotText must win first.
	t.Setenv(EnvBin, "")
	t.Setenv("PATH", t.TempDir())

	svc := NewService(WithRoot(root))
	_, err := svc.CodeReview(context.Background(), path, "review this", "", "")
	if !errors.Is(err, ErrNotText) {
		t.Fatalf("got %v, want ErrNotText", err)
	}
}

func TestServiceCodeReview_PipesContent(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "main.go")
	if err := os.WriteFile(path, []byte("package main\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	script := writeScript(t, t.TempDir(), "gemini", `cat`)
	t.Setenv(EnvBin, script)

	svc := NewService(WithRoot(root))
	out, err := svc.CodeReview(context.Background(), path, "review this", "", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "package main\n" {
		t.Errorf("stdin content = %q", out)
	}
}

func TestServiceCodeReview_FallbackAcrossModels(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "main.go")
	if err := os.WriteFile(path, []byte("package main\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	script := writeScript(t, dir, "gemini", `if [ "$2" = "flaky" ]; then
  echo "quota exceeded" >&2
  exit 1
fi
echo reviewed`)
	t.Setenv(EnvBin, script)

	svc := NewService(WithRoot(root))
	out, err := svc.CodeReview(context.Background(), path, "review this", "flaky", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "reviewed\n" {
		t.Errorf("got %q", out)
	}
}
