package diff

import (
	"strings"
	"testing"
)

func TestCompute_Headers(t *testing.T) {
	out := Compute("a=1\n", "a=2\n", "config.txt")
	if !strings.HasPrefix(out, "--- a/config.txt\n+++ b/config.txt\n") {
		t.Errorf("Compute() missing expected headers, got:\n%s", out)
	}
}

func TestCompute_NoChangeProducesEmptyBody(t *testing.T) {
	out := Compute("same\n", "same\n", "f.txt")
	if out != "--- a/f.txt\n+++ b/f.txt\n" {
		t.Errorf("Compute(no change) = %q, want header only", out)
	}
}

func TestCompute_ContainsHunkMarker(t *testing.T) {
	old := "line1\nline2\nline3\n"
	new := "line1\nCHANGED\nline3\n"
	out := Compute(old, new, "f.txt")
	if !strings.Contains(out, "@@") {
		t.Errorf("Compute() = %q, want an @@ hunk header", out)
	}
}

func TestCompute_LFOnly(t *testing.T) {
	out := Compute("a\n", "b\n", "f.txt")
	if strings.Contains(out, "\r\n") {
		t.Errorf("Compute() contains CRLF, want LF-only output")
	}
}

func TestColourise_WrapsAddedAndRemovedLines(t *testing.T) {
	d := "--- a/f\n+++ b/f\n@@ -1,1 +1,1 @@\n-old\n+new\n"
	out := Colourise(d)
	if !strings.Contains(out, "\033[31m-old\033[0m") {
		t.Errorf("Colourise() = %q, want red -old", out)
	}
	if !strings.Contains(out, "\033[32m+new\033[0m") {
		t.Errorf("Colourise() = %q, want green +new", out)
	}
	if !strings.Contains(out, "--- a/f") || strings.Contains(out, "\033[31m--- a/f") {
		t.Errorf("Colourise() should not colour the --- header line")
	}
}
