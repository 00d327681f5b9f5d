package cmd

import "testing"

func TestDiff(t *testing.T) {
	t.Run("previews without writing", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeFile("file.txt", "a=1\n")

		out := env.run("diff", "file.txt", "a=1", "a=2")
		env.contains(out, "-a=1")
		env.contains(out, "+a=2")

		got := env.readFile("file.txt")
		if got != "a=1\n" {
			t.Fatalf("diff must not write; got %q", got)
		}
	})

	t.Run("reports not found without dumping the file", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeFile("file.txt", "a=1\n")

		out, err := env.runErr("diff", "file.txt", "nope", "nope2")
		if err == nil {
			t.Fatal("expected NotFound failure")
		}
		if len(out) > 200 {
			t.Fatalf("error output should be a short summary, got %d bytes", len(out))
		}
	})
}
