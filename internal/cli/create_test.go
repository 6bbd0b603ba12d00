package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

// stubEditor installs a shell script as $EDITOR that overwrites the scratch
// file with the given template text.
func stubEditor(t *testing.T, templateText string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("editor stub requires a POSIX shell")
	}

	script := "#!/bin/sh\ncat > \"$1\" <<'NIRMAN_EOF'\n" + templateText + "NIRMAN_EOF\n"
	path := filepath.Join(t.TempDir(), "editor.sh")
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("writing editor stub: %v", err)
	}

	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("EDITOR", path)
}

// chdir changes into dir for the duration of the test, mirroring the
// t.Chdir helper that exists in newer Go releases.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getting working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("changing directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restoring working directory: %v", err)
		}
	})
}

func TestRunCreateEndToEnd(t *testing.T) {
	stubEditor(t, "// Project: demo\n"+
		"// Libraries: left-pad\n"+
		"// File: src/index.js\n"+
		"console.log(\"hi\");\n")
	chdir(t, t.TempDir())

	var out, errOut bytes.Buffer
	createCmd.SetOut(&out)
	createCmd.SetErr(&errOut)

	if err := runCreate(createCmd, []string{"demo"}); err != nil {
		t.Fatalf("runCreate() error: %v\nstderr: %s", err, errOut.String())
	}

	// Declared file written with trimmed content and trailing newline.
	data, err := os.ReadFile(filepath.Join("demo", "src", "index.js"))
	if err != nil {
		t.Fatalf("reading generated file: %v", err)
	}
	if string(data) != "console.log(\"hi\");\n" {
		t.Errorf("index.js = %q, want %q", string(data), "console.log(\"hi\");\n")
	}

	// Manifest patched with name and dependency.
	raw, err := os.ReadFile(filepath.Join("demo", "package.json"))
	if err != nil {
		t.Fatalf("reading package.json: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("parsing package.json: %v", err)
	}
	if doc["name"] != "demo" {
		t.Errorf("name = %v, want %q", doc["name"], "demo")
	}
	deps, _ := doc["dependencies"].(map[string]any)
	if deps["left-pad"] != "latest" {
		t.Errorf("dependencies = %v, want left-pad at latest", deps)
	}

	// Scratch file removed on success.
	if _, err := os.Stat(filepath.Join("demo", scratchFileName)); !os.IsNotExist(err) {
		t.Errorf("scratch file still present (err=%v)", err)
	}

	if !strings.Contains(out.String(), "src/index.js") {
		t.Errorf("summary missing written file:\n%s", out.String())
	}
}

func TestRunCreateEmptyTemplate(t *testing.T) {
	// A template with no recognized lines completes: empty manifest written,
	// no project files, no error.
	stubEditor(t, "nothing to see here\n")
	chdir(t, t.TempDir())

	createCmd.SetOut(&bytes.Buffer{})
	createCmd.SetErr(&bytes.Buffer{})

	if err := runCreate(createCmd, []string{"blank"}); err != nil {
		t.Fatalf("runCreate() error: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join("blank", "package.json"))
	if err != nil {
		t.Fatalf("reading package.json: %v", err)
	}
	if strings.TrimSpace(string(raw)) != "{}" {
		t.Errorf("package.json = %q, want empty object", raw)
	}
}

func TestRunCreateReportsFileFailures(t *testing.T) {
	stubEditor(t, "// File: blocker\n"+
		"occupies the path\n"+
		"// File: blocker/inner.txt\n"+
		"cannot be written\n"+
		"// File: ok.txt\n"+
		"fine\n")
	chdir(t, t.TempDir())

	var errOut bytes.Buffer
	createCmd.SetOut(&bytes.Buffer{})
	createCmd.SetErr(&errOut)

	err := runCreate(createCmd, []string{"partial"})
	if err == nil {
		t.Fatal("expected summary error for failed file")
	}
	if !strings.Contains(errOut.String(), "blocker/inner.txt") {
		t.Errorf("stderr missing failed path:\n%s", errOut.String())
	}

	// Later records still materialized.
	if _, statErr := os.Stat(filepath.Join("partial", "ok.txt")); statErr != nil {
		t.Errorf("ok.txt not written: %v", statErr)
	}
}

func TestRunCreateEditorFailureAborts(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("editor stub requires a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "editor.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 3\n"), 0755); err != nil {
		t.Fatal(err)
	}
	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("EDITOR", path)
	chdir(t, t.TempDir())

	if err := runCreate(createCmd, []string{"aborted"}); err == nil {
		t.Fatal("expected error for non-zero editor exit")
	}
	// No manifest written when the editor fails.
	if _, err := os.Stat(filepath.Join("aborted", "package.json")); !os.IsNotExist(err) {
		t.Errorf("package.json should not exist (err=%v)", err)
	}
}
