package editor

import (
	"runtime"
	"testing"

	"github.com/spf13/viper"
)

func TestResolve(t *testing.T) {
	t.Run("default fallback", func(t *testing.T) {
		viper.Reset()
		t.Setenv("EDITOR", "")
		want := "vi"
		if runtime.GOOS == "windows" {
			want = "notepad"
		}
		if got := Resolve(); got != want {
			t.Errorf("Resolve() = %q, want %q", got, want)
		}
	})

	t.Run("EDITOR wins over default", func(t *testing.T) {
		viper.Reset()
		t.Setenv("EDITOR", "nano")
		if got := Resolve(); got != "nano" {
			t.Errorf("Resolve() = %q, want %q", got, "nano")
		}
	})

	t.Run("config wins over EDITOR", func(t *testing.T) {
		viper.Reset()
		t.Cleanup(viper.Reset)
		t.Setenv("EDITOR", "nano")
		viper.Set("editor", "hx")
		if got := Resolve(); got != "hx" {
			t.Errorf("Resolve() = %q, want %q", got, "hx")
		}
	})
}

func TestOpenMissingEditor(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.Set("editor", "definitely-not-an-editor-binary")

	if err := Open(t.TempDir() + "/scratch.txt"); err == nil {
		t.Error("expected error for missing editor binary")
	}
}
