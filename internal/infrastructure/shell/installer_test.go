package shell_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/semanticos/semantic/internal/infrastructure/shell"
	"github.com/semanticos/semantic/internal/pkg/logger"
)

func newTestInstaller(t *testing.T) (*shell.Installer, string) {
	t.Helper()
	home := t.TempDir()
	configDir := filepath.Join(home, ".config", "semantic")
	return shell.NewInstaller(logger.New(false), home, configDir), home
}

func TestInstaller_InstallWritesScriptAndRCLine(t *testing.T) {
	installer, home := newTestInstaller(t)

	res, err := installer.Install("zsh", false)
	if err != nil {
		t.Fatalf("install: %v", err)
	}

	script, err := os.ReadFile(res.ScriptPath)
	if err != nil {
		t.Fatalf("hook script not written: %v", err)
	}
	if !strings.Contains(string(script), "semantic init") {
		t.Errorf("hook script does not invoke semantic init:\n%s", script)
	}

	rc, err := os.ReadFile(filepath.Join(home, ".zshrc"))
	if err != nil {
		t.Fatalf("rc file not written: %v", err)
	}
	if !strings.Contains(string(rc), res.ScriptPath) {
		t.Errorf("rc file does not source the hook script:\n%s", rc)
	}
	if !res.RCUpdated || !res.ScriptUpdated {
		t.Errorf("result flags = %+v, want both updated", res)
	}
}

func TestInstaller_InstallIsIdempotent(t *testing.T) {
	installer, home := newTestInstaller(t)

	if _, err := installer.Install("bash", false); err != nil {
		t.Fatalf("first install: %v", err)
	}
	res, err := installer.Install("bash", false)
	if err != nil {
		t.Fatalf("second install: %v", err)
	}
	if res.RCUpdated {
		t.Error("second install rewrote the rc line")
	}

	rc, _ := os.ReadFile(filepath.Join(home, ".bashrc"))
	if got := strings.Count(string(rc), res.ScriptPath); got != 2 {
		// the source line mentions the path twice; more means duplicates
		t.Errorf("rc file mentions script path %d times, want 2:\n%s", got, rc)
	}
}

func TestInstaller_UninstallRemovesRCLine(t *testing.T) {
	installer, home := newTestInstaller(t)

	if _, err := installer.Install("fish", false); err != nil {
		t.Fatalf("install: %v", err)
	}
	res, err := installer.Uninstall("fish")
	if err != nil {
		t.Fatalf("uninstall: %v", err)
	}
	if !res.RCUpdated {
		t.Error("uninstall did not report rc update")
	}

	rc, _ := os.ReadFile(filepath.Join(home, ".config", "fish", "config.fish"))
	if strings.Contains(string(rc), res.ScriptPath) {
		t.Errorf("rc file still sources the hook:\n%s", rc)
	}
}

func TestInstaller_Status(t *testing.T) {
	installer, _ := newTestInstaller(t)

	before := installer.Status("zsh")
	if before.ScriptExists || before.LinePresent {
		t.Errorf("fresh home reports integration present: %+v", before)
	}

	if _, err := installer.Install("zsh", false); err != nil {
		t.Fatalf("install: %v", err)
	}
	after := installer.Status("zsh")
	if !after.ScriptExists || !after.LinePresent {
		t.Errorf("installed shell reports missing integration: %+v", after)
	}
}

func TestInstaller_UnsupportedShell(t *testing.T) {
	installer, _ := newTestInstaller(t)

	if _, err := installer.Install("tcsh", false); err == nil {
		t.Error("expected error for unsupported shell")
	}
	status := installer.Status("tcsh")
	if status.Error == "" {
		t.Error("status for unsupported shell has no error")
	}
}
