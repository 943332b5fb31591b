package cli

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/semanticos/semantic/internal/app"
	"github.com/semanticos/semantic/internal/domain"
	"github.com/semanticos/semantic/internal/infrastructure/config"
	"github.com/semanticos/semantic/internal/pkg/logger"
)

// fakeRunner records plans instead of spawning.
type fakeRunner struct {
	plans []domain.ExecutionPlan
	code  int
	err   error
}

func (r *fakeRunner) Run(_ context.Context, plan domain.ExecutionPlan) (int, error) {
	r.plans = append(r.plans, plan)
	return r.code, r.err
}

// fakeIntegrator satisfies ports.ShellIntegrator without touching rc files.
type fakeIntegrator struct {
	shell string
}

func (f *fakeIntegrator) Install(shell string, force bool) (domain.ShellInstallResult, error) {
	return domain.ShellInstallResult{Shell: domain.ShellName(shell)}, nil
}

func (f *fakeIntegrator) Uninstall(shell string) (domain.ShellInstallResult, error) {
	return domain.ShellInstallResult{Shell: domain.ShellName(shell)}, nil
}

func (f *fakeIntegrator) Status(shell string) domain.ShellStatus {
	return domain.ShellStatus{Shell: domain.ShellName(shell)}
}

func (f *fakeIntegrator) DetectShell() string { return f.shell }

func testContainer(t *testing.T, runner *fakeRunner) (*app.Container, *config.FileStore) {
	t.Helper()
	store := config.NewFileStore(filepath.Join(t.TempDir(), "config.yaml"))
	return &app.Container{
		Store:      store,
		Runner:     runner,
		Integrator: &fakeIntegrator{shell: "/usr/bin/fish"},
		Logger:     logger.New(false),
	}, store
}

func TestInitCommand_NoConfig(t *testing.T) {
	container, _ := testContainer(t, &fakeRunner{})
	cmd := newInitCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	if !errors.Is(err, domain.ErrConfigUnreadable) {
		t.Errorf("error = %v, want ErrConfigUnreadable", err)
	}
}

func TestInitCommand_PrintsAliases(t *testing.T) {
	container, store := testContainer(t, &fakeRunner{})
	if err := store.Save(domain.FromSelections("bash", "natural", "natural", "ignore")); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	cmd := newInitCommand(container)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "alias goto='cd'") {
		t.Errorf("stdout missing aliases:\n%s", out.String())
	}
}

func TestInitCommand_FallsBackToDetectedShell(t *testing.T) {
	container, store := testContainer(t, &fakeRunner{})
	cfg := domain.FromSelections("", "natural", "natural", "ignore")
	cfg.Shells.Default = ""
	if err := store.Save(cfg); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	cmd := newInitCommand(container)
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	// detected shell is fish; fish alias syntax has no equals sign
	if !strings.Contains(out.String(), "alias goto 'cd'") {
		t.Errorf("stdout not in fish syntax:\n%s", out.String())
	}
}

func TestTranslateCommand_NoArgs(t *testing.T) {
	container, _ := testContainer(t, &fakeRunner{})
	cmd := newTranslateCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err == nil {
		t.Error("expected usage error for missing token")
	}
}

func TestTranslateCommand_RunsPlan(t *testing.T) {
	runner := &fakeRunner{}
	container, store := testContainer(t, runner)
	if err := store.Save(domain.FromSelections("fish", "natural", "natural", "ignore")); err != nil {
		t.Fatal(err)
	}

	cmd := newTranslateCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"list", "-la", "/apps"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(runner.plans) != 1 {
		t.Fatalf("runner invoked %d times, want 1", len(runner.plans))
	}
	plan := runner.plans[0]
	if plan.Program != "ls" {
		t.Errorf("program = %q, want ls", plan.Program)
	}
	// fixed -la from mapping, then the raw -la, then the remapped path
	want := []string{"-la", "-la", "/usr/bin"}
	if len(plan.Args) != len(want) {
		t.Fatalf("args = %v, want %v", plan.Args, want)
	}
	for i := range want {
		if plan.Args[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, plan.Args[i], want[i])
		}
	}
}

func TestTranslateCommand_ForwardsExitCode(t *testing.T) {
	runner := &fakeRunner{code: 3}
	container, store := testContainer(t, runner)
	if err := store.Save(domain.FromSelections("fish", "natural", "natural", "ignore")); err != nil {
		t.Fatal(err)
	}

	cmd := newTranslateCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"list"})

	err := cmd.Execute()
	var exit *domain.ExitError
	if !errors.As(err, &exit) {
		t.Fatalf("error = %v, want ExitError", err)
	}
	if exit.Code != 3 {
		t.Errorf("exit code = %d, want 3", exit.Code)
	}
}

func TestTranslateCommand_UnknownToken(t *testing.T) {
	container, store := testContainer(t, &fakeRunner{})
	if err := store.Save(domain.FromSelections("fish", "natural", "natural", "ignore")); err != nil {
		t.Fatal(err)
	}

	cmd := newTranslateCommand(container)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"frobnicate"})

	err := cmd.Execute()
	var unknown *domain.UnknownCommandError
	if !errors.As(err, &unknown) {
		t.Fatalf("error = %v, want UnknownCommandError", err)
	}
}
