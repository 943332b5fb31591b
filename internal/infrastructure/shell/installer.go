package shell

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	rootassets "github.com/semanticos/semantic/assets"
	"github.com/semanticos/semantic/internal/domain"
	"github.com/semanticos/semantic/internal/pkg/filesystem"
	"github.com/semanticos/semantic/internal/ports"
)

// Installer deploys the integration hook script and manages the source line
// in the shell's rc file.
type Installer struct {
	home      string // user home, injectable for tests
	configDir string // semantic config dir, injectable for tests
	logger    ports.Logger
}

// NewInstaller builds an installer. Empty home/configDir resolve from the OS.
func NewInstaller(logger ports.Logger, home, configDir string) *Installer {
	if home == "" {
		home = filesystem.UserHomeDir()
	}
	if configDir == "" {
		configDir = filepath.Join(filesystem.UserConfigDir(), "semantic")
	}
	return &Installer{home: home, configDir: configDir, logger: logger}
}

// Install writes the hook script for the given shell (auto-detected when
// empty) and ensures the rc file sources it.
func (i *Installer) Install(shell string, force bool) (domain.ShellInstallResult, error) {
	name := i.normalize(shell)
	scriptContent, err := hookFor(name)
	if err != nil {
		return domain.ShellInstallResult{}, err
	}
	scriptPath, rcFile := i.paths(name)
	if scriptPath == "" || rcFile == "" {
		return domain.ShellInstallResult{}, fmt.Errorf("unsupported shell: %s", shell)
	}
	if err := os.MkdirAll(filepath.Dir(scriptPath), 0o755); err != nil {
		return domain.ShellInstallResult{}, err
	}
	if err := os.WriteFile(scriptPath, []byte(scriptContent), 0o644); err != nil {
		return domain.ShellInstallResult{}, err
	}

	rcUpdated, err := ensureRCLine(rcFile, sourceLine(name, scriptPath), force)
	if err != nil {
		return domain.ShellInstallResult{}, err
	}

	return domain.ShellInstallResult{
		Shell:         name,
		ScriptPath:    scriptPath,
		RCFile:        rcFile,
		ScriptUpdated: true,
		RCUpdated:     rcUpdated,
	}, nil
}

// Uninstall removes the source line from the rc file. The script itself is
// retained as a backup.
func (i *Installer) Uninstall(shell string) (domain.ShellInstallResult, error) {
	name := i.normalize(shell)
	scriptPath, rcFile := i.paths(name)
	if scriptPath == "" || rcFile == "" {
		return domain.ShellInstallResult{}, fmt.Errorf("unsupported shell: %s", shell)
	}
	updated, err := removeRCLine(rcFile, sourceLine(name, scriptPath))
	if err != nil {
		return domain.ShellInstallResult{}, err
	}
	return domain.ShellInstallResult{
		Shell:      name,
		ScriptPath: scriptPath,
		RCFile:     rcFile,
		RCUpdated:  updated,
	}, nil
}

// Status reports current integration state.
func (i *Installer) Status(shell string) domain.ShellStatus {
	name := i.normalize(shell)
	scriptPath, rcFile := i.paths(name)
	status := domain.ShellStatus{
		Shell:      name,
		ScriptPath: scriptPath,
		RCFile:     rcFile,
	}
	if scriptPath == "" || rcFile == "" {
		status.Error = "unsupported shell"
		return status
	}

	if info, err := os.Stat(scriptPath); err == nil && info.Mode().IsRegular() {
		status.ScriptExists = true
	}
	if contents, err := os.ReadFile(rcFile); err == nil {
		status.LinePresent = strings.Contains(string(contents), sourceLine(name, scriptPath))
	}
	return status
}

// DetectShell inspects the SHELL env var.
func (i *Installer) DetectShell() string {
	return os.Getenv("SHELL")
}

func (i *Installer) normalize(shell string) domain.ShellName {
	if shell == "" {
		shell = i.DetectShell()
	}
	return Normalize(shell)
}

func hookFor(shell domain.ShellName) (string, error) {
	switch shell {
	case domain.ShellFish:
		return rootassets.FishHook, nil
	case domain.ShellBash:
		return rootassets.BashHook, nil
	case domain.ShellZsh:
		return rootassets.ZshHook, nil
	default:
		return "", errors.New("unsupported shell")
	}
}

func (i *Installer) paths(shell domain.ShellName) (string, string) {
	switch shell {
	case domain.ShellFish:
		return filepath.Join(i.configDir, "shell", "fish.fish"),
			filepath.Join(i.home, ".config", "fish", "config.fish")
	case domain.ShellBash:
		return filepath.Join(i.configDir, "shell", "bash.sh"), filepath.Join(i.home, ".bashrc")
	case domain.ShellZsh:
		return filepath.Join(i.configDir, "shell", "zsh.sh"), filepath.Join(i.home, ".zshrc")
	default:
		return "", ""
	}
}

func ensureRCLine(path, line string, force bool) (bool, error) {
	contents, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return false, err
	}
	if errors.Is(err, os.ErrNotExist) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return false, err
		}
		if err := os.WriteFile(path, []byte(headerComment()+line+"\n"), 0o644); err != nil {
			return false, err
		}
		return true, nil
	}
	if strings.Contains(string(contents), line) && !force {
		return false, nil
	}
	lines := strings.Split(string(contents), "\n")
	var filtered []string
	for _, existing := range lines {
		if strings.Contains(existing, line) {
			continue
		}
		filtered = append(filtered, existing)
	}
	filtered = append(filtered, line)
	final := strings.Join(filtered, "\n")
	if !strings.HasSuffix(final, "\n") {
		final += "\n"
	}
	return true, os.WriteFile(path, []byte(final), 0o644)
}

func removeRCLine(path, line string) (bool, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	lines := strings.Split(string(contents), "\n")
	var filtered []string
	removed := false
	for _, existing := range lines {
		if strings.Contains(existing, line) {
			removed = true
			continue
		}
		filtered = append(filtered, existing)
	}
	if !removed {
		return false, nil
	}
	final := strings.Join(filtered, "\n")
	if !strings.HasSuffix(final, "\n") {
		final += "\n"
	}
	return true, os.WriteFile(path, []byte(final), 0o644)
}

func sourceLine(shell domain.ShellName, scriptPath string) string {
	if shell == domain.ShellFish {
		return fmt.Sprintf("test -f %s; and source %s", scriptPath, scriptPath)
	}
	return fmt.Sprintf("[ -f %s ] && source %s", scriptPath, scriptPath)
}

func headerComment() string {
	return "# Added by semantic shell install\n"
}

var _ ports.ShellIntegrator = (*Installer)(nil)
