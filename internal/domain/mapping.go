package domain

// MappingStore mirrors ~/.config/semantic/config.yaml.
//
// It is built exactly once, either by FromSelections at wizard commit or by
// the config store when loading a persisted file, and is never mutated
// afterwards. The translation engine treats it as read-only.
type MappingStore struct {
	General  GeneralPrefs      `yaml:"general"`
	Shells   ShellPrefs        `yaml:"shells"`
	Commands map[string]string `yaml:"commands"`
	Paths    map[string]string `yaml:"paths"`
}

// GeneralPrefs records which style presets produced the mapping tables.
// Provenance only; translation never consults these.
type GeneralPrefs struct {
	CommandStyle string `yaml:"command_style"`
	FolderStyle  string `yaml:"folder_style"`
}

// ShellPrefs captures shell-related settings.
type ShellPrefs struct {
	Default    string   `yaml:"default"`
	Enabled    []string `yaml:"enabled"`
	OnNewShell string   `yaml:"on_new_shell"`
}

// NewShellPolicy enumerates what to do when a new shell is installed.
type NewShellPolicy string

const (
	PolicyAutoSetup NewShellPolicy = "auto-setup"
	PolicyNotify    NewShellPolicy = "notify"
	PolicyIgnore    NewShellPolicy = "ignore"
)

// FromSelections builds a store from the four wizard selections, picking the
// command and path tables that match the chosen styles.
func FromSelections(shell, commandStyle, folderStyle, onNewShell string) MappingStore {
	return MappingStore{
		General: GeneralPrefs{
			CommandStyle: commandStyle,
			FolderStyle:  folderStyle,
		},
		Shells: ShellPrefs{
			Default:    shell,
			Enabled:    []string{shell},
			OnNewShell: onNewShell,
		},
		Commands: CommandPreset(StyleFromString(commandStyle)),
		Paths:    PathPreset(StyleFromString(folderStyle)),
	}
}
