package domain

// Style enumerates the alias naming styles selectable during setup.
type Style string

const (
	StyleNatural     Style = "natural"
	StyleTraditional Style = "traditional"
	StyleVerbose     Style = "verbose"
)

// StyleFromString coerces a style string to a known Style. Unrecognized
// values resolve to traditional rather than failing, so a hand-edited config
// with a typo still translates (identity mappings are the safe default).
func StyleFromString(s string) Style {
	switch Style(s) {
	case StyleNatural:
		return StyleNatural
	case StyleVerbose:
		return StyleVerbose
	default:
		return StyleTraditional
	}
}

// CommandPreset returns the fixed semantic-command table for a style. The
// returned map is a fresh copy; callers may keep it without aliasing state.
func CommandPreset(style Style) map[string]string {
	switch style {
	case StyleNatural:
		return map[string]string{
			"goto":    "cd",
			"back":    "cd ..",
			"list":    "ls -la",
			"delete":  "rm -rf",
			"copy":    "cp -r",
			"move":    "mv",
			"install": "sudo pacman -S",
			"remove":  "sudo pacman -R",
			"update":  "sudo pacman -Syu",
		}
	case StyleVerbose:
		return map[string]string{
			"go-to":           "cd",
			"go-back":         "cd ..",
			"list-files":      "ls -la",
			"delete-file":     "rm -rf",
			"copy-file":       "cp -r",
			"move-file":       "mv",
			"install-package": "sudo pacman -S",
			"remove-package":  "sudo pacman -R",
			"update-system":   "sudo pacman -Syu",
		}
	default:
		// identity mappings, real commands map to themselves
		return map[string]string{
			"cd":     "cd",
			"ls":     "ls",
			"rm":     "rm",
			"cp":     "cp",
			"mv":     "mv",
			"pacman": "pacman",
		}
	}
}

// PathPreset returns the fixed virtual-path table for a style. Traditional
// has no remapping at all.
func PathPreset(style Style) map[string]string {
	switch style {
	case StyleNatural:
		return map[string]string{
			"/apps":     "/usr/bin",
			"/settings": "/etc",
			"/logs":     "/var/log",
		}
	case StyleVerbose:
		return map[string]string{
			"/user/applications": "/usr/bin",
			"/configuration":     "/etc",
			"/system-logs":       "/var/log",
		}
	default:
		return map[string]string{}
	}
}
