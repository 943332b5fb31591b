package assets

import (
	_ "embed"
)

// BashHook contains the embedded bash integration script.
//
//go:embed hooks/bash.sh
var BashHook string

// ZshHook contains the embedded zsh integration script.
//
//go:embed hooks/zsh.sh
var ZshHook string

// FishHook contains the embedded fish integration script.
//
//go:embed hooks/fish.fish
var FishHook string
