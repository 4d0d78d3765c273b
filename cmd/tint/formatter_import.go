package main

// Blank imports ensure formatter init() registration runs for the CLI binary.
import (
	_ "github.com/alexisbeaulieu97/tint/pkg/sgr/constfmt"
)
