package main

import "embed"

// configs holds the built-in scene files
//
//go:embed configs
var configs embed.FS
