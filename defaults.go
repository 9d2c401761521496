package main

import (
	"embed"

	"inputhistory/config"
)

//go:embed inputhistory.yaml
var defaults embed.FS

const defaultsName = "inputhistory.yaml"

func loadDefaults() (config.Config, error) {
	return config.Load(defaults, defaultsName)
}
