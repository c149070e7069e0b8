// Package main is the entry point for the wow-renovate-data application.
package main

import (
	"github.com/RagedUnicorn/wow-renovate-data/cmd"
	"github.com/RagedUnicorn/wow-renovate-data/config"
	"github.com/RagedUnicorn/wow-renovate-data/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
