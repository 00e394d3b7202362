// Package main runs the Eternal Quest goal tracker on the terminal.
package main

import (
	"eternalquest/internal/di"
	"eternalquest/internal/structures"
	"flag"
	"log"
)

func main() {
	var flags structures.CliFlags

	flag.StringVar(&flags.ConfigPath, "c", "config.yaml", "path to the config file")
	flag.BoolVar(&flags.DebugMode, "d", false, "debug logging")
	flag.Parse()

	app, err := di.InitApp(&flags)
	if err != nil {
		log.Fatalf("init: %v", err)
	}
	defer app.Close()

	if err = app.Run(); err != nil {
		log.Printf("run: %v", err)
	}
}
