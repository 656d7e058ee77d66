package main

import (
	"errors"
	"os"

	log "github.com/sirupsen/logrus"

	"tableflip.dev/lanes/pkg/commands"
	"tableflip.dev/lanes/pkg/commands/options"
)

func main() {
	if err := commands.New().Execute(); err != nil {
		var reported *options.ReportedError
		if errors.As(err, &reported) {
			os.Exit(1)
		}
		log.Fatalf("error during command execution: %v", err)
	}
}
