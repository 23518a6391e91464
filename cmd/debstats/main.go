package main

import (
	"os"

	"github.com/ralt/debstats/internal/cli"
	"github.com/sirupsen/logrus"
)

func main() {
	// Setup logging format
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	rootCmd := cli.NewRootCmd(log, nil)
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
