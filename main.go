package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dmeyer/txn-classify/cmd/classify"
	"dmeyer/txn-classify/cmd/learn"
	"dmeyer/txn-classify/cmd/process"
	"dmeyer/txn-classify/cmd/root"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// Load environment variables silently first, before any logging.
	loadEnvSilently()

	// Configure the global log level so every logger created afterwards
	// inherits it.
	configureLogLevelDirectly()

	root.Init()

	root.Cmd.AddCommand(process.Cmd)
	root.Cmd.AddCommand(classify.Cmd)
	root.Cmd.AddCommand(learn.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus instances
func configureLogLevelDirectly() {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
