// Command cubewars-dash prints the analytics dashboard in a terminal
package main

import (
	"os"

	"cubewars/internal/platform/config"
	"cubewars/internal/platform/logger"
)

func main() {
	_ = config.LoadDotenv()
	lo := logger.FromEnv()
	lo.Service = "cubewars-dash"
	lo.Writer = os.Stderr
	logger.Init(lo)

	if err := newRoot(config.New().Prefix("CUBEWARS_DASH_")).Execute(); err != nil {
		os.Exit(1)
	}
}
