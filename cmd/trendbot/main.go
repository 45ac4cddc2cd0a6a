package main

import (
	"os"

	"github.com/Andleep/Trend-andleep8/cmd/trendbot/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
