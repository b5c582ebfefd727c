package main

import (
	"flag"

	"github.com/DjordjeVuckovic/calc/internal/suite"
)

type cliConfig struct {
	SuitePath string
	Output    string
	Workers   int
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.SuitePath, "suite", "configs/suites/core.yaml", "Path to suite YAML")
	flag.StringVar(&cfg.Output, "output", "", "Output path for a JSON report")
	flag.IntVar(&cfg.Workers, "workers", suite.DefaultWorkers, "Number of cases evaluated concurrently")

	flag.Parse()
	return cfg
}
