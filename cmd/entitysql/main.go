package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/suparena/entitysql"
	"github.com/suparena/entitysql/config"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
	configFlag  = flag.String("config", "", "Validate and print a YAML config file")
)

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		info := entitysql.GetVersionInfo()
		fmt.Printf("EntitySQL version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	if *configFlag == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("storage path:       %s\n", cfg.StoragePath)
	fmt.Printf("auto create schema: %v\n", cfg.AutoCreateSchema)
	fmt.Printf("verbose logging:    %v\n", cfg.VerboseLogging)
	if len(cfg.Entities) > 0 {
		fmt.Println("entities:")
		for _, name := range cfg.Entities {
			fmt.Printf("  - %s\n", name)
		}
	}
}
