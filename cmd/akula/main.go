package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/tbcd/akula/akula"
	"github.com/tbcd/akula/cmd/utils"
	"github.com/tbcd/akula/params"
)

const (
	clientIdentifier = "akula" // Client identifier
)

var app = &cli.App{
	Name:    clientIdentifier,
	Usage:   "the akula command line interface",
	Version: params.Version,
	Flags: []cli.Flag{
		configFileFlag,
		utils.DataDirFlag,
		utils.ChainFlag,
		utils.DatabaseCacheFlag,
		utils.DownloadWindowFlag,
		utils.PreverifiedHashesFileFlag,
		utils.VerbosityFlag,
		utils.LogFileFlag,
	},
	Before: setupLogging,
	Action: akulaMain,
	Commands: []*cli.Command{
		versionCommand,
	},
}

var versionCommand = &cli.Command{
	Name:  "version",
	Usage: "Print version numbers",
	Action: func(ctx *cli.Context) error {
		fmt.Println(clientIdentifier, params.Version)
		return nil
	},
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// akulaMain is the main entry point: it creates the service from the loaded
// configuration, starts the sync pipeline and blocks until interrupted.
func akulaMain(ctx *cli.Context) error {
	cfg := loadBaseConfig(ctx)

	backend, err := akula.New(&cfg.Node)
	if err != nil {
		utils.Fatalf("Failed to create the service: %v", err)
	}
	fmt.Print(backend.ChainSpec().Description())

	if err := backend.Start(); err != nil {
		utils.Fatalf("Failed to start the service: %v", err)
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc

	return backend.Stop()
}
