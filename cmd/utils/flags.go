// Copyright 2015 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum. If not, see <http://www.gnu.org/licenses/>.

// Package utils contains internal helper functions for akula commands.
package utils

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/tbcd/akula/akula"
	"github.com/tbcd/akula/params"
)

// These are all the command line flags we support.
// If you add to this list, please remember to include the
// flag in the appropriate command definition.
//
// The flags are defined here so their names and help texts
// are the same for all commands.

var (
	// General settings
	DataDirFlag = &cli.StringFlag{
		Name:  "datadir",
		Usage: "Data directory for the chain database (empty = in-memory)",
	}
	ChainFlag = &cli.StringFlag{
		Name:  "chain",
		Usage: "Name of the network to sync",
		Value: params.MainnetChainName,
	}
	DatabaseCacheFlag = &cli.IntFlag{
		Name:  "db.cache",
		Usage: "Megabytes of memory allocated to database caching",
		Value: params.DefaultDatabaseCache,
	}
	DownloadWindowFlag = &cli.Uint64Flag{
		Name:  "sync.window",
		Usage: "Number of blocks covered by in-flight header slices",
		Value: params.DefaultDownloadWindow,
	}
	PreverifiedHashesFileFlag = &cli.StringFlag{
		Name:  "sync.preverified",
		Usage: "File with preverified header hashes (overrides the embedded list)",
	}

	// Logging settings
	VerbosityFlag = &cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=detail",
		Value: 3,
	}
	LogFileFlag = &cli.StringFlag{
		Name:  "log.file",
		Usage: "Write logs to a rotated file",
	}
)

// SetAkulaConfig applies command line flags to the service configuration.
func SetAkulaConfig(ctx *cli.Context, cfg *akula.Config) {
	if ctx.IsSet(DataDirFlag.Name) {
		cfg.DataDir = ctx.String(DataDirFlag.Name)
	}
	if ctx.IsSet(ChainFlag.Name) {
		cfg.Chain = ctx.String(ChainFlag.Name)
	}
	if ctx.IsSet(DatabaseCacheFlag.Name) {
		cfg.DatabaseCache = ctx.Int(DatabaseCacheFlag.Name)
	}
	if ctx.IsSet(DownloadWindowFlag.Name) {
		cfg.DownloadWindow = ctx.Uint64(DownloadWindowFlag.Name)
	}
	if ctx.IsSet(PreverifiedHashesFileFlag.Name) {
		cfg.PreverifiedHashesFile = ctx.String(PreverifiedHashesFileFlag.Name)
	}
}

// Fatalf formats a message to standard error and exits the program.
func Fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Fatal: "+format+"\n", args...)
	os.Exit(1)
}
