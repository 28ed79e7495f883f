/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/posyandu/cmd"
	"github.com/humaidq/posyandu/logging"
)

func main() {
	logging.Init()
	logger := logging.Logger(logging.SourceApp)

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("Failed to load .env file", "error", err)
	}

	app := &cli.Command{
		Name:   "posyandu",
		Usage:  "Posyandu - community health post records and status scoring",
		Flags:  cmd.LoggingFlags,
		Before: cmd.ConfigureLogging,
		Commands: []*cli.Command{
			cmd.CmdStart,
			cmd.CmdMigrate,
			cmd.CmdAnalyze,
			cmd.CmdExport,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatal("Command failed", "error", err)
	}
}
