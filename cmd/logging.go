/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/posyandu/logging"
)

var appLogger = logging.Logger(logging.SourceApp)
var exportLogger = logging.Logger(logging.SourceExport)
var requestStdLogger = logging.StdLogger(logging.SourceWebRequest)

// LoggingFlags are global flags read by ConfigureLogging.
var LoggingFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:    "debug",
		Sources: cli.EnvVars("POSYANDU_DEBUG"),
		Usage:   "enable debug logging",
	},
	&cli.StringFlag{
		Name:    "log-format",
		Value:   logging.FormatLogfmt,
		Sources: cli.EnvVars("POSYANDU_LOG_FORMAT"),
		Usage:   "log output format (logfmt, json or text)",
	},
}

// ConfigureLogging is the root command's Before hook.
func ConfigureLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	err := logging.Configure(logging.Options{
		Debug:  cmd.Bool("debug"),
		Format: cmd.String("log-format"),
	})

	return ctx, err
}
