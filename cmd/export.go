/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/posyandu/db"
	"github.com/humaidq/posyandu/export"
	"github.com/humaidq/posyandu/scoring"
)

// CmdExport writes monthly CSV reports to disk or to the MinIO archive.
var CmdExport = &cli.Command{
	Name:  "export",
	Usage: "Export monthly reports as CSV",
	Flags: []cli.Flag{
		databaseURLFlag(),
		&cli.StringFlag{
			Name:  "category",
			Usage: "infant, elderly or pregnant (default: all categories)",
		},
		&cli.StringFlag{
			Name:  "month",
			Usage: "report month as YYYY-MM (default: current month)",
		},
		&cli.StringFlag{
			Name:  "output-dir",
			Value: ".",
			Usage: "directory the CSV files are written to",
		},
		&cli.BoolFlag{
			Name:  "upload",
			Usage: "upload to the MinIO report archive instead of writing files",
		},
		&cli.StringFlag{
			Name:    "minio-endpoint",
			Sources: cli.EnvVars("MINIO_ENDPOINT"),
			Usage:   "MinIO host:port",
		},
		&cli.StringFlag{
			Name:    "minio-access-key",
			Sources: cli.EnvVars("MINIO_ACCESS_KEY"),
			Usage:   "MinIO access key",
		},
		&cli.StringFlag{
			Name:    "minio-secret-key",
			Sources: cli.EnvVars("MINIO_SECRET_KEY"),
			Usage:   "MinIO secret key",
		},
		&cli.StringFlag{
			Name:    "minio-bucket",
			Value:   "posyandu-reports",
			Sources: cli.EnvVars("MINIO_BUCKET"),
			Usage:   "bucket for archived reports",
		},
		&cli.StringFlag{
			Name:    "minio-region",
			Sources: cli.EnvVars("MINIO_REGION"),
			Usage:   "bucket region",
		},
		&cli.BoolFlag{
			Name:    "minio-use-ssl",
			Sources: cli.EnvVars("MINIO_USE_SSL"),
			Usage:   "connect to MinIO over TLS",
		},
	},
	Action: exportReports,
}

// exportCategories resolves the --category flag, empty meaning all.
func exportCategories(value string) ([]scoring.Category, error) {
	if value == "" {
		return scoring.Categories, nil
	}

	category, err := scoring.ParseCategory(value)
	if err != nil {
		return nil, err
	}

	return []scoring.Category{category}, nil
}

func exportReports(ctx context.Context, cmd *cli.Command) error {
	databaseURL := cmd.String("database-url")
	if databaseURL == "" {
		return errDatabaseURLRequired
	}

	categories, err := exportCategories(cmd.String("category"))
	if err != nil {
		return err
	}

	month, err := export.ParseMonth(cmd.String("month"), time.Now().UTC())
	if err != nil {
		return err
	}

	var archive *export.Archive

	if cmd.Bool("upload") {
		archive, err = export.NewArchive(ctx, export.ArchiveConfig{
			Endpoint:  cmd.String("minio-endpoint"),
			AccessKey: cmd.String("minio-access-key"),
			SecretKey: cmd.String("minio-secret-key"),
			Bucket:    cmd.String("minio-bucket"),
			Region:    cmd.String("minio-region"),
			UseSSL:    cmd.Bool("minio-use-ssl"),
		})
		if err != nil {
			return err
		}
	}

	if err := db.Init(ctx, databaseURL); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	outputDir := cmd.String("output-dir")

	for _, category := range categories {
		report, count, err := renderReport(ctx, category, month)
		if err != nil {
			return err
		}

		if archive != nil {
			location, err := archive.Upload(ctx, export.ObjectKey(category, month), report)
			if err != nil {
				return err
			}

			exportLogger.Info("Uploaded report", "category", category, "rows", count, "location", location)

			continue
		}

		path := filepath.Join(outputDir, export.FileName(category, month))
		if err := os.WriteFile(path, report, 0o644); err != nil { //nolint:gosec // reports are meant to be shared
			return fmt.Errorf("failed to write %s: %w", path, err)
		}

		exportLogger.Info("Wrote report", "category", category, "rows", count, "path", path)
	}

	return nil
}

func renderReport(ctx context.Context, category scoring.Category, month time.Time) ([]byte, int, error) {
	rows, err := db.ListMeasurementsForPeriod(ctx, category, month)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load %s report: %w", category, err)
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, category, rows); err != nil {
		return nil, 0, err
	}

	return buf.Bytes(), len(rows), nil
}
