package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/data-alchemy/backend/constants"
	"github.com/data-alchemy/backend/internal/core"
	"github.com/data-alchemy/backend/internal/export"
	"github.com/data-alchemy/backend/internal/progress"
	"github.com/data-alchemy/backend/internal/reader"
	repo "github.com/data-alchemy/backend/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		file      = flag.String("file", "", "CSV or Excel file to ingest (required)")
		dbPath    = flag.String("db", "", "SQLite database path (defaults to in-memory)")
		exportFmt = flag.String("export", "", "export format after ingestion: csv or xlsx")
		outDir    = flag.String("out", ".", "directory for the exported file")
	)
	flag.Parse()

	if *file == "" {
		printError("Error: --file is required\n")
		os.Exit(1)
	}
	fileType, ok := constants.FileTypeForPath(*file)
	if !ok {
		printError("Error: unsupported file type %q\n", filepath.Ext(*file))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	dsn := *dbPath
	if dsn == "" {
		dsn = "file:alchemy?mode=memory&cache=shared"
	}
	entc, err := repo.OpenSQLite(dsn, logger)
	if err != nil {
		printError("Error: opening database: %v\n", err)
		os.Exit(1)
	}
	defer entc.Close()

	if err := entc.Schema.Create(ctx); err != nil {
		printError("Error: migrating schema: %v\n", err)
		os.Exit(1)
	}

	datasetsRepo := repo.NewDatasetRepository(entc, logger)
	columnsRepo := repo.NewColumnRepository(entc, logger)
	rowsRepo := repo.NewRowRepository(entc, logger)
	valuesRepo := repo.NewValueRepository(entc, logger)

	name := strings.TrimSuffix(filepath.Base(*file), filepath.Ext(*file))
	dataset, err := datasetsRepo.Create(ctx, &repo.CreateDatasetRequest{
		Name:     name,
		FilePath: *file,
		FileType: fileType,
	})
	if err != nil {
		printError("Error: creating dataset: %v\n", err)
		os.Exit(1)
	}

	table, err := reader.Open(*file, fileType)
	if err != nil {
		printError("Error: opening source: %v\n", err)
		os.Exit(1)
	}
	defer table.Close()

	processor := core.NewProcessor(logger, datasetsRepo, columnsRepo, rowsRepo, valuesRepo)
	result, err := processor.Run(ctx, dataset, table, func(u progress.Update) {
		if u.Stage == core.StageChunkComplete {
			logger.Info("progress", "percent", u.Percent, "processed_rows", u.ProcessedRows)
		}
	})
	if err != nil {
		printError("Error: processing failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("ingested %d rows, %d columns\n", result.TotalRows, result.TotalColumns)
	columns, err := columnsRepo.ListByDataset(ctx, dataset.ID)
	if err != nil {
		printError("Error: listing columns: %v\n", err)
		os.Exit(1)
	}
	for _, col := range columns {
		fmt.Printf("  %-30s %s\n", col.Name, col.InferredType)
	}

	if *exportFmt != "" {
		format := constants.FileTypeCSV
		if strings.EqualFold(*exportFmt, "xlsx") {
			format = constants.FileTypeExcel
		}
		exporter := export.NewService(columnsRepo, rowsRepo, *outDir, logger)
		path, err := exporter.Export(ctx, dataset, format)
		if err != nil {
			printError("Error: export failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("exported to %s\n", path)
	}
}
