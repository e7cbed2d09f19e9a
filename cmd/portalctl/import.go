package main

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"placement-portal/internal/domain/company"
	"placement-portal/internal/infrastructure/cache"
	"placement-portal/internal/repository"
	"placement-portal/internal/usecase"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import company rows from a CSV file",
	Long:  "Reads a CSV file whose header names company table columns and upserts every row. Empty cells are left out of the row.",
	RunE:  runImport,
}

var (
	importFile   string
	importDryRun bool
)

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "Path to the CSV file (required)")
	importCmd.Flags().BoolVar(&importDryRun, "dry-run", false, "Validate rows without writing them")

	if err := importCmd.MarkFlagRequired("file"); err != nil {
		panic(fmt.Sprintf("failed to mark file flag as required: %v", err))
	}

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, _ []string) error {
	f, err := os.Open(importFile)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", importFile, err)
	}
	defer f.Close()

	rows, err := readCSVRows(f)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", importFile, err)
	}

	out := cmd.OutOrStdout()
	if importDryRun {
		valid, errs := usecase.NewImportUsecase(nil, nil, nil, nil).Validate(rows)
		return writeJSON(out, usecase.ImportResult{
			Received: len(rows),
			Skipped:  len(rows) - len(valid),
			Errors:   errs,
		})
	}

	cfg, logger, err := loadEnv()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	db, err := connect(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	rc := cache.NewRedis(cmd.Context(), cfg.Redis, logger)
	defer rc.Close()

	uc := usecase.NewImportUsecase(repository.NewPostgresCompanyRepository(db), rc, nil, logger)
	start := time.Now()
	res, err := uc.ImportRows(cmd.Context(), rows)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "import finished in %s\n", time.Since(start).Round(time.Millisecond))
	return writeJSON(out, res)
}

// readCSVRows turns a CSV with a header line into company rows. Header names
// are trimmed and empty cells are skipped.
func readCSVRows(r io.Reader) ([]company.Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty file")
		}
		return nil, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}

	rows := make([]company.Row, 0)
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) > len(header) {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: %d fields for %d columns", line, len(rec), len(header))
		}
		row := make(company.Row, len(rec))
		for i, v := range rec {
			if v == "" {
				continue
			}
			row[header[i]] = v
		}
		rows = append(rows, row)
	}
	if len(rows) > usecase.MaxImportRows {
		return nil, fmt.Errorf("%d rows exceeds the limit of %d", len(rows), usecase.MaxImportRows)
	}
	return rows, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
