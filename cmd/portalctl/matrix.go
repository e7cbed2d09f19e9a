package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"placement-portal/internal/config"
	"placement-portal/internal/infrastructure/fixture"
	"placement-portal/internal/repository"
	"placement-portal/internal/service"
	"placement-portal/internal/usecase"

	"github.com/spf13/cobra"
)

var matrixCmd = &cobra.Command{
	Use:   "matrix",
	Short: "Print the skill matrix for a set of companies",
	Long:  "Prints one row per skill and one column per company. Each cell shows the bloom level and level/proficiency, or '-' when the company does not list the skill.",
	RunE:  runMatrix,
}

var (
	matrixIDs    []string
	matrixQuery  string
	matrixSource string
)

func init() {
	matrixCmd.Flags().StringSliceVar(&matrixIDs, "ids", nil, "Company ids in column order (required)")
	matrixCmd.Flags().StringVar(&matrixQuery, "q", "", "Keep skills whose name contains this text")
	matrixCmd.Flags().StringVar(&matrixSource, "source", config.SourceFixture, "Data source: fixture or postgres")

	if err := matrixCmd.MarkFlagRequired("ids"); err != nil {
		panic(fmt.Sprintf("failed to mark ids flag as required: %v", err))
	}

	rootCmd.AddCommand(matrixCmd)
}

func runMatrix(cmd *cobra.Command, _ []string) error {
	var source usecase.CompanySource
	switch strings.ToLower(matrixSource) {
	case config.SourceFixture:
		cat, err := fixture.Load()
		if err != nil {
			return err
		}
		source = cat
	case config.SourcePostgres:
		cfg, logger, err := loadEnv()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()
		cfg.DataSource = config.SourcePostgres

		db, err := connect(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer db.Close()
		source = service.NewCompanyService(repository.NewPostgresCompanyRepository(db), nil, db)
	default:
		return fmt.Errorf("unknown source %q", matrixSource)
	}

	uc := usecase.NewSkillMatrixUsecase(usecase.NewCatalogUsecase(source, nil, nil))
	res, err := uc.Compare(cmd.Context(), matrixIDs, matrixQuery)
	if err != nil {
		return err
	}
	return printMatrix(cmd.OutOrStdout(), res)
}

func printMatrix(w io.Writer, res usecase.MatrixResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	header := []string{"SKILL"}
	for _, c := range res.Columns {
		header = append(header, c.CompanyName)
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, row := range res.Rows {
		line := []string{row.SkillName}
		for _, cell := range row.Cells {
			if cell.Skill == nil {
				line = append(line, "-")
				continue
			}
			line = append(line, fmt.Sprintf("%s %d/%d", cell.Skill.BloomLevel, cell.Skill.Level, cell.Skill.Proficiency))
		}
		fmt.Fprintln(tw, strings.Join(line, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "%d of %d skills\n", len(res.Rows), res.Total)
	if len(res.Missing) > 0 {
		fmt.Fprintf(w, "unknown companies: %s\n", strings.Join(res.Missing, ", "))
	}
	return nil
}
