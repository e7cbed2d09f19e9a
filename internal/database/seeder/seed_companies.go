package seeder

import (
	"context"
	"fmt"

	"placement-portal/internal/database"
	"placement-portal/internal/domain/company"
	"placement-portal/internal/infrastructure/fixture"
	"placement-portal/internal/repository"
)

// CompaniesSeeder upserts the bundled fixture catalog into the company
// table.
type CompaniesSeeder struct {
	Catalog *fixture.Catalog
}

func (CompaniesSeeder) Name() string { return "companies" }

func (s CompaniesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "company", company.Columns...); err != nil {
		return err
	}

	cat := s.Catalog
	if cat == nil {
		var err error
		if cat, err = fixture.Load(); err != nil {
			return err
		}
	}

	all := cat.All()
	rows := make([]company.Row, 0, len(all))
	for _, c := range all {
		rows = append(rows, company.RowFromCompany(c))
	}

	n, err := repository.NewPostgresCompanyRepository(db).UpsertCompanies(ctx, rows)
	if err != nil {
		return err
	}
	if n != len(rows) {
		return fmt.Errorf("seeded %d of %d companies", n, len(rows))
	}
	return nil
}
