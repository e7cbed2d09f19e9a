package seeder

import (
	"placement-portal/internal/config"
	"placement-portal/internal/infrastructure/fixture"
)

func Defaults(admin config.AdminConfig, catalog *fixture.Catalog) []Seeder {
	return []Seeder{
		AdminSeeder{Username: admin.Username, Password: admin.Password},
		CompaniesSeeder{Catalog: catalog},
	}
}
