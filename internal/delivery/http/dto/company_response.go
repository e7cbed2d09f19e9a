package dto

import "placement-portal/internal/domain/company"

// CompanyDetailResponse is the company page payload.
type CompanyDetailResponse struct {
	company.Company
	CompensationConsistent bool `json:"compensation_consistent"`
}

func NewCompanyDetailResponse(c company.Company) CompanyDetailResponse {
	return CompanyDetailResponse{Company: c, CompensationConsistent: c.CompensationConsistent()}
}

// CompanyCardResponse is the compact shape used by grids and search results.
type CompanyCardResponse struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Logo              string           `json:"logo"`
	Descriptor        string           `json:"descriptor"`
	Category          company.Category `json:"category"`
	Industry          string           `json:"industry"`
	Location          string           `json:"location"`
	WorkMode          string           `json:"work_mode"`
	CompensationRange string           `json:"compensation_range"`
	Employees         string           `json:"employees"`
	Technologies      []string         `json:"technologies"`
}

func NewCompanyCards(in []company.Company) []CompanyCardResponse {
	out := make([]CompanyCardResponse, 0, len(in))
	for _, c := range in {
		out = append(out, CompanyCardResponse{
			ID:                c.ID,
			Name:              c.Name,
			Logo:              c.Logo,
			Descriptor:        c.Descriptor,
			Category:          c.Category,
			Industry:          c.Industry,
			Location:          c.Location,
			WorkMode:          c.WorkMode,
			CompensationRange: c.CompensationRange,
			Employees:         c.Employees,
			Technologies:      c.Technologies,
		})
	}
	return out
}
