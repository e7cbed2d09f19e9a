package dto

// ImportRequest carries company table rows keyed by column name.
type ImportRequest struct {
	Rows []map[string]string `json:"rows" validate:"required,min=1,max=5000,dive,required"`
}
