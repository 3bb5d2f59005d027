package dto

import "time"

// MarkFiledRequest representa la presentación de una declaración ante el
// SII; sin fecha se usa el momento actual
type MarkFiledRequest struct {
	Folio   string     `json:"folio" binding:"required"`
	FiledAt *time.Time `json:"filed_at"`
}

// YearCompletenessResponse informa los meses del año sin F29 declarado
type YearCompletenessResponse struct {
	Year          int   `json:"year"`
	Complete      bool  `json:"complete"`
	MissingMonths []int `json:"missing_months"`
}
