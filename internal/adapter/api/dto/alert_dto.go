package dto

// AlertRequest representa la creación manual de una alerta
type AlertRequest struct {
	Title    string            `json:"title" binding:"required"`
	Message  string            `json:"message"`
	Priority string            `json:"priority" binding:"required,oneof=low medium high urgent"`
	Metadata map[string]string `json:"metadata"`
}
