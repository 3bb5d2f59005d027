package dto

// ErrorResponse representa la estructura de respuesta para errores
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// SuccessResponse representa la respuesta de una operación exitosa
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ListResponse representa una página de resultados
type ListResponse struct {
	Items interface{} `json:"items"`
	Page  int         `json:"page"`
	Size  int         `json:"size"`
}

// Pagination representa los parámetros de paginación saneados
type Pagination struct {
	Page     int
	PageSize int
}

// Offset devuelve el desplazamiento para la consulta
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// GetPagination devuelve la paginación con valores por defecto
func GetPagination(page, pageSize int) Pagination {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	} else if pageSize > 100 {
		pageSize = 100
	}
	return Pagination{Page: page, PageSize: pageSize}
}

// NewErrorResponse crea una nueva respuesta de error
func NewErrorResponse(code int, message, details string) ErrorResponse {
	return ErrorResponse{Code: code, Message: message, Details: details}
}

// NewSuccessResponse crea una nueva respuesta de éxito
func NewSuccessResponse(message string, data interface{}) SuccessResponse {
	return SuccessResponse{Message: message, Data: data}
}

// NewListResponse crea una respuesta paginada
func NewListResponse(items interface{}, p Pagination) ListResponse {
	return ListResponse{Items: items, Page: p.Page, Size: p.PageSize}
}
