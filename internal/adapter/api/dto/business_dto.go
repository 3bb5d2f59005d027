package dto

// BusinessRequest representa la solicitud de registro de la empresa
type BusinessRequest struct {
	RUT         string `json:"rut" binding:"required"`
	RazonSocial string `json:"razon_social" binding:"required"`
	Giro        string `json:"giro"`
	Address     string `json:"address"`
	Comuna      string `json:"comuna"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
}

// BusinessUpdateRequest representa la actualización de datos de la empresa.
// El RUT no se puede modificar.
type BusinessUpdateRequest struct {
	RazonSocial string `json:"razon_social" binding:"required"`
	Giro        string `json:"giro"`
	Address     string `json:"address"`
	Comuna      string `json:"comuna"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
}
