package dto

// SupplierRequest representa la solicitud de registro de un proveedor
type SupplierRequest struct {
	RUT     string `json:"rut" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// SupplierUpdateRequest representa la actualización de un proveedor
type SupplierUpdateRequest struct {
	Name    string `json:"name" binding:"required"`
	Contact string `json:"contact"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// ClientRequest representa la solicitud de registro de un cliente
type ClientRequest struct {
	RUT     string `json:"rut" binding:"required"`
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// ClientUpdateRequest representa la actualización de un cliente
type ClientUpdateRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}
