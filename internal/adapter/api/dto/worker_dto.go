package dto

import "time"

// WorkerRequest representa la solicitud de registro de un trabajador
type WorkerRequest struct {
	RUT               string    `json:"rut" binding:"required"`
	FirstName         string    `json:"first_name" binding:"required"`
	PaternalSurname   string    `json:"paternal_surname" binding:"required"`
	MaternalSurname   string    `json:"maternal_surname"`
	BaseSalary        int64     `json:"base_salary" binding:"required,gt=0"`
	AFPName           string    `json:"afp_name" binding:"required"`
	HealthSystem      string    `json:"health_system" binding:"required,oneof=fonasa isapre"`
	HealthInstitution string    `json:"health_institution"`
	StartDate         time.Time `json:"start_date" binding:"required"`
}

// WorkerUpdateRequest representa la actualización de la ficha laboral
type WorkerUpdateRequest struct {
	FirstName         string `json:"first_name" binding:"required"`
	PaternalSurname   string `json:"paternal_surname" binding:"required"`
	MaternalSurname   string `json:"maternal_surname"`
	BaseSalary        int64  `json:"base_salary" binding:"required,gt=0"`
	AFPName           string `json:"afp_name" binding:"required"`
	HealthSystem      string `json:"health_system" binding:"required,oneof=fonasa isapre"`
	HealthInstitution string `json:"health_institution"`
}

// WorkerDeactivateRequest representa el término de la relación laboral
type WorkerDeactivateRequest struct {
	EndDate time.Time `json:"end_date" binding:"required"`
}
