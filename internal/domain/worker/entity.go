package worker

import (
	"time"

	"github.com/google/uuid"

	"github.com/contapyme/contapyme/pkg/apperr"
	"github.com/contapyme/contapyme/pkg/rut"
)

// HealthSystem define el sistema de salud al que cotiza el trabajador
type HealthSystem string

const (
	// HealthFonasa es el sistema público
	HealthFonasa HealthSystem = "fonasa"
	// HealthIsapre es un asegurador privado
	HealthIsapre HealthSystem = "isapre"
)

// Valid informa si el sistema de salud es conocido
func (h HealthSystem) Valid() bool {
	return h == HealthFonasa || h == HealthIsapre
}

// Worker representa la ficha laboral de un trabajador de la empresa. Al
// término de la relación laboral el trabajador se desactiva, nunca se
// elimina; la desactivación es de una sola vía.
type Worker struct {
	ID                string       `json:"id"`
	BusinessID        string       `json:"business_id"`
	RUT               string       `json:"rut"`
	FirstName         string       `json:"first_name"`
	PaternalSurname   string       `json:"paternal_surname"`
	MaternalSurname   string       `json:"maternal_surname"`
	BaseSalary        int64        `json:"base_salary"`
	AFPName           string       `json:"afp_name"`
	HealthSystem      HealthSystem `json:"health_system"`
	HealthInstitution string       `json:"health_institution,omitempty"`
	StartDate         time.Time    `json:"start_date"`
	EndDate           *time.Time   `json:"end_date,omitempty"`
	Active            bool         `json:"active"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

// New crea un trabajador validando RUT, sueldo base y sistema de salud
func New(businessID, rawRUT, firstName, paternalSurname, maternalSurname string,
	baseSalary int64, afpName string, healthSystem HealthSystem, startDate time.Time) (*Worker, error) {

	if businessID == "" {
		return nil, apperr.Validation("la empresa es obligatoria")
	}
	if firstName == "" || paternalSurname == "" {
		return nil, apperr.Validation("nombre y apellido paterno son obligatorios")
	}
	if baseSalary <= 0 {
		return nil, apperr.Validation("el sueldo base debe ser mayor que cero")
	}
	if !healthSystem.Valid() {
		return nil, apperr.Validation("sistema de salud desconocido: %s", healthSystem)
	}

	normalized, err := rut.Normalize(rawRUT)
	if err != nil {
		return nil, apperr.Validation("rut inválido: %s", rawRUT)
	}

	now := time.Now()
	return &Worker{
		ID:              uuid.New().String(),
		BusinessID:      businessID,
		RUT:             normalized,
		FirstName:       firstName,
		PaternalSurname: paternalSurname,
		MaternalSurname: maternalSurname,
		BaseSalary:      baseSalary,
		AFPName:         afpName,
		HealthSystem:    healthSystem,
		StartDate:       startDate,
		Active:          true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// HasPrivateHealth informa si el 7% de salud se enruta a una isapre
func (w *Worker) HasPrivateHealth() bool {
	return w.HealthSystem == HealthIsapre
}

// Update modifica los datos editables de la ficha
func (w *Worker) Update(firstName, paternalSurname, maternalSurname string,
	baseSalary int64, afpName string, healthSystem HealthSystem, healthInstitution string) error {

	if firstName == "" || paternalSurname == "" {
		return apperr.Validation("nombre y apellido paterno son obligatorios")
	}
	if baseSalary <= 0 {
		return apperr.Validation("el sueldo base debe ser mayor que cero")
	}
	if !healthSystem.Valid() {
		return apperr.Validation("sistema de salud desconocido: %s", healthSystem)
	}

	w.FirstName = firstName
	w.PaternalSurname = paternalSurname
	w.MaternalSurname = maternalSurname
	w.BaseSalary = baseSalary
	w.AFPName = afpName
	w.HealthSystem = healthSystem
	w.HealthInstitution = healthInstitution
	w.UpdatedAt = time.Now()
	return nil
}

// Deactivate termina la relación laboral. La transición es de una sola vía:
// un trabajador inactivo no puede reactivarse.
func (w *Worker) Deactivate(endDate time.Time) error {
	if !w.Active {
		return apperr.Conflict("el trabajador ya está inactivo")
	}
	w.Active = false
	w.EndDate = &endDate
	w.UpdatedAt = time.Now()
	return nil
}
