package models

// Movement types. Amount sign follows the type by caller convention:
// positive for ingresos, negative for gastos. The store does not
// enforce the correlation.
const (
	MovementIngreso = "ingreso"
	MovementGasto   = "gasto"
)

// Movement is one financial movement on the farm ledger.
type Movement struct {
	ID int `json:"id"`

	// Date of the movement, ISO date string (YYYY-MM-DD) as entered.
	Date string `json:"date"`

	// Type is MovementIngreso or MovementGasto.
	Type string `json:"type"`

	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`

	// Status is a free-form display state ("Registrado", "Borrador", ...).
	Status string `json:"status"`
}

// MovementPatch is a partial update; nil fields are left untouched.
type MovementPatch struct {
	Date        *string
	Type        *string
	Category    *string
	Description *string
	Amount      *float64
	Status      *string
}

// Apply merges the patch into the movement, field by field.
func (m *Movement) Apply(p MovementPatch) {
	if p.Date != nil {
		m.Date = *p.Date
	}
	if p.Type != nil {
		m.Type = *p.Type
	}
	if p.Category != nil {
		m.Category = *p.Category
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Amount != nil {
		m.Amount = *p.Amount
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
}
