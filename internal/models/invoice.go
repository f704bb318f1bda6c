package models

// Invoice is an issued or received invoice.
//
// Number is caller-supplied and NOT guaranteed unique by the store;
// callers that need uniqueness must enforce it themselves.
type Invoice struct {
	ID     int    `json:"id"`
	Number string `json:"number"`

	// Party is the counterparty (buyer or supplier).
	Party string `json:"party"`

	// Date is the issue date, DueDate the optional payment deadline,
	// both ISO date strings.
	Date    string `json:"date"`
	DueDate string `json:"dueDate,omitempty"`

	Amount float64 `json:"amount"`
	Status string  `json:"status"`
}

// InvoicePatch is a partial update; nil fields are left untouched.
type InvoicePatch struct {
	Number  *string
	Party   *string
	Date    *string
	DueDate *string
	Amount  *float64
	Status  *string
}

// Apply merges the patch into the invoice, field by field.
func (i *Invoice) Apply(p InvoicePatch) {
	if p.Number != nil {
		i.Number = *p.Number
	}
	if p.Party != nil {
		i.Party = *p.Party
	}
	if p.Date != nil {
		i.Date = *p.Date
	}
	if p.DueDate != nil {
		i.DueDate = *p.DueDate
	}
	if p.Amount != nil {
		i.Amount = *p.Amount
	}
	if p.Status != nil {
		i.Status = *p.Status
	}
}
