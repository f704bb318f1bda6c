package models

// Document is the whole persisted state: one slice per collection.
// The storage layer reads and writes it as a single unit; there is no
// per-record persistence.
type Document struct {
	Movements []Movement      `json:"movements"`
	Invoices  []Invoice       `json:"invoices"`
	Users     []User          `json:"users"`
	Requests  []AccessRequest `json:"requests"`
}

// NewDocument returns an empty document with all collections present,
// so a serialized empty document still carries every top-level key.
func NewDocument() *Document {
	return &Document{
		Movements: []Movement{},
		Invoices:  []Invoice{},
		Users:     []User{},
		Requests:  []AccessRequest{},
	}
}
