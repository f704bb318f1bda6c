// Package models defines the core domain records for FincaLedger.
//
// # Records
//
//   - Movement: a financial movement (ingreso or gasto) on the farm ledger
//   - Invoice: an issued or received invoice
//   - User: an account that can use the application
//   - AccessRequest: a pending/approved/rejected request for an account
//
// All four live inside a single Document, the unit the storage layer
// loads and saves as a whole. JSON field names match the document format
// the web client reads and writes (lowerCamelCase, top-level keys
// "movements", "invoices", "users", "requests").
//
// # Identity
//
// Every record carries a positive integer ID, unique within its
// collection. IDs are assigned by the repository layer as
// max(existing)+1 and start at 1 for an empty collection.
//
// # Patches
//
// Partial updates use the *Patch types: pointer-field structs where nil
// means "leave this field alone". Each record type has an Apply method
// that merges a patch field by field, so an update can never clobber
// fields the caller did not mention.
package models
