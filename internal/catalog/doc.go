// Package catalog persists the training programs and regulatory dossiers
// produced from conducted appointments.
//
// It is backed by gorm so the same code runs against the bundled SQLite file
// or a shared PostgreSQL database, selected by catalog.driver. The producer
// input that generated each artifact is kept as a JSON column, which is enough
// to re-render the PDF on demand.
package catalog
