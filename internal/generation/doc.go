// Package generation turns a conducted appointment into its training program
// and regulatory dossier.
//
// The Orchestrator is the only code allowed to create catalog entries from
// appointment data. It builds the producer inputs from the participant
// snapshot and the synthesis (never the private notes), persists the program
// then the dossier, and removes the program again when the dossier cannot be
// created so callers observe both artifacts or neither.
package generation
