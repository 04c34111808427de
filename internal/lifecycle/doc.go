// Package lifecycle exposes the legal operations on an appointment.
//
// Manager loads an appointment, checks the requested transition against the
// table in package appointments, applies the transition's typed input to a
// scratch copy and saves it conditioned on the status and version it loaded.
// A rejected transition or a lost race never mutates the stored record.
//
// Side effects hang off specific transitions: generating the program and
// dossier goes through the generation orchestrator, planning an impact
// follow-up creates a new appointment, and every successful transition
// publishes a notification event.
package lifecycle
