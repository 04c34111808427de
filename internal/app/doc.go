// Package app owns the process-wide collaborators of rendezvous.
//
// Open builds the appointment store, the program/dossier catalog, the
// renderer and the lifecycle manager exactly once from a Config, and Close
// tears them down. Commands receive an *App instead of opening databases
// themselves.
package app
