// Package main hosts the rendezvous CLI entrypoint and command graph.
//
// The Cobra command tree maps terminal invocations onto the lifecycle
// manager: creating and validating appointments, recording the compte-rendu,
// generating the program and dossier, following up with impact appointments,
// and rendering documents into the documents directory. Configuration
// resolution, .env loading and process-wide wiring live in commandContext so
// subcommands stay declarative.
package main
