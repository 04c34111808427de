// Package preflight provides readiness checks for the filesystem paths and
// collaborators rendezvous depends on.
//
// The CLI "rendezvous status" command runs RunAll and prints one line per
// check. Optional collaborators (ntfy) are only checked when configured.
package preflight
