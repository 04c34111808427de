// Package fileutil holds small filesystem helpers shared by the archive and
// the CLI: filename sanitisation and atomic replace-by-rename writes.
package fileutil
