// Package archive stores rendered documents in the configured documents
// directory.
//
// Writes go through a temp file and a rename while holding an advisory lock
// on the directory, so two CLI invocations rendering the same reference do
// not interleave.
package archive
