// Package documents renders the pedagogical and regulatory documents issued
// around an appointment: the training agreement (convention), the detailed
// program, the attendance sheet (émargement), the personalised training
// program, the regulatory dossier, and the impact report.
//
// Each producer turns a typed input record into an ordered list of sections
// and drives them through the layout engine. A section is emitted only when its
// body is a non-empty string; the order of sections is fixed per document type.
// Producers never validate and never persist: a document with missing fields
// still renders, with the corresponding sections left out.
//
// Output values carry the paginated layout and export to PDF through gofpdf.
// Private appointment notes are not part of any input type and therefore can
// never reach a rendered document.
package documents
