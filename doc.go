// Package fundxml extracts flat tables from investment-fund position XML
// files (ANBIMA-style: root > fundo > repeated position groups).
//
// Callers name a container tag (the repeated group, e.g. "titprivado") and
// an ordered list of field tags; each occurrence of the container becomes
// one row and each field one column. Every cell is a string; a field absent
// from an occurrence yields an empty string, so all columns always have the
// same length. Type coercion lives in the transform subpackage, export
// helpers write CSV and XLSX.
package fundxml
