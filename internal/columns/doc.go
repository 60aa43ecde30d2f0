// Package columns maps the loosely named headers of a survey export onto the
// fixed set of semantic roles the campaign needs.
//
// Matching is keyword based: a column satisfies a role when one of the role's
// keyword aliases appears as a case-insensitive substring of the column name.
// Headers are NFKC-normalized first because spreadsheet exports routinely
// carry non-breaking spaces and typographic quotes. The first matching column
// in table order wins, and resolution happens exactly once per run; the
// resulting Map is read-only afterwards.
package columns
