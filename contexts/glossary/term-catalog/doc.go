// Package termcatalog implements the Term Store and Candidate Ranking
// inside the glossary context.
//
// The module owns headword terms and their competing definition candidates:
// slug normalization, lookup-or-create, substring search, best-candidate
// selection by weight, and weight adjustment. Business rules live in the
// domain/application layers; storage and transport stay behind ports and
// adapters.
package termcatalog
