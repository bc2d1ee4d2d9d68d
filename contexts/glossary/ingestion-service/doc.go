// Package ingestionservice implements the Ingestion Adapter inside the
// glossary context.
//
// The module normalizes typed text or extracted file text into new
// definition candidates: MIME-dispatched extractors produce
// {text, source label, optional confidence}, the upload commands enforce
// the definition length floor, seed the initial weight from extractor
// confidence, and write the term plus its candidate through the
// term-catalog ports in one atomic step. Extraction completes (or fails)
// before any store call; a failed extraction never creates a candidate.
package ingestionservice
