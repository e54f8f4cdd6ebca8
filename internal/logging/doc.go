// Package logging provides the structured logging interface used by fibseq.
// Components depend on Logger; the zerolog-backed adapter is the only
// implementation and writes diagnostics to stderr, never to the result stream.
package logging
