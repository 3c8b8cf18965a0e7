// Package ingest reads the two CSV inputs of an lvclique run and writes
// graphs back out as edge lists.
//
// Edge lists hold two columns of unsigned 32-bit vertex identifiers, one
// undirected edge per row, normally behind a header row:
//
//	from,to
//	0,1
//	1,2
//
// Target tables are matched by header name; the columns new_id, views,
// mature and partner are required, anything else is ignored. Booleans are
// spelled True/False (lower case is accepted as well).
//
// Readers are all-or-nothing: the first malformed row aborts with a
// *ParseError carrying its 1-based line and column, and no partial graph
// or table is returned.
package ingest
