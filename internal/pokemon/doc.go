// Package pokemon holds the Pokédex domain: list items, filters, the
// generation and type tables, and the client-side filter/sort pipeline
// applied to the accumulated list before it is rendered.
//
// Everything here is pure and free of I/O. Static tables are exposed
// through accessors that hand out copies so callers cannot mutate them.
package pokemon
