// Package format renders scalars and sequences of values into the
// delimited, width-wrapped, indented text used to embed generator
// parameters (G, salts, key lists, hash lists) into emitted code.
//
// Line wrapping tracks a running column position that starts at 20 — an
// estimate of a typical leading assignment prefix such as "G = [" in the
// emitted code — and wraps to a new, indented line whenever the next
// element would cross Width. This 20-column starting position is an
// observable, tested contract (see spec §4.4/§8), not an implementation
// detail; changing it changes emitted line widths.
package format
