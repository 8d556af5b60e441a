// Package markup reads HTML mock-ups and turns them into a flat list of text
// nodes together with the classes of the element holding them.
//
// Parsing follows HTML5 tree construction rules, so malformed documents are
// never rejected: the parser recovers the same way browsers do.
package markup
