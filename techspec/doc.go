// Package techspec builds rows of a technical specification sheet out of text
// found in HTML mock-up.
//
// Every text node sitting in an element with class attribute becomes a row.
// Label id of the row is derived from the first configured class fragment
// found in the element class list. Matching is a plain case sensitive
// substring search, so "SubTitle" matches "Title" while "Subtitle" does not.
// Classes configured without prefix denote value placeholders: such rows are
// followed by a synthetic "{{Value}}" row.
package techspec
