// Package jwnews extracts readable article content from pages on the
// jw.org domain. It fetches a page, isolates the editorial content from
// site chrome (navigation, players, publication metadata blocks),
// normalizes media references to absolute URLs, and renders the result
// as markdown with a title and an ordered list of images.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// readability/, htmltomarkdown/).
package jwnews
