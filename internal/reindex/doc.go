// Package reindex keeps the title and alias front-matter values of indexed
// Markdown files in sync with the index encoded in their filenames.
//
// A content file named "01-A-intro.md" carries the raw index "01-A", which
// normalizes to "01.A". Lines such as
//
//	title: 3.9 - Introduction
//	alias: 3.9 - Introduction
//
// are rewritten to
//
//	title: 01.A - Introduction
//	alias: 01.A - Introduction
//
// Only files directly inside the content root are considered. Everything
// else in a file is left byte for byte as it was.
package reindex
