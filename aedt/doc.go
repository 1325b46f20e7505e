// Package aedt reads the line-oriented text format used by electronics
// desktop project files (.aedt), material libraries and related files.
//
// A file is a tree of blocks delimited by `$begin '<Name>'` and
// `$end '<Name>'` marker lines. Block contents are key=value lines,
// inline list keys such as `mat(1, 2, 3)` or `rows[2: 'a', 'b']`, and
// nested blocks. The package decodes a file into a [Dict], an
// insertion-ordered mapping whose values are native Go scalars, lists,
// and nested dicts.
//
// The format has no published grammar. Decoding follows the fixed
// fallback rules the desktop product's own files obey: parsing never
// fails on malformed content, it degrades to raw strings or marker keys,
// and only an unreadable file surfaces an error. Some project files end
// in a raw binary trailer; line extraction stops at the first line that
// is not valid UTF-8, which skips the trailer without knowing its length.
package aedt
