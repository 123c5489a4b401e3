// Package placer creates one symbolic link per source inside a destination
// directory.
//
// The link is named after the source's basename. When that name is taken
// (anything at all exists there, dangling links included) a zero padded
// suffix is inserted before the extension: notes.txt becomes notes_000.txt,
// then notes_001.txt, up to the configured bound. Each placement is
// independent: a failure is reported in the Result and never stops the
// caller from placing the next source.
package placer
