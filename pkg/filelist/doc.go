// Package filelist reads list files: UTF-8 text with one source path per
// line.
//
// Lines that are empty after trimming, or whose trimmed form starts with
// '#', are ignored. Every other line is a candidate source. Candidates are
// joined to the base directory when one is set, unless already absolute, and
// must exist at the moment they are read. The first missing source ends the
// sequence with a SOURCE_NOT_FOUND error; sources already yielded are not
// revisited.
package filelist
