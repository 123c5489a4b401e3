// Package filesystem provides filesystem implementations for lnlst.
//
// The FS interface covers exactly what the filelist reader and the link
// placer need: existence checks that do and do not follow symlinks, opening
// the filelist, resolving sources and creating links. NewOS talks to the
// real filesystem; NewAferoFS wraps any afero.Fs and is what the unit tests
// use with an in-memory backend.
package filesystem
