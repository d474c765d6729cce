package fs

import "github.com/twpayne/go-vfs/v4"

// OSFS is the filesystem every helper reads from outside of tests.
var OSFS vfs.FS = vfs.OSFS
