//go:build !unix

package filesystem

import "os"

// Without access(2) the only reliable probe is creating an entry.
func checkWritable(dir string) error {
	f, err := os.CreateTemp(dir, ".lnlst-probe-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	return os.Remove(name)
}
