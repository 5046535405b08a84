//go:build unix

package platform

import "golang.org/x/sys/unix"

// canExecute asks the kernel with the real uid/gid, like access(2) X_OK
func canExecute(path string) bool {
	if !IsRegularFile(path) {
		return false
	}
	return unix.Access(path, unix.X_OK) == nil
}
