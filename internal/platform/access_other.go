//go:build !unix

package platform

import "os"

// canExecute falls back to the permission bits where access(2) is missing
func canExecute(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	return info.Mode().Perm()&0111 != 0
}
