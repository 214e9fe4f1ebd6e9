//go:build !unix

package runner

import "os"

func signalOf(*os.ProcessState) (int, string, bool) {
	return 0, "", false
}

func isNotFoundErrno(error) bool {
	return false
}
