//go:build windows

package rtltcp

import (
	"errors"
	"os"
	"syscall"

	"golang.org/x/sys/windows"
)

// classifyRecvError applies the Windows half of the recv-error
// classification table. WSAECONNABORTED and WSAENOTSOCK are treated as
// retryable here, even though on most platforms those two would better
// indicate a dead socket. Preserved as-is rather than reclassified.
func classifyRecvError(err error) errorClass {
	if err == nil {
		return classTransient
	}
	var sysErr *os.SyscallError
	if errors.As(err, &sysErr) {
		if errno, ok := sysErr.Err.(syscall.Errno); ok {
			switch windows.Errno(errno) {
			case windows.WSAEINTR, windows.WSAECONNABORTED, windows.WSAENOTSOCK:
				return classTransient
			case windows.WSAECONNRESET, windows.WSAEBADF:
				return classDisconnect
			}
		}
	}
	return classFatal
}
