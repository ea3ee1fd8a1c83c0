//go:build !windows

package rtltcp

import (
	"errors"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// classifyRecvError applies the POSIX recv-error classification:
// EAGAIN/EINTR are transient, ECONNRESET/EBADF mean the connection is
// gone, anything else is fatal (logged, then torn down the same way a
// disconnect is).
func classifyRecvError(err error) errorClass {
	if err == nil {
		return classTransient
	}
	var sysErr *os.SyscallError
	if errors.As(err, &sysErr) {
		if errno, ok := sysErr.Err.(syscall.Errno); ok {
			switch unix.Errno(errno) {
			case unix.EAGAIN, unix.EINTR:
				return classTransient
			case unix.ECONNRESET, unix.EBADF:
				return classDisconnect
			}
		}
	}
	return classFatal
}
