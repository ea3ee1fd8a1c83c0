package rtltcp

// errorClass categorizes a failed recv(): retry, reconnect, or fatal.
type errorClass int

const (
	// classTransient: retry the inner read loop, no user notification.
	classTransient errorClass = iota
	// classDisconnect: the connection is gone; tear down and reconnect.
	classDisconnect
	// classFatal: an unexpected error; log and tear down same as a disconnect.
	classFatal
)

// classifyRecvError is implemented per-platform in errors_unix.go and
// errors_windows.go, since the errno constants it compares against differ
// by OS.
