// Package autostart manages the login-run registration under the current
// user's Run key. Registration points the value at the running executable,
// so moving the binary and re-enabling updates the path. Non-Windows builds
// get a stub that reports the platform gap.
package autostart

const (
	// runKeyPath is relative to HKEY_CURRENT_USER.
	runKeyPath = `Software\Microsoft\Windows\CurrentVersion\Run`

	// valueName is the registration slot owned by this application.
	valueName = "BenchWatch"
)
