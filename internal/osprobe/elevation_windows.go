//go:build windows

package osprobe

import "golang.org/x/sys/windows"

// isElevated reports whether the process token belongs to the local
// Administrators group. Used only as a display hint; fixes are always
// attempted under whatever privileges the process has.
func isElevated() bool {
	var adminSid *windows.SID
	err := windows.AllocateAndInitializeSid(
		&windows.SECURITY_NT_AUTHORITY,
		2,
		windows.SECURITY_BUILTIN_DOMAIN_RID,
		windows.DOMAIN_ALIAS_RID_ADMINS,
		0, 0, 0, 0, 0, 0,
		&adminSid)
	if err != nil {
		return false
	}
	defer windows.FreeSid(adminSid)

	token := windows.Token(0)
	isMember, err := token.IsMember(adminSid)
	return err == nil && isMember
}
