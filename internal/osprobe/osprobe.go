// Package osprobe implements the contract probe interfaces against live
// Windows machine state. Registry access, power scheme and overlay control,
// process enumeration and display queries each live in their own
// windows-tagged file; other platforms get stubs that report every probe as
// unavailable so the engine and its tests build everywhere. Fake probes for
// tests and demos live in probe_fake.go and carry no build constraints.
package osprobe
