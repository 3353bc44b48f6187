//go:build windows

package osprobe

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	"github.com/benchwatch/benchwatch/internal/contract"
	"github.com/benchwatch/benchwatch/schema"
)

// registryProbe reads and writes values through the advapi registry API.
// Writes open existing keys only; a missing key is reported, not created.
type registryProbe struct{}

func (registryProbe) ReadDword(path, key string) (uint32, error) {
	k, err := openRegistryKey(path, registry.QUERY_VALUE)
	if err != nil {
		return 0, err
	}
	defer k.Close()

	v, _, err := k.GetIntegerValue(key)
	if err != nil {
		return 0, mapValueError(err)
	}
	return uint32(v), nil
}

func (registryProbe) ReadString(path, key string) (string, error) {
	k, err := openRegistryKey(path, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer k.Close()

	v, _, err := k.GetStringValue(key)
	if err != nil {
		return "", mapValueError(err)
	}
	return v, nil
}

func (registryProbe) WriteDword(path, key string, value uint32) error {
	k, err := openRegistryKey(path, registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer k.Close()

	if err := k.SetDWordValue(key, value); err != nil {
		return mapWriteError(err)
	}
	return nil
}

func (registryProbe) WriteString(path, key, value string) error {
	k, err := openRegistryKey(path, registry.SET_VALUE)
	if err != nil {
		return err
	}
	defer k.Close()

	if err := k.SetStringValue(key, value); err != nil {
		return mapWriteError(err)
	}
	return nil
}

// openRegistryKey resolves the hive prefix and opens the subkey with the
// requested access, folding OS errors into the contract sentinels.
func openRegistryKey(path string, access uint32) (registry.Key, error) {
	root, sub, err := schema.SplitRegistryPath(path)
	if err != nil {
		return 0, err
	}

	k, err := registry.OpenKey(rootKey(root), sub, access)
	if err != nil {
		switch {
		case errors.Is(err, registry.ErrNotExist):
			return 0, contract.ErrKeyNotFound
		case errors.Is(err, windows.ERROR_ACCESS_DENIED):
			if access&registry.SET_VALUE != 0 {
				return 0, fmt.Errorf("%w - admin required", contract.ErrAccessDenied)
			}
			return 0, fmt.Errorf("%w (run as admin?)", contract.ErrAccessDenied)
		default:
			return 0, fmt.Errorf("failed to open key: %w", err)
		}
	}
	return k, nil
}

func rootKey(root schema.RegistryRoot) registry.Key {
	if root == schema.RootLocalMachine {
		return registry.LOCAL_MACHINE
	}
	return registry.CURRENT_USER
}

func mapValueError(err error) error {
	if errors.Is(err, registry.ErrNotExist) {
		return contract.ErrValueNotFound
	}
	return fmt.Errorf("failed to read value: %w", err)
}

func mapWriteError(err error) error {
	if errors.Is(err, windows.ERROR_ACCESS_DENIED) {
		return fmt.Errorf("%w - admin required", contract.ErrAccessDenied)
	}
	return fmt.Errorf("failed to write value: %w", err)
}
