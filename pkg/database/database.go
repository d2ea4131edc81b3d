// Package database reads and writes whole template database files.
package database

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when a database file does not exist
var ErrNotFound = errors.New("file not found")

// ReadFile reads an entire database file into memory
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: '%s'", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read database '%s': %w", path, err)
	}
	return data, nil
}

// WriteFile replaces the database file at path with data. The data is
// written to a temporary file in the same directory and renamed into place,
// so a failed write leaves any existing file untouched.
func WriteFile(path string, data []byte) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create directory for '%s': %w", path, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create database '%s': %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write database '%s': %w", path, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync database '%s': %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close database '%s': %w", path, err)
	}
	if err = os.Chmod(tmp.Name(), 0600); err != nil {
		return fmt.Errorf("failed to set permissions on '%s': %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace database '%s': %w", path, err)
	}

	return nil
}
