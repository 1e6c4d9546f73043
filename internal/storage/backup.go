package storage

import (
	"fmt"
	"io"
	"os"
)

// BackupSuffix is appended to the target path to name its backup
const BackupSuffix = ".bak"

// BackupPath returns where Backup writes the copy of path
func BackupPath(path string) string {
	return path + BackupSuffix
}

// Backup copies path byte-for-byte to BackupPath(path), overwriting any
// previous backup, and returns the backup path.
func Backup(path string) (string, error) {
	src, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening config for backup: %w", err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return "", fmt.Errorf("stat config: %w", err)
	}

	dstPath := BackupPath(path)
	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return "", fmt.Errorf("creating backup: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return "", fmt.Errorf("writing backup: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("writing backup: %w", err)
	}
	return dstPath, nil
}
