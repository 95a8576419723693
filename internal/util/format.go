// Package util holds small formatting helpers for CLI output.
package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"nagarsetu/internal/errors"
)

// FileChecksum returns the hex SHA-256 of a file, printed next to a validated
// stops file so crews can confirm they load the same list.
func FileChecksum(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", errors.Wrap(err, "failed to open file")
	}
	defer file.Close()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", errors.Wrap(err, "failed to calculate checksum")
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}

// FormatBytes formats bytes into human readable format.
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	const units = "KMGTPEZY"
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit && exp < len(units)-1; n /= unit {
		div *= unit
		exp++
	}

	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), units[exp])
}

// FormatTravelTime renders whole minutes as "45 min" or "2 h 39 min".
func FormatTravelTime(minutes int) string {
	if minutes < 0 {
		minutes = 0
	}
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}

	h, m := minutes/60, minutes%60
	if m == 0 {
		return fmt.Sprintf("%d h", h)
	}

	return fmt.Sprintf("%d h %d min", h, m)
}

// FormatDistance renders kilometres with two decimals, or metres below 1 km.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%.0f m", km*1000)
	}

	return fmt.Sprintf("%.2f km", km)
}
