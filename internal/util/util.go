package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Checksum returns the hex SHA256 digest of data.
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)

	return hex.EncodeToString(sum[:])
}

// FormatBytes renders a byte count with a binary unit, e.g. "1.5 KB".
func FormatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}

	const prefixes = "KMGTPE"
	value := float64(n) / unit
	i := 0
	for value >= unit && i < len(prefixes)-1 {
		value /= unit
		i++
	}

	return fmt.Sprintf("%.1f %cB", value, prefixes[i])
}

// FormatDuration renders d at second precision: "45s", "2m30s" or "1h30m".
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d/time.Second))
	case d < time.Hour:
		return fmt.Sprintf("%dm%ds", int(d/time.Minute), int(d%time.Minute/time.Second))
	default:
		return fmt.Sprintf("%dh%dm", int(d/time.Hour), int(d%time.Hour/time.Minute))
	}
}
