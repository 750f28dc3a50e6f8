package sizefmt

import "fmt"

// Format renders a byte count as the display size class used on backup rows.
// Magnitudes are base-1024: plain bytes below 1 KB, otherwise two decimals.
func Format(bytes int64) string {
	if bytes < 1024 {
		return fmt.Sprintf("%d B", bytes)
	}
	kb := float64(bytes) / 1024
	if kb < 1024 {
		return fmt.Sprintf("%.2f KB", kb)
	}
	mb := kb / 1024
	if mb < 1024 {
		return fmt.Sprintf("%.2f MB", mb)
	}
	return fmt.Sprintf("%.2f GB", mb/1024)
}
