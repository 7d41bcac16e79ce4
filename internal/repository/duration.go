package repository

import "fmt"

// AverageItemDurationSeconds is the fixed per-item duration used until real
// duration tracking lands on the items table.
const AverageItemDurationSeconds = 180

// EstimateTotalDuration formats count x fixed average as "XhYm"
func EstimateTotalDuration(count int64) string {
	totalSeconds := count * AverageItemDurationSeconds
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
