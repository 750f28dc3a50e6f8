package models

import "time"

// SystemMetrics is a point-in-time aggregate exposed on the health surface.
type SystemMetrics struct {
	CacheHitRatio            float64   `json:"cacheHitRatio"`
	CacheHits                uint64    `json:"cacheHits"`
	CacheMisses              uint64    `json:"cacheMisses"`
	RequestsTotal            uint64    `json:"requestsTotal"`
	AverageRequestDurationMs float64   `json:"averageRequestDurationMs"`
	BackupsCreated           uint64    `json:"backupsCreated"`
	BackupsPruned            uint64    `json:"backupsPruned"`
	RestoresSucceeded        uint64    `json:"restoresSucceeded"`
	RestoresFailed           uint64    `json:"restoresFailed"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generatedAt"`
}
