package domain

import "time"

// FeedSyncStatus descreve a última carga do feed, manual ou agendada
type FeedSyncStatus struct {
	Enabled         bool       `json:"enabled"`
	CronSchedule    string     `json:"cronSchedule"`
	Running         bool       `json:"running"`
	LastStartedAt   *time.Time `json:"lastStartedAt,omitempty"`
	LastCompletedAt *time.Time `json:"lastCompletedAt,omitempty"`
	LastInserted    int        `json:"lastInserted"`
	LastError       string     `json:"lastError,omitempty"`
}
