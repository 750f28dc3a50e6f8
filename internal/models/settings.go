package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Settings is the single-row system configuration, including the backup
// retention policy and the company profile shown on rendered proposals.
type Settings struct {
	ID             string    `db:"id" json:"id"`
	BackupTime     string    `db:"backup_time" json:"backupTime"`
	BackupEnabled  bool      `db:"backup_enabled" json:"backupEnabled"`
	MaxBackups     int       `db:"max_backups" json:"maxBackups"`
	CompanyName    string    `db:"company_name" json:"companyName"`
	CompanyLogo    string    `db:"company_logo" json:"companyLogo"`
	CompanyAddress string    `db:"company_address" json:"companyAddress"`
	CompanyEmail   string    `db:"company_email" json:"companyEmail"`
	CompanyPhone   string    `db:"company_phone" json:"companyPhone"`
	UpdatedAt      time.Time `db:"updated_at" json:"updatedAt"`
}

// RetentionPolicy is the scheduler/enforcer view of the settings row.
type RetentionPolicy struct {
	MaxSnapshots int
	Hour         int
	Minute       int
	Enabled      bool
}

// Policy extracts the retention policy, parsing the HH:MM backup time.
func (s *Settings) Policy() (RetentionPolicy, error) {
	hour, minute, err := ParseBackupTime(s.BackupTime)
	if err != nil {
		return RetentionPolicy{}, err
	}
	return RetentionPolicy{
		MaxSnapshots: s.MaxBackups,
		Hour:         hour,
		Minute:       minute,
		Enabled:      s.BackupEnabled,
	}, nil
}

// ParseBackupTime validates an "HH:MM" wall-clock time.
func ParseBackupTime(raw string) (hour, minute int, err error) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid backup time %q", raw)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid backup hour %q", raw)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid backup minute %q", raw)
	}
	return hour, minute, nil
}
