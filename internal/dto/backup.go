package dto

// CreateBackupRequest names an on-demand snapshot. Both fields are optional;
// the service fills defaults.
type CreateBackupRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// RestoreBackupResponse reports a completed restore.
type RestoreBackupResponse struct {
	Message string `json:"message"`
}

// UpdateSettingsRequest carries a partial settings update. Nil fields are
// left untouched.
type UpdateSettingsRequest struct {
	BackupTime     *string `json:"backupTime" validate:"omitempty"`
	BackupEnabled  *bool   `json:"backupEnabled"`
	MaxBackups     *int    `json:"maxBackups" validate:"omitempty,min=1"`
	CompanyName    *string `json:"companyName"`
	CompanyLogo    *string `json:"companyLogo"`
	CompanyAddress *string `json:"companyAddress"`
	CompanyEmail   *string `json:"companyEmail" validate:"omitempty,email"`
	CompanyPhone   *string `json:"companyPhone"`
}
