package dto

type BackupFile struct {
	Table string `json:"table"`
	URL   string `json:"url"`
	Size  int    `json:"size"`
}

type BackupResponse struct {
	Directory string       `json:"directory"`
	Files     []BackupFile `json:"files"`
	Skipped   []string     `json:"skipped,omitempty"`
}
