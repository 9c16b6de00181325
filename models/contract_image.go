package models

import "time"

// ContractImage is the metadata row for a file attached to a contract. The
// bytes live in the object store under StoragePath; FileURL is the resolved
// public or CDN address recorded at upload time.
type ContractImage struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	ContractID  uint      `gorm:"not null;index" json:"contract_id"`
	FileName    string    `gorm:"size:255;not null" json:"file_name"`
	FileURL     string    `gorm:"size:512;not null" json:"file_url"`
	FileSize    int64     `gorm:"default:0" json:"file_size"`
	MimeType    string    `gorm:"size:128" json:"mime_type"`
	Description string    `gorm:"size:255" json:"description,omitempty"`
	UploadedBy  string    `gorm:"size:64" json:"uploaded_by,omitempty"`
	StoragePath string    `gorm:"size:512" json:"storage_path"`
	UploadedAt  time.Time `gorm:"autoCreateTime" json:"uploaded_at"`
}

func (ContractImage) TableName() string { return "ds_contract_image" }
