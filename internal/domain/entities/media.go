package entities

import "time"

// Media is a locally stored asset. IDs are numeric and allocated from an atomic
// counter so they can be referenced the same way the CMS references uploads.
//
// Storage model:
//   - DynamoDB PK: id (numeric string)
//   - bytes live in S3 under StorageKey
type Media struct {
	ID         string    `json:"id"`
	Alt        string    `json:"alt"`
	Filename   string    `json:"filename"`
	MimeType   string    `json:"mime_type"`
	Size       int64     `json:"size"`
	StorageKey string    `json:"storage_key"`
	URL        string    `json:"url"`
	CreatedAt  time.Time `json:"created_at"`
}

// ImportedAsset is what the asset importer hands back to callers.
type ImportedAsset struct {
	ID       int64
	Filename string
}
