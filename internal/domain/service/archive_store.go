package service

import "context"

// ArchiveObject describes a written archive.
type ArchiveObject struct {
	Key  string
	Size int64
}

// ArchiveStore persists export documents.
type ArchiveStore interface {
	Write(ctx context.Context, key string, contentType string, data []byte) (*ArchiveObject, error)
}
