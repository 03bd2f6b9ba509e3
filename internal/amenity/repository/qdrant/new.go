package qdrant

import (
	"fmt"

	"layover-os/internal/amenity/repository"
	pkgLog "layover-os/pkg/log"
	pkgQdrant "layover-os/pkg/qdrant"
)

type implRepository struct {
	client         *pkgQdrant.Client
	collectionName string
	l              pkgLog.Logger
}

// New creates a Qdrant-backed amenity index.
func New(client *pkgQdrant.Client, collectionName string, l pkgLog.Logger) repository.Repository {
	if client == nil {
		panic("amenity/repository/qdrant: client is required")
	}
	return &implRepository{
		client:         client,
		collectionName: collectionName,
		l:              l,
	}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("amenity/repository/qdrant.%s", method)
}
