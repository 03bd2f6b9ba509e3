package usecase

import (
	"layover-os/internal/amenity"
	"layover-os/internal/amenity/repository"
	"layover-os/pkg/log"
	"layover-os/pkg/voyage"
)

// embedBatchSize keeps each embedding request well under provider input limits.
const embedBatchSize = 64

type implUseCase struct {
	l        log.Logger
	repo     repository.Repository
	embedder voyage.IVoyage
}

// New creates the amenity use case.
func New(l log.Logger, repo repository.Repository, embedder voyage.IVoyage) amenity.UseCase {
	return &implUseCase{l: l, repo: repo, embedder: embedder}
}
