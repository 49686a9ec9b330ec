package services

import (
	"context"
	"fmt"
	"time"

	"boystrip/internal/models/response_models"
	mem "boystrip/pkg/memcache"
	"boystrip/pkg/utils"

	"github.com/google/uuid"
)

const photoKeyPrefix = "photos/"

// PhotoTTLs are the lifetimes of presigned URLs.
type PhotoTTLs struct {
	Upload   time.Duration
	Download time.Duration
}

type PhotoServiceInterface interface {
	GenerateUploadURL(ctx context.Context) (*response_models.UploadURLResponse, error)
	PhotoURL(ctx context.Context, storageID string) (string, error)
	// ClaimUpload accepts a storage id for attachment to a profile exactly
	// once.
	ClaimUpload(storageID string) error
}

type PhotoService struct {
	storage utils.BlobStorage
	tickets mem.UploadTicketStore
	ttl     PhotoTTLs
}

func NewPhotoService(storage utils.BlobStorage, tickets mem.UploadTicketStore, ttl PhotoTTLs) PhotoServiceInterface {
	return &PhotoService{storage: storage, tickets: tickets, ttl: ttl}
}

func (s *PhotoService) GenerateUploadURL(ctx context.Context) (*response_models.UploadURLResponse, error) {
	storageID := uuid.NewString()
	url, err := s.storage.PresignUpload(ctx, photoKeyPrefix+storageID, s.ttl.Upload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrStorageUpstream, err)
	}
	s.tickets.Issue(storageID, s.ttl.Upload)

	return &response_models.UploadURLResponse{
		StorageID: storageID,
		UploadURL: url,
		ExpiresIn: int(s.ttl.Upload.Seconds()),
	}, nil
}

func (s *PhotoService) PhotoURL(ctx context.Context, storageID string) (string, error) {
	if _, err := uuid.Parse(storageID); err != nil {
		return "", utils.ErrPhotoNotFound
	}
	url, err := s.storage.PresignDownload(ctx, photoKeyPrefix+storageID, s.ttl.Download)
	if err != nil {
		return "", fmt.Errorf("%w: %w", utils.ErrStorageUpstream, err)
	}
	return url, nil
}

func (s *PhotoService) ClaimUpload(storageID string) error {
	if !s.tickets.Consume(storageID) {
		return invalid(utils.ErrUploadTicketUnknown, "photoStorageId %q", storageID)
	}
	return nil
}
