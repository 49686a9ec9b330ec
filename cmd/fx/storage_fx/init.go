package storage_fx

import (
	"context"

	"boystrip/internal/config"
	"boystrip/internal/infra"
	"boystrip/internal/services"
	mem "boystrip/pkg/memcache"
	"boystrip/pkg/utils"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"go.uber.org/fx"
)

var Module = fx.Provide(
	provideS3Client, provideBlobStorage, providePhotoService)

func provideS3Client(cfg *config.Config) (*s3.Client, error) {
	return infra.NewS3Client(context.Background(), cfg.Storage)
}

func provideBlobStorage(client *s3.Client, cfg *config.Config) utils.BlobStorage {
	return utils.NewS3BlobStorage(client, cfg.Storage.Bucket)
}

func providePhotoService(storage utils.BlobStorage, tickets mem.UploadTicketStore, cfg *config.Config) services.PhotoServiceInterface {
	return services.NewPhotoService(storage, tickets, services.PhotoTTLs{
		Upload:   cfg.Storage.UploadTTL,
		Download: cfg.Storage.DownloadTTL,
	})
}
