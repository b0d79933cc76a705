package bootstrap

import (
	"log/slog"

	"banana-farm-api/internal/infra/storage"
	"banana-farm-api/internal/pkg/config"
	"banana-farm-api/internal/usecase/commands"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewImageStore,
	),
)

// NewImageStore returns nil when no bucket is configured; farm image
// uploads are then rejected with a service unavailable response.
func NewImageStore(cfg config.Config) (commands.ImageStore, error) {
	if !cfg.Storage.Enabled() {
		slog.Info("image storage disabled: no S3 bucket configured")
		return nil, nil
	}

	uploader, err := storage.NewUploader(cfg.Storage)
	if err != nil {
		return nil, err
	}
	return uploader, nil
}
