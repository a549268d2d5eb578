package store

import (
	"github.com/konstrukt-app/konstrukt-be/internal/config"
	"github.com/konstrukt-app/konstrukt-be/internal/logger"
)

// Storages aggregates every persistence backend the services depend on.
type Storages struct {
	UserRepository     UserRepository
	OrderRepository    OrderRepository
	TemplateRepository TemplateRepository
	MediaStorage       MediaStorage
}

// NewStorages wires all repositories over the given database connection and
// the media object store. The media store is optional: when no endpoint is
// configured, MediaStorage stays nil and the upload surface reports the
// deployment gap at request time.
func NewStorages(db *DB, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	storages := &Storages{
		UserRepository:     NewUserRepository(db, logger),
		OrderRepository:    NewOrderRepository(db, logger),
		TemplateRepository: NewTemplateRepository(db, logger),
	}

	if cfg.Media.Endpoint != "" {
		media, err := NewMediaStorage(cfg.Media, logger)
		if err != nil {
			return nil, err
		}
		storages.MediaStorage = media
	}

	return storages, nil
}
