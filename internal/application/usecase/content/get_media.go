package content

import (
	"context"

	"github.com/vedag812/netfolio-api/internal/domain/content"
)

type GetMediaConfigUseCase struct {
	store content.Store
}

func NewGetMediaConfigUseCase(store content.Store) *GetMediaConfigUseCase {
	return &GetMediaConfigUseCase{store: store}
}

func (uc *GetMediaConfigUseCase) Execute(ctx context.Context) content.MediaConfig {
	return uc.store.ReadMediaConfig(ctx)
}
