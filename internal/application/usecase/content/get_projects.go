package content

import (
	"context"

	"github.com/vedag812/netfolio-api/internal/domain/content"
)

type GetProjectsUseCase struct {
	store content.Store
}

func NewGetProjectsUseCase(store content.Store) *GetProjectsUseCase {
	return &GetProjectsUseCase{store: store}
}

// Execute never fails: a missing or unreadable document is served as an
// empty list so the public site always renders.
func (uc *GetProjectsUseCase) Execute(ctx context.Context) content.ProjectsDocument {
	return uc.store.ReadProjects(ctx)
}
