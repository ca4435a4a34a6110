package middlewares

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/mmdatafocus/grange_backend/models"
)

type operationReader struct {
	store *models.Store
}

func (r *operationReader) getOperations(ctx context.Context, ids []int) []*dataloader.Result[*models.Operation] {
	results, err := r.store.Operations.ByIDs(ctx, ids)
	if err != nil {
		return handleError[*models.Operation](len(ids), err)
	}
	return generateLoaderResults(results, ids)
}
