package middlewares

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/mmdatafocus/grange_backend/models"
)

type shedReader struct {
	store *models.Store
}

func (r *shedReader) getSheds(ctx context.Context, ids []int) []*dataloader.Result[*models.Shed] {
	results, err := r.store.Sheds.ByIDs(ctx, ids)
	if err != nil {
		return handleError[*models.Shed](len(ids), err)
	}
	return generateLoaderResults(results, ids)
}

type poolReader struct {
	store *models.Store
}

func (r *poolReader) getPools(ctx context.Context, ids []int) []*dataloader.Result[*models.Pool] {
	results, err := r.store.Pools.ByIDs(ctx, ids)
	if err != nil {
		return handleError[*models.Pool](len(ids), err)
	}
	return generateLoaderResults(results, ids)
}

type cuyReader struct {
	store *models.Store
}

func (r *cuyReader) getCuys(ctx context.Context, ids []int) []*dataloader.Result[*models.Cuy] {
	results, err := r.store.Cuys.ByIDs(ctx, ids)
	if err != nil {
		return handleError[*models.Cuy](len(ids), err)
	}
	return generateLoaderResults(results, ids)
}

func GetShed(ctx context.Context, id int) (*models.Shed, error) {
	return For(ctx).ShedLoader.Load(ctx, id)()
}

func GetPool(ctx context.Context, id int) (*models.Pool, error) {
	return For(ctx).PoolLoader.Load(ctx, id)()
}

func GetCuy(ctx context.Context, id int) (*models.Cuy, error) {
	return For(ctx).CuyLoader.Load(ctx, id)()
}
