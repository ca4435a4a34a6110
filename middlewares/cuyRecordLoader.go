package middlewares

import (
	"context"

	"github.com/graph-gophers/dataloader/v7"
	"github.com/mmdatafocus/grange_backend/models"
)

// cuyRecordReader batches the weights, death and saca of animals by cuy id.
type cuyRecordReader struct {
	store *models.Store
}

func (r *cuyRecordReader) getWeights(ctx context.Context, cuyIds []int) []*dataloader.Result[[]*models.CuyWeight] {
	results, err := r.store.Cuys.WeightsOf(ctx, cuyIds)
	if err != nil {
		return handleError[[]*models.CuyWeight](len(cuyIds), err)
	}
	return generateLoaderArrayResults(results, cuyIds)
}

func (r *cuyRecordReader) getDeaths(ctx context.Context, cuyIds []int) []*dataloader.Result[*models.CuyDeath] {
	results, err := r.store.Cuys.DeathsOf(ctx, cuyIds)
	if err != nil {
		return handleError[*models.CuyDeath](len(cuyIds), err)
	}
	return generateLoaderRelatedResults(results, cuyIds)
}

func (r *cuyRecordReader) getSacas(ctx context.Context, cuyIds []int) []*dataloader.Result[*models.CuySaca] {
	results, err := r.store.Cuys.SacasOf(ctx, cuyIds)
	if err != nil {
		return handleError[*models.CuySaca](len(cuyIds), err)
	}
	return generateLoaderRelatedResults(results, cuyIds)
}

func GetWeightsOfCuy(ctx context.Context, cuyId int) ([]*models.CuyWeight, error) {
	return For(ctx).cuyWeightLoader.Load(ctx, cuyId)()
}

func GetDeathOfCuy(ctx context.Context, cuyId int) (*models.CuyDeath, error) {
	return For(ctx).cuyDeathLoader.Load(ctx, cuyId)()
}

func GetSacaOfCuy(ctx context.Context, cuyId int) (*models.CuySaca, error) {
	return For(ctx).cuySacaLoader.Load(ctx, cuyId)()
}
