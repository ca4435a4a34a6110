package middlewares

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/graph-gophers/dataloader/v7"
	"github.com/mmdatafocus/grange_backend/models"
)

type ctxKey string

const (
	loadersKey = ctxKey("dataloaders")
)

// Loaders wrap your data loaders to inject via middleware
type Loaders struct {
	UserLoader      *dataloader.Loader[int, *models.User]
	RoleLoader      *dataloader.Loader[int, *models.Role]
	OperationLoader *dataloader.Loader[int, *models.Operation]
	ShedLoader      *dataloader.Loader[int, *models.Shed]
	PoolLoader      *dataloader.Loader[int, *models.Pool]
	CuyLoader       *dataloader.Loader[int, *models.Cuy]

	userRoleLoader      *dataloader.Loader[int, []int]
	roleOperationLoader *dataloader.Loader[int, []int]

	cuyWeightLoader *dataloader.Loader[int, []*models.CuyWeight]
	cuyDeathLoader  *dataloader.Loader[int, *models.CuyDeath]
	cuySacaLoader   *dataloader.Loader[int, *models.CuySaca]
}

func NewLoaders(store *models.Store) *Loaders {
	// define the data loader
	userReader := &userReader{store: store}
	roleReader := &roleReader{store: store}
	operationReader := &operationReader{store: store}
	shedReader := &shedReader{store: store}
	poolReader := &poolReader{store: store}
	cuyReader := &cuyReader{store: store}
	cuyRecordReader := &cuyRecordReader{store: store}

	return &Loaders{
		UserLoader:      dataloader.NewBatchedLoader(userReader.getUsers, dataloader.WithWait[int, *models.User](time.Millisecond)),
		RoleLoader:      dataloader.NewBatchedLoader(roleReader.getRoles, dataloader.WithWait[int, *models.Role](time.Millisecond)),
		OperationLoader: dataloader.NewBatchedLoader(operationReader.getOperations, dataloader.WithWait[int, *models.Operation](time.Millisecond)),
		ShedLoader:      dataloader.NewBatchedLoader(shedReader.getSheds, dataloader.WithWait[int, *models.Shed](time.Millisecond)),
		PoolLoader:      dataloader.NewBatchedLoader(poolReader.getPools, dataloader.WithWait[int, *models.Pool](time.Millisecond)),
		CuyLoader:       dataloader.NewBatchedLoader(cuyReader.getCuys, dataloader.WithWait[int, *models.Cuy](time.Millisecond)),

		userRoleLoader:      dataloader.NewBatchedLoader(userReader.getRoleIds, dataloader.WithWait[int, []int](time.Millisecond)),
		roleOperationLoader: dataloader.NewBatchedLoader(roleReader.getOperationIds, dataloader.WithWait[int, []int](time.Millisecond)),

		cuyWeightLoader: dataloader.NewBatchedLoader(cuyRecordReader.getWeights, dataloader.WithWait[int, []*models.CuyWeight](time.Millisecond)),
		cuyDeathLoader:  dataloader.NewBatchedLoader(cuyRecordReader.getDeaths, dataloader.WithWait[int, *models.CuyDeath](time.Millisecond)),
		cuySacaLoader:   dataloader.NewBatchedLoader(cuyRecordReader.getSacas, dataloader.WithWait[int, *models.CuySaca](time.Millisecond)),
	}
}

// LoaderMiddleware gives every request its own loaders so nothing is cached across requests.
func LoaderMiddleware(store *models.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := WithLoaders(c.Request.Context(), NewLoaders(store))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func WithLoaders(ctx context.Context, loaders *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, loaders)
}

func For(ctx context.Context) *Loaders {
	return ctx.Value(loadersKey).(*Loaders)
}

// handleError creates array of result with the same error repeated for as many items requested
func handleError[T any](itemsLength int, err error) []*dataloader.Result[T] {
	result := make([]*dataloader.Result[T], itemsLength)
	for i := 0; i < itemsLength; i++ {
		result[i] = &dataloader.Result[T]{Error: err}
	}
	return result
}

// turns results from db into dataloader results, in the order of ids.
// Missing ids resolve to the zero value (nil for pointers).
func generateLoaderResults[T models.Identifier](results []T, ids []int) []*dataloader.Result[T] {
	resultMap := make(map[int]T, len(results))
	for _, result := range results {
		resultMap[result.GetId()] = result
	}

	loaderResults := make([]*dataloader.Result[T], 0, len(ids))
	for _, id := range ids {
		loaderResults = append(loaderResults, &dataloader.Result[T]{Data: resultMap[id]})
	}
	return loaderResults
}

// each id has many related results
func generateLoaderArrayResults[T models.RelatedData](results []T, referenceIds []int) []*dataloader.Result[[]T] {
	resultMap := make(map[int][]T)
	for _, result := range results {
		resultMap[result.GetReferenceId()] = append(resultMap[result.GetReferenceId()], result)
	}
	loaderResults := make([]*dataloader.Result[[]T], 0, len(referenceIds))
	for _, id := range referenceIds {
		loaderResults = append(loaderResults, &dataloader.Result[[]T]{Data: resultMap[id]})
	}
	return loaderResults
}

// each id has at most one related result
func generateLoaderRelatedResults[T models.RelatedData](results []T, referenceIds []int) []*dataloader.Result[T] {
	resultMap := make(map[int]T, len(results))
	for _, result := range results {
		resultMap[result.GetReferenceId()] = result
	}
	loaderResults := make([]*dataloader.Result[T], 0, len(referenceIds))
	for _, id := range referenceIds {
		loaderResults = append(loaderResults, &dataloader.Result[T]{Data: resultMap[id]})
	}
	return loaderResults
}

func generateIdListResults(results map[int][]int, referenceIds []int) []*dataloader.Result[[]int] {
	loaderResults := make([]*dataloader.Result[[]int], 0, len(referenceIds))
	for _, id := range referenceIds {
		loaderResults = append(loaderResults, &dataloader.Result[[]int]{Data: results[id]})
	}
	return loaderResults
}

// loadMany drops the nil entries of deleted rows and returns the first error.
func loadMany[T any](ctx context.Context, loader *dataloader.Loader[int, *T], ids []int) ([]*T, error) {
	if len(ids) == 0 {
		return []*T{}, nil
	}
	items, errs := loader.LoadMany(ctx, ids)()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	result := make([]*T, 0, len(items))
	for _, item := range items {
		if item != nil {
			result = append(result, item)
		}
	}
	return result, nil
}
