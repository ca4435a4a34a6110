package graph

// This file will be automatically regenerated based on the schema, any resolver implementations
// will be copied through when generating and any unknown code will be moved to the end.
// Code generated by github.com/99designs/gqlgen version v0.17.41

import (
	"context"
	"time"

	"github.com/mmdatafocus/grange_backend/middlewares"
	"github.com/mmdatafocus/grange_backend/models"
	"github.com/mmdatafocus/grange_backend/utils"
)

// Death is the resolver for the death field.
func (r *cuyReportResolver) Death(ctx context.Context, obj *models.CuyReport) (*models.CuyDeath, error) {
	return middlewares.GetDeathOfCuy(ctx, obj.ID)
}

// Saca is the resolver for the saca field.
func (r *cuyReportResolver) Saca(ctx context.Context, obj *models.CuyReport) (*models.CuySaca, error) {
	return middlewares.GetSacaOfCuy(ctx, obj.ID)
}

// CuyDeath is the resolver for the cuy_death field.
func (r *mobilizationReportResolver) CuyDeath(ctx context.Context, obj *models.MobilizationReport) (*models.CuyDeath, error) {
	return middlewares.GetDeathOfCuy(ctx, obj.CuyId)
}

// CuySaca is the resolver for the cuy_saca field.
func (r *mobilizationReportResolver) CuySaca(ctx context.Context, obj *models.MobilizationReport) (*models.CuySaca, error) {
	return middlewares.GetSacaOfCuy(ctx, obj.CuyId)
}

// User is the resolver for the user field.
func (r *mobilizationReportResolver) User(ctx context.Context, obj *models.MobilizationReport) (*models.User, error) {
	return middlewares.GetUser(ctx, obj.UserId)
}

// GetDeathCuysReport is the resolver for the getDeathCuysReport field.
func (r *queryResolver) GetDeathCuysReport(ctx context.Context, idShed *int, idPool *int, dateFrom *time.Time, dateTo *time.Time, reason *string, skip *int, limit *int) (*models.CuyReportPagination, error) {
	ctx, span := r.span(ctx, "getDeathCuysReport")
	defer span.End()
	if err := r.Store.CheckReportAccess(ctx); err != nil {
		return nil, err
	}
	filter := models.ReportFilter{ShedId: idShed, PoolId: idPool, DateFrom: dateFrom, DateTo: dateTo, Reason: utils.TrimPtr(reason)}
	return r.Store.Cuys.DeathReport(ctx, filter, utils.NormalizePage(skip, limit))
}

// GetSacaCuysReport is the resolver for the getSacaCuysReport field.
func (r *queryResolver) GetSacaCuysReport(ctx context.Context, idShed *int, idPool *int, dateFrom *time.Time, dateTo *time.Time, reason *string, skip *int, limit *int) (*models.CuyReportPagination, error) {
	ctx, span := r.span(ctx, "getSacaCuysReport")
	defer span.End()
	if err := r.Store.CheckReportAccess(ctx); err != nil {
		return nil, err
	}
	filter := models.ReportFilter{ShedId: idShed, PoolId: idPool, DateFrom: dateFrom, DateTo: dateTo, Reason: utils.TrimPtr(reason)}
	return r.Store.Cuys.SacaReport(ctx, filter, utils.NormalizePage(skip, limit))
}

// GetMobilizationReports is the resolver for the getMobilizationReports field.
func (r *queryResolver) GetMobilizationReports(ctx context.Context, idCuy *int, from *int, destination *int, dateFrom *time.Time, dateTo *time.Time, reason *string, skip *int, limit *int) (*models.MobilizationReportPagination, error) {
	ctx, span := r.span(ctx, "getMobilizationReports")
	defer span.End()
	if err := r.Store.CheckReportAccess(ctx); err != nil {
		return nil, err
	}
	filter := models.MobilizationFilter{
		CuyId:         idCuy,
		OriginId:      from,
		DestinationId: destination,
		DateFrom:      dateFrom,
		DateTo:        dateTo,
		Reason:        utils.TrimPtr(reason),
	}
	return r.Store.Mobilizations.Reports(ctx, filter, utils.NormalizePage(skip, limit))
}

// CuyReport returns CuyReportResolver implementation.
func (r *Resolver) CuyReport() CuyReportResolver { return &cuyReportResolver{r} }

// MobilizationReport returns MobilizationReportResolver implementation.
func (r *Resolver) MobilizationReport() MobilizationReportResolver {
	return &mobilizationReportResolver{r}
}

type cuyReportResolver struct{ *Resolver }
type mobilizationReportResolver struct{ *Resolver }
