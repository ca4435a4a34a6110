package graph

import (
	"context"

	_ "github.com/99designs/gqlgen/plugin"
	"github.com/mmdatafocus/grange_backend/models"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

//go:generate go run github.com/99designs/gqlgen
//go:generate go run ../cmd/gen-operations -schema schema -out ../models/operationRegistry.go
// This file will not be regenerated automatically.
//
// It serves as dependency injection for your app, add any dependencies you require here.

type Resolver struct {
	Store  *models.Store
	Tracer trace.Tracer
}

func (r *Resolver) span(ctx context.Context, name string) (context.Context, trace.Span) {
	tracer := r.Tracer
	if tracer == nil {
		tracer = otel.Tracer("grange-graph")
	}
	return tracer.Start(ctx, name)
}
