// Package demo runs every pattern once, in a fixed order.
package demo

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"foodie/pkg/config"
	"foodie/pkg/logger"
	"foodie/pkg/otel"
)

const (
	GroupBehavioral = "behavioral"
	GroupStructural = "structural"
	GroupCreational = "creational"
)

// Deps is what a demonstration may use.
type Deps struct {
	Log      *logger.Logger
	Config   *config.Config
	Registry prometheus.Registerer
}

// Demo is one pattern demonstration. Run returns an error when the pattern
// did not behave as demonstrated.
type Demo struct {
	Group string
	Name  string
	Run   func(ctx context.Context, d Deps) error
}

// Catalogue lists every demonstration in the order they run.
func Catalogue() []Demo {
	return []Demo{
		{GroupBehavioral, "observer", runObserver},
		{GroupBehavioral, "strategy", runStrategy},
		{GroupBehavioral, "command", runCommand},
		{GroupBehavioral, "state", runState},
		{GroupBehavioral, "chain", runChain},
		{GroupStructural, "adapter", runAdapter},
		{GroupStructural, "decorator", runDecorator},
		{GroupStructural, "facade", runFacade},
		{GroupStructural, "composite", runComposite},
		{GroupStructural, "proxy", runProxy},
		{GroupCreational, "factory", runFactory},
		{GroupCreational, "abstract-factory", runAbstractFactory},
		{GroupCreational, "builder", runBuilder},
		{GroupCreational, "singleton", runSingleton},
		{GroupCreational, "prototype", runPrototype},
	}
}

type Runner struct {
	deps Deps
}

func NewRunner(deps Deps) *Runner {
	if deps.Config == nil {
		deps.Config = config.Default()
	}
	return &Runner{deps: deps}
}

// Run executes each demo once inside its own span. A failing demo does not
// stop the ones after it.
func (r *Runner) Run(ctx context.Context, demos []Demo) error {
	var errs []error
	for _, d := range demos {
		spanCtx, span := otel.AddSpan(ctx, d.Group+"/"+d.Name,
			attribute.String("pattern.group", d.Group),
			attribute.String("pattern.name", d.Name),
		)
		r.deps.Log.Info(spanCtx, "running demo", "group", d.Group, "pattern", d.Name)
		if err := d.Run(spanCtx, r.deps); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			r.deps.Log.Error(spanCtx, "demo failed", "pattern", d.Name, "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", d.Name, err))
		}
		span.End()
	}
	return errors.Join(errs...)
}
