// Package experiment runs the evaluation scenarios of the command line tool and
// collects their results for presentation.
package experiment

import (
	"context"
	"fmt"

	"github.com/go-sod/knncv/internal/crossval"
	"github.com/go-sod/knncv/internal/geom"
	"github.com/go-sod/knncv/internal/logging"
	"github.com/go-sod/knncv/internal/normalize"
	"github.com/go-sod/knncv/internal/predictor"
	"github.com/go-sod/knncv/internal/score"
)

type Name string

const (
	// Predict the first point with a classifier trained on everything, then cross validate
	NameQuick Name = "QUICK"
	// Score a classifier on its own training set
	NameResubstitution Name = "RESUBSTITUTION"
	// Leave-one-out cross validation for a range of k
	NameLOOSweep Name = "LOO_SWEEP"
	// Fold accuracies of one k for several fold counts
	NameFolds Name = "FOLDS"
	// Cross validation of normalized points for every normalizer
	NameNormalizers Name = "NORMALIZERS"
)

// Names lists every experiment.
var Names = []Name{NameQuick, NameResubstitution, NameLOOSweep, NameFolds, NameNormalizers}

func Known(name Name) bool {
	for _, n := range Names {
		if n == name {
			return true
		}
	}
	return false
}

// ProvideFn returns a runner executing the given plan.
type ProvideFn func(plan Plan) (*Runner, error)

// Run is a single evaluation. Folds is zero when the classifier was scored on its
// training set.
type Run struct {
	K          int
	Folds      int
	Normalizer string
	Result     *crossval.Result
	PrintFolds bool
	PrintFinal bool
}

// Sample is a single prediction shown next to the true label.
type Sample struct {
	Name      string
	Predicted string
	True      string
}

// Outcome collects the runs of one experiment in execution order.
type Outcome struct {
	Experiment Name
	Sample     *Sample
	Runs       []Run
}

type Option func(*Runner)

func WithMetric(fn score.Fn) Option {
	return func(r *Runner) {
		r.metric = fn
	}
}

// WithQuickK sets the neighbor count of the quick experiment.
func WithQuickK(k int) Option {
	return func(r *Runner) {
		r.quickK = k
	}
}

func New(provide predictor.ProvideFn, plan Plan, opts ...Option) (*Runner, error) {
	if provide == nil {
		return nil, fmt.Errorf("predictor provide function is not set")
	}
	r := &Runner{provide: provide, plan: plan, metric: score.Accuracy, quickK: 5}
	for _, f := range opts {
		f(r)
	}
	return r, nil
}

type Runner struct {
	provide predictor.ProvideFn
	metric  score.Fn
	plan    Plan
	quickK  int
}

func (r *Runner) Plan() Plan {
	return r.plan
}

// RunAll runs the named experiments in order.
func (r *Runner) RunAll(ctx context.Context, names []Name, points []geom.Point) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(names))
	for _, name := range names {
		outcome, err := r.Run(ctx, name, points)
		if err != nil {
			return nil, err
		}
		outcomes = append(outcomes, *outcome)
	}
	return outcomes, nil
}

func (r *Runner) Run(ctx context.Context, name Name, points []geom.Point) (*Outcome, error) {
	logger := logging.FromContext(ctx)
	logger.Infof("running experiment %s on %d points", name, len(points))

	var (
		outcome *Outcome
		err     error
	)
	switch name {
	case NameQuick:
		outcome, err = r.quick(ctx, points)
	case NameResubstitution:
		outcome, err = r.resubstitution(points)
	case NameLOOSweep:
		outcome, err = r.looSweep(ctx, points)
	case NameFolds:
		outcome, err = r.folds(ctx, points)
	case NameNormalizers:
		outcome, err = r.normalizers(ctx, points)
	default:
		return nil, fmt.Errorf("unknown experiment: %s", name)
	}
	if err != nil {
		return nil, fmt.Errorf("experiment %s: %w", name, err)
	}
	return outcome, nil
}

func (r *Runner) classifier(k int) (predictor.Classifier, error) {
	c, err := r.provide(k)
	if err != nil {
		return nil, fmt.Errorf("can not create classifier instance: %w", err)
	}
	return c, nil
}

func (r *Runner) quick(ctx context.Context, points []geom.Point) (*Outcome, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("no points to classify")
	}
	c, err := r.classifier(r.quickK)
	if err != nil {
		return nil, err
	}
	c.Train(points)
	predicted, err := c.PredictOne(points[0])
	if err != nil {
		return nil, err
	}
	result, err := crossval.Run(ctx, points, r.plan.Quick.Folds, c, r.metric)
	if err != nil {
		return nil, err
	}
	return &Outcome{
		Experiment: NameQuick,
		Sample:     &Sample{Name: points[0].Name, Predicted: predicted, True: points[0].Label},
		Runs:       []Run{{K: r.quickK, Folds: r.plan.Quick.Folds, Result: result, PrintFinal: true}},
	}, nil
}

func (r *Runner) resubstitution(points []geom.Point) (*Outcome, error) {
	k := r.plan.Resubstitution.K
	c, err := r.classifier(k)
	if err != nil {
		return nil, err
	}
	c.Train(points)
	predicted, err := c.PredictMany(points)
	if err != nil {
		return nil, err
	}
	accuracy, err := r.metric(geom.Labels(points), predicted)
	if err != nil {
		return nil, err
	}
	return &Outcome{
		Experiment: NameResubstitution,
		Runs: []Run{{
			K:          k,
			Result:     &crossval.Result{Accuracy: accuracy},
			PrintFinal: true,
		}},
	}, nil
}

func (r *Runner) looSweep(ctx context.Context, points []geom.Point) (*Outcome, error) {
	outcome := &Outcome{Experiment: NameLOOSweep}
	for k := r.plan.LOOSweep.MinK; k <= r.plan.LOOSweep.MaxK; k++ {
		c, err := r.classifier(k)
		if err != nil {
			return nil, err
		}
		result, err := crossval.Run(ctx, points, len(points), c, r.metric)
		if err != nil {
			return nil, fmt.Errorf("k=%d: %w", k, err)
		}
		outcome.Runs = append(outcome.Runs, Run{K: k, Folds: len(points), Result: result, PrintFinal: true})
	}
	return outcome, nil
}

func (r *Runner) folds(ctx context.Context, points []geom.Point) (*Outcome, error) {
	plan := r.plan.Folds
	c, err := r.classifier(plan.K)
	if err != nil {
		return nil, err
	}
	outcome := &Outcome{Experiment: NameFolds}
	for _, n := range plan.Folds {
		result, err := crossval.Run(ctx, points, n, c, r.metric)
		if err != nil {
			return nil, fmt.Errorf("%d folds: %w", n, err)
		}
		outcome.Runs = append(outcome.Runs, Run{
			K:          plan.K,
			Folds:      n,
			Result:     result,
			PrintFolds: plan.PrintFolds,
			PrintFinal: plan.PrintFinal,
		})
	}
	return outcome, nil
}

func (r *Runner) normalizers(ctx context.Context, points []geom.Point) (*Outcome, error) {
	plan := r.plan.Normalizers
	outcome := &Outcome{Experiment: NameNormalizers}
	for _, k := range plan.Ks {
		c, err := r.classifier(k)
		if err != nil {
			return nil, err
		}
		for _, t := range plan.Normalizers {
			n, err := normalize.For(t)
			if err != nil {
				return nil, err
			}
			normalized, err := normalize.FitTransform(n, points)
			if err != nil {
				return nil, err
			}
			result, err := crossval.Run(ctx, normalized, plan.Folds, c, r.metric)
			if err != nil {
				return nil, fmt.Errorf("k=%d %s: %w", k, n.Name(), err)
			}
			outcome.Runs = append(outcome.Runs, Run{
				K:          k,
				Folds:      plan.Folds,
				Normalizer: n.Name(),
				Result:     result,
				PrintFolds: plan.PrintFolds,
				PrintFinal: true,
			})
		}
	}
	return outcome, nil
}
