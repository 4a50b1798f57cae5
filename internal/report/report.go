// Package report renders experiment outcomes and converts them for storage.
package report

import (
	"fmt"
	"io"

	"github.com/go-sod/knncv/internal/experiment"
	"github.com/go-sod/knncv/internal/report/model"
)

var titles = map[experiment.Name]string{
	experiment.NameQuick:          "Quick check:",
	experiment.NameResubstitution: "Resubstitution:",
	experiment.NameLOOSweep:       "Leave-one-out:",
	experiment.NameFolds:          "Folds:",
	experiment.NameNormalizers:    "Normalizers:",
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Printer writes outcomes as plain text.
type Printer struct {
	w   io.Writer
	err error
}

func (p *Printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Print writes one outcome and returns the first write error.
func (p *Printer) Print(outcome experiment.Outcome) error {
	title, ok := titles[outcome.Experiment]
	if !ok {
		title = string(outcome.Experiment) + ":"
	}
	p.printf("%s\n", title)

	switch outcome.Experiment {
	case experiment.NameQuick:
		if outcome.Sample != nil {
			p.printf("predicted class: %s\n", outcome.Sample.Predicted)
			p.printf("true class: %s\n", outcome.Sample.True)
		}
		p.runs(outcome.Runs)
	case experiment.NameLOOSweep:
		for _, run := range outcome.Runs {
			p.printf("for k = %d accuracy: %v\n", run.K, run.Result.Accuracy)
		}
	case experiment.NameFolds:
		for i, run := range outcome.Runs {
			if i == 0 {
				p.printf("K=%d\n", run.K)
			}
			p.run(run, fmt.Sprintf("%d-fold accuracy: %%v\n", run.Folds))
		}
	case experiment.NameNormalizers:
		for i, run := range outcome.Runs {
			if i == 0 || outcome.Runs[i-1].K != run.K {
				if i > 0 {
					p.printf("\n")
				}
				p.printf("K=%d\n", run.K)
			} else {
				p.printf("\n")
			}
			p.run(run, fmt.Sprintf("Accuracy of %s is %%v\n", run.Normalizer))
		}
	default:
		p.runs(outcome.Runs)
	}
	p.printf("\n")
	return p.err
}

func (p *Printer) runs(runs []experiment.Run) {
	for _, run := range runs {
		p.run(run, "accuracy: %v\n")
	}
}

func (p *Printer) run(run experiment.Run, finalFormat string) {
	if run.PrintFolds {
		for _, fold := range run.Result.Folds {
			p.printf("fold %d accuracy: %v\n", fold.Index+1, fold.Accuracy)
		}
	}
	if run.PrintFinal {
		p.printf(finalFormat, run.Result.Accuracy)
	}
}

// Reports converts the runs of outcome into storable reports.
func Reports(dataset string, outcome experiment.Outcome) []model.Report {
	reports := make([]model.Report, 0, len(outcome.Runs))
	for _, run := range outcome.Runs {
		var folds []float64
		if run.Result.Folds != nil {
			folds = run.Result.FoldAccuracies()
		}
		reports = append(reports, model.NewReport(
			string(outcome.Experiment),
			dataset,
			run.K,
			run.Folds,
			run.Normalizer,
			folds,
			run.Result.Accuracy,
		))
	}
	return reports
}
