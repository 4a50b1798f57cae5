package experiment

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/go-sod/knncv/internal/normalize"
)

// Plan holds the parameters of every experiment.
type Plan struct {
	Quick          QuickPlan          `toml:"quick"`
	Resubstitution ResubstitutionPlan `toml:"resubstitution"`
	LOOSweep       LOOSweepPlan       `toml:"loo_sweep"`
	Folds          FoldsPlan          `toml:"folds"`
	Normalizers    NormalizersPlan    `toml:"normalizers"`
}

type QuickPlan struct {
	Folds int `toml:"folds"`
}

type ResubstitutionPlan struct {
	K int `toml:"k"`
}

type LOOSweepPlan struct {
	MinK int `toml:"min_k"`
	MaxK int `toml:"max_k"`
}

type FoldsPlan struct {
	K          int   `toml:"k"`
	Folds      []int `toml:"folds"`
	PrintFolds bool  `toml:"print_folds"`
	PrintFinal bool  `toml:"print_final"`
}

type NormalizersPlan struct {
	Ks          []int            `toml:"ks"`
	Folds       int              `toml:"folds"`
	Normalizers []normalize.Type `toml:"normalizers"`
	PrintFolds  bool             `toml:"print_folds"`
}

func DefaultPlan() Plan {
	return Plan{
		Quick:          QuickPlan{Folds: 10},
		Resubstitution: ResubstitutionPlan{K: 1},
		LOOSweep:       LOOSweepPlan{MinK: 1, MaxK: 30},
		Folds:          FoldsPlan{K: 19, Folds: []int{2, 10, 20}, PrintFolds: true},
		Normalizers: NormalizersPlan{
			Ks:          []int{5, 7},
			Folds:       2,
			Normalizers: append([]normalize.Type(nil), normalize.Types...),
			PrintFolds:  true,
		},
	}
}

// LoadPlan reads a TOML plan from path. Keys missing in the file keep their defaults.
func LoadPlan(path string) (Plan, error) {
	plan := DefaultPlan()
	if path == "" {
		return plan, nil
	}
	md, err := toml.DecodeFile(path, &plan)
	if err != nil {
		return Plan{}, fmt.Errorf("decode plan %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Plan{}, fmt.Errorf("plan %s: unknown keys %v", path, undecoded)
	}
	return plan, nil
}
