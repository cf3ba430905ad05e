package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// LoadFundCriteria reads a JSON criteria file overriding the built-in thesis.
func LoadFundCriteria(path string) (FundCriteria, error) {
	f, err := os.Open(path)
	if err != nil {
		return FundCriteria{}, errors.Join(errors.New("failed to read criteria file"), err)
	}
	defer f.Close()
	var fc FundCriteria
	if err := json.NewDecoder(f).Decode(&fc); err != nil {
		return FundCriteria{}, errors.Join(errors.New("failed to parse criteria file"), err)
	}
	if err := fc.Validate(); err != nil {
		return FundCriteria{}, fmt.Errorf("invalid criteria file %s: %w", path, err)
	}
	return fc, nil
}

// Validate checks that the thesis covers every stage and that every range is
// well formed.
func (fc FundCriteria) Validate() error {
	var errs []error
	if fc.Location == "" {
		errs = append(errs, errors.New("location must not be empty"))
	}
	for _, stage := range stageOrder {
		sc, ok := fc.Stages[stage]
		if !ok {
			errs = append(errs, fmt.Errorf("missing criteria for stage %q", stage))
			continue
		}
		if sc.Name == "" {
			errs = append(errs, fmt.Errorf("stage %q: name must not be empty", stage))
		}
		for _, mr := range []struct {
			label string
			r     MoneyRange
		}{
			{"annual_revenue", sc.Financials.AnnualRevenue},
			{"round_size", sc.Financials.RoundSize},
			{"pre_money_valuation", sc.Financials.PreMoneyValuation},
		} {
			if mr.r.Min < 0 || mr.r.Max < mr.r.Min {
				errs = append(errs, fmt.Errorf("stage %q: %s range [%d, %d] is not valid", stage, mr.label, mr.r.Min, mr.r.Max))
			}
		}
		if d := sc.CapTable.RoundDilution; d.Min < 0 || d.Max < d.Min || d.Max > 100 {
			errs = append(errs, fmt.Errorf("stage %q: round_dilution range [%g, %g] is not valid", stage, d.Min, d.Max))
		}
	}
	return errors.Join(errs...)
}
