package main

import (
	"fmt"
	"strings"
)

// Stage is a funding round category recognised by the fund.
type Stage string

const (
	StagePreSeed Stage = "pre_seed"
	StageSeed    Stage = "seed"
	StageSeriesA Stage = "series_a"
	StageUnknown Stage = "unknown"
)

// stageOrder fixes the rendering order of stages in prompts and reports.
var stageOrder = []Stage{StagePreSeed, StageSeed, StageSeriesA}

// Display returns the human readable stage name.
func (s Stage) Display() string {
	switch s {
	case StagePreSeed:
		return "Pre-Seed"
	case StageSeed:
		return "Seed"
	case StageSeriesA:
		return "Series A"
	default:
		return "Unknown"
	}
}

// NormalizeStage maps a raw stage string onto a known Stage, falling back to
// StageUnknown for anything unrecognised.
func NormalizeStage(raw string) Stage {
	switch Stage(strings.ToLower(strings.TrimSpace(raw))) {
	case StagePreSeed:
		return StagePreSeed
	case StageSeed:
		return StageSeed
	case StageSeriesA:
		return StageSeriesA
	default:
		return StageUnknown
	}
}

// MoneyRange is an inclusive range of BRL amounts.
type MoneyRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

func (r MoneyRange) String() string {
	return fmt.Sprintf("R$ %s – R$ %s", formatThousands(r.Min), formatThousands(r.Max))
}

// PercentRange is an inclusive range of percentages.
type PercentRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r PercentRange) String() string {
	return fmt.Sprintf("%g%% – %g%%", r.Min, r.Max)
}

// FinancialCriteria holds the financial thresholds for a stage.
type FinancialCriteria struct {
	AnnualRevenue     MoneyRange `json:"annual_revenue"`
	RoundSize         MoneyRange `json:"round_size"`
	PreMoneyValuation MoneyRange `json:"pre_money_valuation"`
	Growth            string     `json:"growth"`
}

// CapTableCriteria holds the cap table expectations for a stage.
type CapTableCriteria struct {
	IdealComposition string       `json:"ideal_composition"`
	RoundDilution    PercentRange `json:"round_dilution"`
}

// StageCriteria is the full criteria entry for one funding stage.
type StageCriteria struct {
	Name       string            `json:"name"`
	Focus      string            `json:"focus"`
	Financials FinancialCriteria `json:"financials"`
	CapTable   CapTableCriteria  `json:"cap_table"`
	ProductBar string            `json:"product_bar"`
}

// FundCriteria is the fund's complete investment thesis, keyed by stage.
type FundCriteria struct {
	Location string                  `json:"location"`
	Stages   map[Stage]StageCriteria `json:"stages"`
}

// ForStage returns the criteria entry for the given stage.
func (fc FundCriteria) ForStage(stage Stage) (StageCriteria, error) {
	sc, ok := fc.Stages[stage]
	if !ok {
		return StageCriteria{}, fmt.Errorf("no criteria defined for stage %q", stage)
	}
	return sc, nil
}

// DefaultFundCriteria returns the built-in thesis of the fund.
func DefaultFundCriteria() FundCriteria {
	return FundCriteria{
		Location: "Brazil",
		Stages: map[Stage]StageCriteria{
			StagePreSeed: {
				Name:  "Pre-Seed",
				Focus: "Hypothesis validation and discovery. The company has no Product-Market Fit (PMF) yet, but must have a clear path towards it.",
				Financials: FinancialCriteria{
					AnnualRevenue:     MoneyRange{Min: 0, Max: 1_000_000},
					RoundSize:         MoneyRange{Min: 2_500_000, Max: 5_000_000},
					PreMoneyValuation: MoneyRange{Min: 15_000_000, Max: 35_000_000},
					Growth:            "Visibility towards Seed-level traction within 18-24 months",
				},
				CapTable: CapTableCriteria{
					IdealComposition: "90%+ of shares held by Founders + ESOP",
					RoundDilution:    PercentRange{Min: 10, Max: 15},
				},
				ProductBar: "Visibility towards first PMF signals within the next 18-24 months",
			},
			StageSeed: {
				Name:  "Seed",
				Focus: "First PMF signals and building the sales machine. The product already creates real value and the company stops being just a project.",
				Financials: FinancialCriteria{
					AnnualRevenue:     MoneyRange{Min: 3_500_000, Max: 10_000_000},
					RoundSize:         MoneyRange{Min: 8_000_000, Max: 20_000_000},
					PreMoneyValuation: MoneyRange{Min: 32_000_000, Max: 60_000_000},
					Growth:            "3x per year (approx. +10% per month)",
				},
				CapTable: CapTableCriteria{
					IdealComposition: "80%+ of shares held by Founders + ESOP",
					RoundDilution:    PercentRange{Min: 15, Max: 20},
				},
				ProductBar: "Creates real value with clear PMF signals: high NPS, strong recurrence/retention, low churn, clear positioning and ICP",
			},
			StageSeriesA: {
				Name:  "Series A",
				Focus: "Scalability and efficiency. The sales machine must be ready to receive capital and accelerate.",
				Financials: FinancialCriteria{
					AnnualRevenue:     MoneyRange{Min: 18_000_000, Max: 30_000_000},
					RoundSize:         MoneyRange{Min: 25_000_000, Max: 50_000_000},
					PreMoneyValuation: MoneyRange{Min: 75_000_000, Max: 200_000_000},
					Growth:            "2.5x per year (approx. +8% per month)",
				},
				CapTable: CapTableCriteria{
					IdealComposition: "65%+ of shares held by Founders + ESOP",
					RoundDilution:    PercentRange{Min: 20, Max: 25},
				},
				ProductBar: "Sales machine ready to scale",
			},
		},
	}
}

// RenderForPrompt formats the criteria table for inclusion in an LLM prompt.
// Stage order is stable so the same thesis always renders the same text.
func (fc FundCriteria) RenderForPrompt() string {
	var sb strings.Builder
	for _, stage := range stageOrder {
		sc, ok := fc.Stages[stage]
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "\n=== %s ===\n", sc.Name)
		fmt.Fprintf(&sb, "Focus: %s\n", sc.Focus)
		sb.WriteString("\nMetrics & Financials:\n")
		fmt.Fprintf(&sb, "  - Annual Revenue: %s\n", sc.Financials.AnnualRevenue)
		fmt.Fprintf(&sb, "  - Round Size: %s\n", sc.Financials.RoundSize)
		fmt.Fprintf(&sb, "  - Valuation (Pre-Money): %s\n", sc.Financials.PreMoneyValuation)
		fmt.Fprintf(&sb, "  - Growth: %s\n", sc.Financials.Growth)
		sb.WriteString("\nStructure & Cap Table:\n")
		fmt.Fprintf(&sb, "  - Ideal Composition: %s\n", sc.CapTable.IdealComposition)
		fmt.Fprintf(&sb, "  - Round Dilution: %s\n", sc.CapTable.RoundDilution)
		sb.WriteString("\nProduct & Processes:\n")
		fmt.Fprintf(&sb, "  - %s\n", sc.ProductBar)
	}
	return sb.String()
}

// scoreLabels maps each score to its one line description.
var scoreLabels = map[int]string{
	0: "Pass - does not meet basic criteria",
	1: "Very weak - few positives, many critical gaps",
	2: "Weak - some positives, but significant gaps",
	3: "Average - interesting potential, needs more validation",
	4: "Strong - meets most criteria, definitely worth a conversation",
	5: "Exceptional - meets all criteria, top priority for a meeting",
}

// MinScore and MaxScore bound the evaluation scale.
const (
	MinScore = 0
	MaxScore = 5
)

// ScoreLabel returns the description for a score, or an empty string for a
// score outside the scale.
func ScoreLabel(score int) string {
	return scoreLabels[score]
}

// RenderScoreScale formats the 0-5 scale for inclusion in an LLM prompt.
func RenderScoreScale() string {
	var sb strings.Builder
	sb.WriteString("SCORING SCALE:\n")
	for score := MinScore; score <= MaxScore; score++ {
		fmt.Fprintf(&sb, "- %d: %s\n", score, scoreLabels[score])
	}
	return strings.TrimRight(sb.String(), "\n")
}

// formatThousands renders n with comma separated thousands groups.
func formatThousands(n int64) string {
	if n < 0 {
		return "-" + formatThousands(-n)
	}
	s := fmt.Sprintf("%d", n)
	var sb strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
