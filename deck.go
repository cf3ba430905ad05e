package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Deck is a single pitch deck loaded from disk. Raw always holds the PDF
// bytes; Text is only populated when the selected extraction model needs a
// plain text rendition.
type Deck struct {
	Path string
	Raw  []byte
	Text string
}

// DeckInfo is the structured summary the model extracts from a pitch deck.
// Empty strings mean the deck did not contain the information.
type DeckInfo struct {
	StartupName        string `json:"startup_name"`
	Location           string `json:"location"`
	Stage              Stage  `json:"stage"`
	AnnualRevenue      string `json:"annual_revenue,omitempty"`
	RoundSize          string `json:"round_size,omitempty"`
	PreMoneyValuation  string `json:"pre_money_valuation,omitempty"`
	AnnualGrowth       string `json:"annual_growth,omitempty"`
	ProductDescription string `json:"product_description,omitempty"`
	TractionMetrics    string `json:"traction_metrics,omitempty"`
	FoundingTeam       string `json:"founding_team,omitempty"`
	CurrentCustomers   string `json:"current_customers,omitempty"`
	BusinessModel      string `json:"business_model,omitempty"`
	MarketSize         string `json:"market_size,omitempty"`
	CompetitiveEdge    string `json:"competitive_edge,omitempty"`
	CapTable           string `json:"cap_table,omitempty"`
	OtherNotes         string `json:"other_notes,omitempty"`
}

// UnmarshalJSON accepts any stage string, collapsing unknown values to
// StageUnknown rather than failing the whole decode.
func (s *Stage) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = NormalizeStage(raw)
	return nil
}

// summaryField pairs a display label with an extracted value.
type summaryField struct {
	Label string
	Value string
}

// Fields returns the extracted values in display order, skipping empty ones.
func (d DeckInfo) Fields() []summaryField {
	stage := ""
	if d.Stage != StageUnknown && d.Stage != "" {
		stage = d.Stage.Display()
	}
	all := []summaryField{
		{"Name", d.StartupName},
		{"Location", d.Location},
		{"Stage", stage},
		{"Annual Revenue", d.AnnualRevenue},
		{"Round Size", d.RoundSize},
		{"Valuation (Pre-Money)", d.PreMoneyValuation},
		{"Annual Growth", d.AnnualGrowth},
		{"Product", d.ProductDescription},
		{"Traction", d.TractionMetrics},
		{"Founding Team", d.FoundingTeam},
		{"Current Customers", d.CurrentCustomers},
		{"Business Model", d.BusinessModel},
		{"Market Size", d.MarketSize},
		{"Competitive Edge", d.CompetitiveEdge},
		{"Cap Table", d.CapTable},
		{"Other Notes", d.OtherNotes},
	}
	fields := make([]summaryField, 0, len(all))
	for _, f := range all {
		if f.Value != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// Summary formats the extracted information for the evaluation prompt.
func (d DeckInfo) Summary() string {
	fields := d.Fields()
	if len(fields) == 0 {
		return "  - No information extracted"
	}
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		lines = append(lines, fmt.Sprintf("  - %s: %s", f.Label, f.Value))
	}
	return strings.Join(lines, "\n")
}

// CriterionResult is the model's verdict on a single fund criterion, backed
// by a direct quote from the extracted data.
type CriterionResult struct {
	Met      bool   `json:"met"`
	Evidence string `json:"evidence"`
}

// CriteriaResults collects the verdicts on every fund criterion.
type CriteriaResults struct {
	Location        CriterionResult `json:"location"`
	StageFit        CriterionResult `json:"stage_fit"`
	Financials      CriterionResult `json:"financials"`
	ProductTraction CriterionResult `json:"product_traction"`
	Team            CriterionResult `json:"team"`
}

// rows returns the criteria in display order.
func (c CriteriaResults) rows() []struct {
	Label  string
	Result CriterionResult
} {
	return []struct {
		Label  string
		Result CriterionResult
	}{
		{"Location", c.Location},
		{"Stage Fit", c.StageFit},
		{"Financial Metrics", c.Financials},
		{"Product & Traction", c.ProductTraction},
		{"Team", c.Team},
	}
}

// Evaluation is the structured verdict on a startup.
type Evaluation struct {
	PreliminaryAnalysis string          `json:"preliminary_analysis"`
	Score               int             `json:"score"`
	Stage               Stage           `json:"stage"`
	Justification       string          `json:"justification"`
	Strengths           []string        `json:"strengths"`
	Weaknesses          []string        `json:"weaknesses"`
	Criteria            CriteriaResults `json:"criteria"`
}

// Validate checks the evaluation fields the model must always fill.
func (e Evaluation) Validate() error {
	var errs []error
	if e.Score < MinScore || e.Score > MaxScore {
		errs = append(errs, fmt.Errorf("score %d is outside the %d-%d scale", e.Score, MinScore, MaxScore))
	}
	if strings.TrimSpace(e.Justification) == "" {
		errs = append(errs, errors.New("justification must not be empty"))
	}
	if strings.TrimSpace(e.PreliminaryAnalysis) == "" {
		errs = append(errs, errors.New("preliminary_analysis must not be empty"))
	}
	return errors.Join(errs...)
}

// Usage accumulates token counts across the LLM calls for one deck.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
	TotalTokens  int `json:"total_tokens"`
}

// Add returns the element-wise sum of two usages.
func (u Usage) Add(other Usage) Usage {
	return Usage{
		InputTokens:  u.InputTokens + other.InputTokens,
		OutputTokens: u.OutputTokens + other.OutputTokens,
		TotalTokens:  u.TotalTokens + other.TotalTokens,
	}
}

// Result is the full outcome for one deck, as persisted to the JSON result
// file.
type Result struct {
	File            string     `json:"file"`
	EvaluatedAt     time.Time  `json:"evaluated_at"`
	PromptVersion   string     `json:"prompt_version"`
	ExtractionModel string     `json:"extraction_model"`
	EvaluationModel string     `json:"evaluation_model"`
	Info            DeckInfo   `json:"deck_info"`
	Evaluation      Evaluation `json:"evaluation"`
	ScoreLabel      string     `json:"score_label"`
	Usage           Usage      `json:"usage"`
}
