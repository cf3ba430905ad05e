package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockExtractionResponse is the kind of JSON body a structured-output model
// returns for the extraction step.
const mockExtractionResponse = `{
	"startup_name": "AgroTrace",
	"location": "Sao Paulo, Brazil",
	"stage": "seed",
	"annual_revenue": "R$ 4M",
	"round_size": "R$ 12M",
	"pre_money_valuation": "R$ 45M",
	"traction_metrics": "320 paying customers, MRR R$ 330k",
	"founding_team": "Two ex-Embraer engineers, one repeat founder"
}`

func TestDeckInfoDecodeFromModelResponse(t *testing.T) {
	var info DeckInfo
	require.NoError(t, json.Unmarshal([]byte(mockExtractionResponse), &info))

	assert.Equal(t, "AgroTrace", info.StartupName)
	assert.Equal(t, "Sao Paulo, Brazil", info.Location)
	assert.Equal(t, StageSeed, info.Stage)
	assert.Equal(t, "R$ 4M", info.AnnualRevenue)
	assert.Equal(t, "R$ 45M", info.PreMoneyValuation)
	assert.Empty(t, info.CapTable)
}

func TestStageDecodeUnknownValue(t *testing.T) {
	var info DeckInfo
	require.NoError(t, json.Unmarshal([]byte(`{"startup_name":"X","stage":"series_c"}`), &info))
	assert.Equal(t, StageUnknown, info.Stage)
}

func TestDeckInfoSummarySkipsEmptyFields(t *testing.T) {
	info := DeckInfo{
		StartupName: "AgroTrace",
		Location:    "Brazil",
		Stage:       StageSeed,
		CapTable:    "Founders 85%, ESOP 10%",
	}
	summary := info.Summary()

	assert.Contains(t, summary, "  - Name: AgroTrace")
	assert.Contains(t, summary, "  - Stage: Seed")
	assert.Contains(t, summary, "  - Cap Table: Founders 85%, ESOP 10%")
	assert.NotContains(t, summary, "Annual Revenue")
	assert.NotContains(t, summary, "Traction")
}

func TestDeckInfoSummaryUnknownStageOmitted(t *testing.T) {
	info := DeckInfo{StartupName: "X", Stage: StageUnknown}
	assert.NotContains(t, info.Summary(), "Stage")
}

func TestDeckInfoSummaryEmpty(t *testing.T) {
	assert.Equal(t, "  - No information extracted", DeckInfo{}.Summary())
}

// mockEvaluationResponse is a full structured evaluation body.
const mockEvaluationResponse = `{
	"preliminary_analysis": "Revenue R$ 4M is within the Seed range 3.5M-10M.",
	"score": 4,
	"stage": "seed",
	"justification": "Strong Seed-stage fit with proven traction.",
	"strengths": ["Revenue in range", "Experienced founders"],
	"weaknesses": ["Dilution above the target band"],
	"criteria": {
		"location": {"met": true, "evidence": "Location: Sao Paulo, Brazil"},
		"stage_fit": {"met": true, "evidence": "Stage: seed"},
		"financials": {"met": true, "evidence": "Annual Revenue: R$ 4M"},
		"product_traction": {"met": true, "evidence": "320 paying customers"},
		"team": {"met": false, "evidence": "No prior exits mentioned"}
	}
}`

func TestEvaluationDecodeFromModelResponse(t *testing.T) {
	var eval Evaluation
	require.NoError(t, json.Unmarshal([]byte(mockEvaluationResponse), &eval))
	require.NoError(t, eval.Validate())

	assert.Equal(t, 4, eval.Score)
	assert.Equal(t, StageSeed, eval.Stage)
	assert.Equal(t, "Strong Seed-stage fit with proven traction.", eval.Justification)
	assert.Len(t, eval.Strengths, 2)
	assert.True(t, eval.Criteria.Financials.Met)
	assert.False(t, eval.Criteria.Team.Met)
	assert.Equal(t, "No prior exits mentioned", eval.Criteria.Team.Evidence)
}

func TestEvaluationValidate(t *testing.T) {
	valid := Evaluation{
		PreliminaryAnalysis: "checked ranges",
		Score:               3,
		Justification:       "fine",
	}
	require.NoError(t, valid.Validate())

	tooHigh := valid
	tooHigh.Score = 6
	assert.ErrorContains(t, tooHigh.Validate(), "outside the 0-5 scale")

	negative := valid
	negative.Score = -1
	assert.Error(t, negative.Validate())

	noJustification := valid
	noJustification.Justification = "  "
	assert.ErrorContains(t, noJustification.Validate(), "justification")

	noAnalysis := valid
	noAnalysis.PreliminaryAnalysis = ""
	assert.ErrorContains(t, noAnalysis.Validate(), "preliminary_analysis")
}

func TestUsageAdd(t *testing.T) {
	sum := Usage{InputTokens: 100, OutputTokens: 20, TotalTokens: 120}.
		Add(Usage{InputTokens: 50, OutputTokens: 5, TotalTokens: 55})
	assert.Equal(t, Usage{InputTokens: 150, OutputTokens: 25, TotalTokens: 175}, sum)
}
