package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JoshPattman/jpf"
)

type deckEvaluationRequest struct {
	Summary string
}

type deckEvaluator jpf.MapFunc[deckEvaluationRequest, Evaluation]

// textScorer scores an extracted deck summary through the text path model
// stack.
type textScorer struct {
	builder  ModelBuilder
	prompts  PromptSet
	criteria FundCriteria
	logger   *slog.Logger
}

func newTextScorer(builder ModelBuilder, prompts PromptSet, criteria FundCriteria, logger *slog.Logger) *textScorer {
	return &textScorer{builder: builder, prompts: prompts, criteria: criteria, logger: logger}
}

func (s *textScorer) Score(ctx context.Context, info DeckInfo) (Evaluation, Usage, error) {
	mf := buildDeckEvaluationMapFunc(s.builder, s.prompts, s.criteria, s.logger)
	eval, _, err := mf.Call(ctx, deckEvaluationRequest{Summary: info.Summary()})
	if err != nil {
		return Evaluation{}, Usage{}, fmt.Errorf("evaluate startup: %w", err)
	}
	return eval, Usage{}, nil
}

// Build a mapfunc for the evaluation step. Schema violations (score out of
// range, missing justification) are fed back to the model before giving up.
func buildDeckEvaluationMapFunc(builder ModelBuilder, prompts PromptSet, criteria FundCriteria, logger *slog.Logger) deckEvaluator {
	enc := jpf.NewTemplateMessageEncoder[deckEvaluationRequest](
		prompts.EvaluationSystemPrompt(criteria),
		prompts.evaluationUserTemplateText(),
	)
	dec := jpf.NewJsonResponseDecoder[deckEvaluationRequest, Evaluation]()
	dec = wrapJsonDecoder(dec)
	dec = jpf.NewValidatingResponseDecoder(
		dec,
		func(_ deckEvaluationRequest, eval Evaluation) error {
			return eval.Validate()
		},
	)
	fed := jpf.NewRawMessageFeedbackGenerator()
	model := builder.BuildModel(logger)
	return jpf.NewFeedbackMapFunc(enc, dec, fed, model, jpf.UserRole, 10)
}
