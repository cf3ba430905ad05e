package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/JoshPattman/jpf"
)

type deckExtractionRequest struct {
	DeckText string
}

type deckInfoExtractor jpf.MapFunc[deckExtractionRequest, DeckInfo]

// textExtractor extracts a DeckInfo from the plain text rendition of a deck,
// for models that cannot ingest the PDF directly.
type textExtractor struct {
	builder ModelBuilder
	prompts PromptSet
	logger  *slog.Logger
}

func newTextExtractor(builder ModelBuilder, prompts PromptSet, logger *slog.Logger) *textExtractor {
	return &textExtractor{builder: builder, prompts: prompts, logger: logger}
}

func (e *textExtractor) Extract(ctx context.Context, deck Deck) (DeckInfo, Usage, error) {
	if deck.Text == "" {
		return DeckInfo{}, Usage{}, fmt.Errorf("%s: no extractable text in PDF", deck.Path)
	}
	mf := buildDeckExtractionMapFunc(e.builder, e.prompts, e.logger)
	info, _, err := mf.Call(ctx, deckExtractionRequest{DeckText: deck.Text})
	if err != nil {
		return DeckInfo{}, Usage{}, fmt.Errorf("extract deck info: %w", err)
	}
	return info, Usage{}, nil
}

// Build a mapfunc (a typed LLM call with retry logic) for deck info
// extraction.
func buildDeckExtractionMapFunc(builder ModelBuilder, prompts PromptSet, logger *slog.Logger) deckInfoExtractor {
	enc := jpf.NewTemplateMessageEncoder[deckExtractionRequest](
		prompts.ExtractionSystemPrompt,
		prompts.extractionUserTemplateText(),
	)
	dec := jpf.NewJsonResponseDecoder[deckExtractionRequest, DeckInfo]()
	dec = wrapJsonDecoder(dec)
	dec = jpf.NewValidatingResponseDecoder(
		dec,
		func(_ deckExtractionRequest, info DeckInfo) error {
			if info.StartupName == "" {
				return errors.New("startup_name must not be empty")
			}
			return nil
		},
	)
	fed := jpf.NewRawMessageFeedbackGenerator()
	model := builder.BuildModel(logger)
	return jpf.NewFeedbackMapFunc(enc, dec, fed, model, jpf.UserRole, 10)
}
