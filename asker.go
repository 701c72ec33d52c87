package lumi

import "context"

// Asker sends a single prompt to a text-generation model.
type Asker interface {
	// Ask sends prompt as a single, non-streaming turn and returns the reply text.
	// Returns EUNAVAILABLE if the model service cannot be reached, EUPSTREAM if
	// it answers with a failure status and EMALFORMED if the reply is empty.
	Ask(ctx context.Context, prompt string) (string, error)
}
