package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"layover-os/pkg/llmprovider"
)

var errEmptyGeneration = errors.New("empty generation")

// synthesize asks the generator for a natural-language reply. Any outcome
// other than non-empty text within GenerationTimeout yields fallback.
func (uc *implUseCase) synthesize(ctx context.Context, system, prompt, fallback string) string {
	if uc.generator == nil {
		return fallback
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.GenerationTimeout)
	defer cancel()

	type result struct {
		text string
		err  error
	}
	done := make(chan result, 1)

	go func() {
		defer func() {
			if p := recover(); p != nil {
				done <- result{err: fmt.Errorf("generator panic: %v", p)}
			}
		}()

		resp, err := uc.generator.GenerateContent(ctx, &llmprovider.Request{
			SystemInstruction: system,
			Messages:          []llmprovider.Message{{Role: llmprovider.RoleUser, Text: prompt}},
			Temperature:       generationTemperature,
			MaxTokens:         generationMaxTokens,
		})
		if err != nil {
			done <- result{err: err}
			return
		}
		if resp == nil || strings.TrimSpace(resp.Text) == "" {
			done <- result{err: errEmptyGeneration}
			return
		}
		done <- result{text: strings.TrimSpace(resp.Text)}
	}()

	select {
	case r := <-done:
		if r.err != nil {
			uc.l.Warnf(ctx, "internal.concierge.usecase.synthesize: using fallback: %v", r.err)
			return fallback
		}
		return r.text
	case <-ctx.Done():
		uc.l.Warnf(ctx, "internal.concierge.usecase.synthesize: using fallback: %v", ctx.Err())
		return fallback
	}
}
