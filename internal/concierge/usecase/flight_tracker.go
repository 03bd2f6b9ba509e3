package usecase

import (
	"context"
	"fmt"
	"strings"

	"layover-os/internal/concierge"
	"layover-os/internal/model"
	"layover-os/internal/router"
)

// trackFlight resolves a flight number from the turn, falling back to the
// remembered one. A hit remembers the key and a miss clears it.
func (uc *implUseCase) trackFlight(ctx context.Context, text string, state model.SessionState) (string, model.Patch, error) {
	ctx, span := uc.tracer.Start(ctx, "concierge.trackFlight")
	defer span.End()

	key, ok := router.ExtractStructuredKey(text)
	if !ok {
		key = state.ReferenceMemory
	}
	if key == "" {
		return flightClarify, model.Patch{}, nil
	}

	flight, err := uc.flights.GetByNumber(ctx, key)
	if err != nil {
		recordError(span, err)
		return "", model.Patch{}, fmt.Errorf("%w: %v", concierge.ErrLookupFailed, err)
	}
	if flight == nil {
		uc.l.Infof(ctx, "internal.concierge.usecase.trackFlight: %s not found, clearing memory", key)
		return fmt.Sprintf(flightNotFound, key), model.Patch{ReferenceMemory: model.StringPtr("")}, nil
	}

	status := orDefault(flight.Status, defaultStatus)
	gate := orDefault(flight.Gate, defaultGate)
	dest := orDefault(flight.Destination, defaultDestination)

	fallback := fmt.Sprintf(flightTemplate, key, dest, status, gate)
	reply := uc.synthesize(ctx, flightPersona, fmt.Sprintf(flightPrompt, key, dest, status, gate, strings.TrimSpace(text)), fallback)
	return reply, model.Patch{ReferenceMemory: model.StringPtr(key)}, nil
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
