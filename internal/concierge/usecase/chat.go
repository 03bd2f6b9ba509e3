package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"layover-os/internal/concierge"
	"layover-os/internal/model"
	sessionRepo "layover-os/internal/session/repository"
)

// Chat runs one turn: load, classify, dispatch, merge and persist.
// When the handler fails nothing is written for the turn.
func (uc *implUseCase) Chat(ctx context.Context, in concierge.ChatInput) (concierge.ChatOutput, error) {
	id := strings.TrimSpace(in.SessionID)
	if id == "" {
		return concierge.ChatOutput{}, concierge.ErrEmptySessionID
	}

	ctx, span := uc.tracer.Start(ctx, "concierge.Chat", trace.WithAttributes(attribute.String("session.id", id)))
	defer span.End()

	unlock := uc.locks.Lock(id)
	defer unlock()

	state, expected, err := uc.loadOrInit(ctx, id, in.InitialLocation)
	if err != nil {
		recordError(span, err)
		return concierge.ChatOutput{}, err
	}

	state.Append(model.RoleUser, in.Text)

	decision := uc.router.Classify(in.Text, state.LocationContext)
	decision.Patch.Apply(&state)
	span.SetAttributes(
		attribute.String("concierge.intent", string(decision.Intent)),
		attribute.String("concierge.rule", decision.Rule),
		attribute.String("concierge.location", state.LocationContext),
	)

	handle, ok := uc.handlers[decision.Intent]
	if !ok {
		panic(fmt.Sprintf("concierge/usecase: no handler for intent %q", decision.Intent))
	}

	reply, patch, err := handle(ctx, in.Text, state)
	if err != nil {
		uc.l.Errorf(ctx, "internal.concierge.usecase.Chat: session=%s intent=%s: %v", id, decision.Intent, err)
		recordError(span, err)
		return concierge.ChatOutput{}, err
	}

	patch.Apply(&state)
	state.Append(model.RoleAssistant, reply)

	saved, err := uc.save(ctx, state, expected)
	if err != nil {
		recordError(span, err)
		return concierge.ChatOutput{}, err
	}

	uc.l.Infof(ctx, "internal.concierge.usecase.Chat: session=%s intent=%s rule=%s location=%s version=%d",
		id, decision.Intent, decision.Rule, saved.LocationContext, saved.Version)

	return concierge.ChatOutput{
		Reply:   reply,
		Intent:  decision.Intent,
		Rule:    decision.Rule,
		Session: saved,
	}, nil
}

// loadOrInit returns the stored snapshot with its version, or a fresh one at version 0.
func (uc *implUseCase) loadOrInit(ctx context.Context, id, initialLocation string) (model.SessionState, int64, error) {
	state, found, err := uc.sessions.Load(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "internal.concierge.usecase.loadOrInit: %v", err)
		return model.SessionState{}, 0, err
	}
	if found {
		return state, state.Version, nil
	}

	location := strings.ToUpper(strings.TrimSpace(initialLocation))
	if location == "" {
		return model.SessionState{}, 0, concierge.ErrMissingLocation
	}
	return model.SessionState{SessionID: id, LocationContext: location}, 0, nil
}

func (uc *implUseCase) save(ctx context.Context, state model.SessionState, expected int64) (model.SessionState, error) {
	saved, err := uc.sessions.Save(ctx, state, expected)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrVersionConflict) {
			uc.l.Warnf(ctx, "internal.concierge.usecase.save: session=%s expected version %d is stale", state.SessionID, expected)
			return model.SessionState{}, concierge.ErrSessionConflict
		}
		uc.l.Errorf(ctx, "internal.concierge.usecase.save: %v", err)
		return model.SessionState{}, err
	}
	return saved, nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
