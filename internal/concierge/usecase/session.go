package usecase

import (
	"context"
	"strings"

	"layover-os/internal/concierge"
	"layover-os/internal/model"
)

func (uc *implUseCase) GetSession(ctx context.Context, sessionID string) (model.SessionState, error) {
	id := strings.TrimSpace(sessionID)
	if id == "" {
		return model.SessionState{}, concierge.ErrEmptySessionID
	}

	state, found, err := uc.sessions.Load(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "internal.concierge.usecase.GetSession: %v", err)
		return model.SessionState{}, err
	}
	if !found {
		return model.SessionState{}, concierge.ErrSessionNotFound
	}
	return state, nil
}

// SwitchLocation sets LocationContext explicitly. A missing session is created
// at the requested location with an empty history.
func (uc *implUseCase) SwitchLocation(ctx context.Context, in concierge.SwitchLocationInput) (model.SessionState, error) {
	id := strings.TrimSpace(in.SessionID)
	if id == "" {
		return model.SessionState{}, concierge.ErrEmptySessionID
	}
	code := strings.ToUpper(strings.TrimSpace(in.Code))
	if !uc.router.IsScopeCode(code) {
		return model.SessionState{}, concierge.ErrUnknownScope
	}

	ctx, span := uc.tracer.Start(ctx, "concierge.SwitchLocation")
	defer span.End()

	unlock := uc.locks.Lock(id)
	defer unlock()

	state, expected, err := uc.loadOrInit(ctx, id, code)
	if err != nil {
		recordError(span, err)
		return model.SessionState{}, err
	}
	model.Patch{LocationContext: model.StringPtr(code)}.Apply(&state)

	saved, err := uc.save(ctx, state, expected)
	if err != nil {
		recordError(span, err)
		return model.SessionState{}, err
	}

	uc.l.Infof(ctx, "internal.concierge.usecase.SwitchLocation: session=%s location=%s", id, code)
	return saved, nil
}
