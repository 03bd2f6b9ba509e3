package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"layover-os/internal/concierge"
	"layover-os/internal/model"
	"layover-os/internal/router"
	sessionRepo "layover-os/internal/session/repository"
	"layover-os/pkg/llmprovider"
)

var terminalTwoCoffee = []model.Amenity{
	{ID: "a1", Name: "Blue Bottle", Description: "Pour-over coffee", Scope: "SFO", SubScope: "2", IsOpen: true, WaitMinutes: 5, Score: 0.91},
}

func TestChat_ContextSettingSkipsRetrieval(t *testing.T) {
	f := newFixture(nil, Config{})

	out, err := f.chat("s1", "I am at SFO")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Intent != router.IntentRetrieval {
		t.Errorf("expected retrieval, got %s", out.Intent)
	}
	if out.Reply != fmt.Sprintf(scoutContextPrompt, "SFO") {
		t.Errorf("unexpected reply: %q", out.Reply)
	}
	if f.embedder.calls != 0 || len(f.amenities.searches) != 0 {
		t.Errorf("expected no embed/search calls, got %d/%d", f.embedder.calls, len(f.amenities.searches))
	}
	if len(out.Session.Turns) != 2 || out.Session.Version != 1 {
		t.Errorf("expected 2 turns at version 1, got %d at %d", len(out.Session.Turns), out.Session.Version)
	}
}

func TestChat_SubScopeFilter(t *testing.T) {
	f := newFixture(nil, Config{})
	f.amenities.results = terminalTwoCoffee

	out, err := f.chat("s1", "Find coffee in Terminal 2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(f.amenities.searches) != 1 {
		t.Fatalf("expected one search, got %d", len(f.amenities.searches))
	}
	opt := f.amenities.searches[0]
	if opt.Scope != "SFO" || opt.SubScope != "2" {
		t.Errorf("expected filter {SFO, 2}, got {%s, %s}", opt.Scope, opt.SubScope)
	}
	if opt.Limit != DefaultSearchLimit || opt.NumCandidates != DefaultNumCandidates {
		t.Errorf("expected limit %d candidates %d, got %d %d", DefaultSearchLimit, DefaultNumCandidates, opt.Limit, opt.NumCandidates)
	}
	if !strings.Contains(out.Reply, "Terminal 2") {
		t.Errorf("reply should reference Terminal 2: %q", out.Reply)
	}
	if !strings.HasPrefix(out.Reply, "Scout: Here are the top options at SFO:") {
		t.Errorf("expected deterministic listing, got %q", out.Reply)
	}
	if !strings.Contains(out.Reply, "Status: OPEN | Wait: 5m") {
		t.Errorf("expected status line, got %q", out.Reply)
	}
}

func TestChat_FlightMemory(t *testing.T) {
	f := newFixture(nil, Config{})

	out, err := f.chat("s1", "Track flight UA400")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Intent != router.IntentLookup {
		t.Errorf("expected lookup, got %s", out.Intent)
	}
	if !strings.Contains(out.Reply, "Denver") {
		t.Errorf("reply should mention Denver: %q", out.Reply)
	}
	if out.Session.ReferenceMemory != "UA400" {
		t.Errorf("expected memory UA400, got %q", out.Session.ReferenceMemory)
	}

	out, err = f.chat("s1", "What's its status?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.flights.lookups) != 2 || f.flights.lookups[1] != "UA400" {
		t.Errorf("expected second lookup to reuse UA400, got %v", f.flights.lookups)
	}
	if out.Reply != "FlightTracker: Flight UA400 to Denver\nStatus: On Time\nGate: F12" {
		t.Errorf("unexpected reply: %q", out.Reply)
	}
}

func TestChat_ExplicitKeyOverridesMemory(t *testing.T) {
	f := newFixture(nil, Config{})

	if _, err := f.chat("s1", "Track flight UA400"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := f.chat("s1", "What about dl118?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := f.flights.lookups[len(f.flights.lookups)-1]; got != "DL118" {
		t.Errorf("expected lookup of DL118, got %s", got)
	}
	if out.Session.ReferenceMemory != "" {
		t.Errorf("unresolved key must clear memory, got %q", out.Session.ReferenceMemory)
	}
}

func TestChat_FailedLookupClearsMemory(t *testing.T) {
	f := newFixture(nil, Config{})

	if _, err := f.chat("s1", "Track flight UA400"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "FlightTracker: I couldn't find flight ZZ000 in our database."
	for i := 0; i < 2; i++ {
		out, err := f.chat("s1", "Track flight ZZ000")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Reply != want {
			t.Errorf("attempt %d: unexpected reply %q", i, out.Reply)
		}
		if out.Session.ReferenceMemory != "" {
			t.Errorf("attempt %d: expected memory cleared, got %q", i, out.Session.ReferenceMemory)
		}
	}

	out, err := f.chat("s1", "What's its status?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Reply != flightClarify {
		t.Errorf("expected clarification after cleared memory, got %q", out.Reply)
	}
}

func TestChat_GateQuestionGoesToScout(t *testing.T) {
	f := newFixture(nil, Config{})

	for _, text := range []string{"Any coffee near gate 54?", "Is the lounge near the departure hall open?"} {
		out, err := f.chat("s1", text)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", text, err)
		}
		if out.Intent != router.IntentRetrieval {
			t.Errorf("%q: intent = %q, want %q", text, out.Intent, router.IntentRetrieval)
		}
		if strings.HasPrefix(out.Reply, "FlightTracker:") {
			t.Errorf("%q: routed to flight tracker: %q", text, out.Reply)
		}
	}
	if len(f.flights.lookups) != 0 {
		t.Errorf("unexpected flight lookups %v", f.flights.lookups)
	}
}

func TestChat_FlightDefaults(t *testing.T) {
	f := newFixture(nil, Config{})
	f.flights.flights["AA100"] = model.Flight{Number: "AA100"}

	out, err := f.chat("s1", "aa100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Reply != "FlightTracker: Flight AA100 to Unknown\nStatus: Unknown\nGate: TBD" {
		t.Errorf("unexpected reply: %q", out.Reply)
	}
}

func TestChat_Transaction(t *testing.T) {
	f := newFixture(nil, Config{})

	out, err := f.chat("s1", "Book a pass for the lounge")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Intent != router.IntentTransaction {
		t.Errorf("expected transaction, got %s", out.Intent)
	}
	if !strings.Contains(out.Reply, ActionRequiredToken) {
		t.Errorf("reply should contain %s: %q", ActionRequiredToken, out.Reply)
	}
	if f.embedder.calls != 0 || len(f.flights.lookups) != 0 {
		t.Error("transaction must not call external services")
	}
}

func TestChat_ScopeSwitchIdempotent(t *testing.T) {
	f := newFixture(nil, Config{})

	for i := 0; i < 2; i++ {
		out, err := f.chat("s1", "I am at JFK")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Session.LocationContext != "JFK" {
			t.Errorf("turn %d: expected JFK, got %s", i, out.Session.LocationContext)
		}
		if out.Reply != fmt.Sprintf(scoutContextPrompt, "JFK") {
			t.Errorf("turn %d: unexpected reply %q", i, out.Reply)
		}
	}
}

func TestChat_ScopeAppliesToSameTurn(t *testing.T) {
	f := newFixture(nil, Config{})

	out, err := f.chat("s1", "coffee at DEN terminal B please")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Session.LocationContext != "DEN" {
		t.Errorf("expected DEN, got %s", out.Session.LocationContext)
	}
	if len(f.amenities.searches) != 1 {
		t.Fatalf("expected one search, got %d", len(f.amenities.searches))
	}
	if got := f.amenities.searches[0]; got.Scope != "DEN" || got.SubScope != "B" {
		t.Errorf("expected search scoped to {DEN, B}, got {%s, %s}", got.Scope, got.SubScope)
	}
}

func TestChat_EmptyText(t *testing.T) {
	f := newFixture(nil, Config{})

	out, err := f.chat("s1", "   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Reply != scoutEmptyPrompt {
		t.Errorf("unexpected reply: %q", out.Reply)
	}
	if f.embedder.calls != 0 {
		t.Error("empty text must not be embedded")
	}
}

func TestChat_NoMatches(t *testing.T) {
	f := newFixture(nil, Config{})

	out, err := f.chat("s1", "Find sushi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Reply != "Scout: I couldn't find anything matching 'Find sushi' at SFO." {
		t.Errorf("unexpected reply: %q", out.Reply)
	}
}

func TestChat_TopN(t *testing.T) {
	f := newFixture(nil, Config{})
	f.amenities.results = []model.Amenity{
		{Name: "Low", Score: 0.1, IsOpen: true},
		{Name: "Best", Score: 0.9, IsOpen: true},
		{Name: "Mid", Score: 0.5, IsOpen: false, WaitMinutes: 0},
		{Name: "Lower", Score: 0.05, IsOpen: true},
		{Name: "Good", Score: 0.7, IsOpen: true},
	}

	out, err := f.chat("s1", "something to eat")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	best, good, mid := strings.Index(out.Reply, "**Best**"), strings.Index(out.Reply, "**Good**"), strings.Index(out.Reply, "**Mid**")
	if best < 0 || good < 0 || mid < 0 || !(best < good && good < mid) {
		t.Errorf("expected Best, Good, Mid in order: %q", out.Reply)
	}
	if strings.Contains(out.Reply, "**Low**") {
		t.Errorf("expected only top 3: %q", out.Reply)
	}
	if !strings.Contains(out.Reply, "(General Area)") || !strings.Contains(out.Reply, "Status: CLOSED") {
		t.Errorf("expected default label and closed status: %q", out.Reply)
	}
}

func TestChat_DeterministicFallback(t *testing.T) {
	f := newFixture(nil, Config{})
	f.amenities.results = terminalTwoCoffee

	a, err := f.chat("s1", "Find coffee in Terminal 2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := f.chat("s2", "Find coffee in Terminal 2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Reply != b.Reply {
		t.Errorf("expected identical replies:\n%q\n%q", a.Reply, b.Reply)
	}
}

func TestChat_RetrievalFailureNotPersisted(t *testing.T) {
	f := newFixture(nil, Config{})

	if _, err := f.chat("s1", "Book a pass for the lounge"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f.amenities.err = errors.New("index unavailable")
	_, err := f.chat("s1", "Find coffee")
	if !errors.Is(err, concierge.ErrRetrievalFailed) {
		t.Fatalf("expected ErrRetrievalFailed, got %v", err)
	}

	state, err := f.uc.GetSession(context.Background(), "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(state.Turns) != 2 || state.Version != 1 {
		t.Errorf("failed turn must not persist: %d turns at version %d", len(state.Turns), state.Version)
	}
}

func TestChat_EmbedFailure(t *testing.T) {
	f := newFixture(nil, Config{})
	f.embedder.err = errors.New("rate limited")

	_, err := f.chat("s1", "Find coffee")
	if !errors.Is(err, concierge.ErrRetrievalFailed) {
		t.Fatalf("expected ErrRetrievalFailed, got %v", err)
	}
	if _, err := f.uc.GetSession(context.Background(), "s1"); !errors.Is(err, concierge.ErrSessionNotFound) {
		t.Errorf("new session must not be created on failure, got %v", err)
	}
}

func TestChat_LookupFailure(t *testing.T) {
	f := newFixture(nil, Config{})
	f.flights.err = errors.New("connection refused")

	_, err := f.chat("s1", "Track flight UA400")
	if !errors.Is(err, concierge.ErrLookupFailed) {
		t.Fatalf("expected ErrLookupFailed, got %v", err)
	}
}

func TestChat_Errors(t *testing.T) {
	t.Run("empty session id", func(t *testing.T) {
		f := newFixture(nil, Config{})
		if _, err := f.chat(" ", "hi"); !errors.Is(err, concierge.ErrEmptySessionID) {
			t.Errorf("expected ErrEmptySessionID, got %v", err)
		}
	})

	t.Run("missing location", func(t *testing.T) {
		f := newFixture(nil, Config{})
		_, err := f.uc.Chat(context.Background(), concierge.ChatInput{SessionID: "s1", Text: "hi"})
		if !errors.Is(err, concierge.ErrMissingLocation) {
			t.Errorf("expected ErrMissingLocation, got %v", err)
		}
	})

	t.Run("version conflict", func(t *testing.T) {
		f := newFixture(nil, Config{})
		f.sessions.saveFunc = func(ctx context.Context, state model.SessionState, expected int64) (model.SessionState, error) {
			return model.SessionState{}, sessionRepo.ErrVersionConflict
		}
		if _, err := f.chat("s1", "Book a pass"); !errors.Is(err, concierge.ErrSessionConflict) {
			t.Errorf("expected ErrSessionConflict, got %v", err)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		f := newFixture(nil, Config{})
		storeErr := fmt.Errorf("%w: timeout", sessionRepo.ErrFailedToLoad)
		f.sessions.loadFunc = func(ctx context.Context, id string) (model.SessionState, bool, error) {
			return model.SessionState{}, false, storeErr
		}
		_, err := f.chat("s1", "Book a pass")
		if !errors.Is(err, sessionRepo.ErrFailedToLoad) || errors.Is(err, concierge.ErrSessionConflict) {
			t.Errorf("expected load failure, got %v", err)
		}
	})
}

func TestChat_Generation(t *testing.T) {
	listing := "Scout: Here are the top options at SFO:\n\n- **Blue Bottle** (Terminal 2)\n  Status: OPEN | Wait: 5m\n  Pour-over coffee"

	tests := []struct {
		name    string
		cfg     Config
		gen     func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
		want    string
		maxTime time.Duration
	}{
		{
			name: "uses generated text",
			gen: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
				if !strings.Contains(req.SystemInstruction, "SFO") || !strings.Contains(req.Messages[0].Text, "Blue Bottle") {
					return nil, errors.New("missing context")
				}
				return &llmprovider.Response{Text: "  Blue Bottle in Terminal 2 is open.  "}, nil
			},
			want: "Blue Bottle in Terminal 2 is open.",
		},
		{
			name: "falls back on error",
			gen: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
				return nil, errors.New("all providers failed")
			},
			want: listing,
		},
		{
			name: "falls back on empty text",
			gen: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
				return &llmprovider.Response{Text: "   "}, nil
			},
			want: listing,
		},
		{
			name: "falls back on generator panic",
			gen: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
				panic("provider bug")
			},
			want: listing,
		},
		{
			name: "falls back on timeout",
			cfg:  Config{GenerationTimeout: 20 * time.Millisecond},
			gen: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
				time.Sleep(500 * time.Millisecond)
				return &llmprovider.Response{Text: "too late"}, nil
			},
			want:    listing,
			maxTime: 300 * time.Millisecond,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(&mockGenerator{generateFunc: tt.gen}, tt.cfg)
			f.amenities.results = terminalTwoCoffee

			start := time.Now()
			out, err := f.chat("s1", "Find coffee in Terminal 2")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Reply != tt.want {
				t.Errorf("got %q, want %q", out.Reply, tt.want)
			}
			if tt.maxTime > 0 && time.Since(start) > tt.maxTime {
				t.Errorf("generation timeout not enforced: took %v", time.Since(start))
			}
		})
	}
}

func TestChat_FlightGenerationPrompt(t *testing.T) {
	var got *llmprovider.Request
	gen := &mockGenerator{generateFunc: func(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
		got = req
		return &llmprovider.Response{Text: "UA400 to Denver is on time at gate F12."}, nil
	}}
	f := newFixture(gen, Config{})

	out, err := f.chat("s1", "Track flight UA400")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Reply != "UA400 to Denver is on time at gate F12." {
		t.Errorf("unexpected reply: %q", out.Reply)
	}
	if got == nil || got.SystemInstruction != flightPersona || !strings.Contains(got.Messages[0].Text, "Gate: F12") {
		t.Errorf("unexpected request: %+v", got)
	}
	if out.Session.ReferenceMemory != "UA400" {
		t.Errorf("expected memory UA400, got %q", out.Session.ReferenceMemory)
	}
}

func TestChat_SameSessionSerialized(t *testing.T) {
	f := newFixture(nil, Config{})

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := f.chat("shared", "Book a pass"); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("unexpected error: %v", err)
	}

	state, err := f.uc.GetSession(context.Background(), "shared")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(state.Turns) != 2*n || state.Version != n {
		t.Errorf("expected %d turns at version %d, got %d at %d", 2*n, n, len(state.Turns), state.Version)
	}
	if size := f.uc.(*implUseCase).locks.size(); size != 0 {
		t.Errorf("expected lock table drained, got %d", size)
	}
}

func TestHandlersCoverAllIntents(t *testing.T) {
	f := newFixture(nil, Config{})
	uc := f.uc.(*implUseCase)
	for _, intent := range router.Intents {
		if _, ok := uc.handlers[intent]; !ok {
			t.Errorf("no handler for %s", intent)
		}
	}
}

func TestChat_UnmappedIntentPanics(t *testing.T) {
	f := newFixture(nil, Config{})
	delete(f.uc.(*implUseCase).handlers, router.IntentTransaction)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for unmapped intent")
		}
	}()
	_, _ = f.chat("s1", "Book a pass")
}

func TestGetSessionAndSwitchLocation(t *testing.T) {
	f := newFixture(nil, Config{})
	ctx := context.Background()

	if _, err := f.uc.GetSession(ctx, "nope"); !errors.Is(err, concierge.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}

	_, err := f.uc.SwitchLocation(ctx, concierge.SwitchLocationInput{SessionID: "s1", Code: "LHR"})
	if !errors.Is(err, concierge.ErrUnknownScope) {
		t.Errorf("expected ErrUnknownScope, got %v", err)
	}

	state, err := f.uc.SwitchLocation(ctx, concierge.SwitchLocationInput{SessionID: "s1", Code: "jfk"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.LocationContext != "JFK" || len(state.Turns) != 0 || state.Version != 1 {
		t.Errorf("unexpected state: %+v", state)
	}

	if _, err := f.chat("s1", "Find coffee"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := f.amenities.searches[0]; got.Scope != "JFK" || got.SubScope != "" || len(got.Vector) != 3 {
		t.Errorf("unexpected search options: %+v", got)
	}

	state, err = f.uc.SwitchLocation(ctx, concierge.SwitchLocationInput{SessionID: "s1", Code: "DEN"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.LocationContext != "DEN" || len(state.Turns) != 2 || state.Version != 3 {
		t.Errorf("unexpected state after second switch: %+v", state)
	}
}
