package usecase

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"

	amenityRepo "layover-os/internal/amenity/repository"
	"layover-os/internal/concierge"
	"layover-os/internal/model"
)

var subScopePattern = regexp.MustCompile(`(?i)\b(?:terminal|concourse|pier|hall)\s+([A-Za-z]?\d+[A-Za-z]?|[A-Za-z])\b`)

// scout answers free-form amenity requests within the current location.
func (uc *implUseCase) scout(ctx context.Context, text string, state model.SessionState) (string, model.Patch, error) {
	ctx, span := uc.tracer.Start(ctx, "concierge.scout")
	defer span.End()

	query := strings.TrimSpace(text)
	scope := state.LocationContext

	if query == "" {
		return scoutEmptyPrompt, model.Patch{}, nil
	}
	if isContextSetting(query, scope) {
		return fmt.Sprintf(scoutContextPrompt, scope), model.Patch{}, nil
	}

	vectors, err := uc.embedder.Embed(ctx, []string{query})
	if err != nil {
		recordError(span, err)
		return "", model.Patch{}, fmt.Errorf("%w: embed: %v", concierge.ErrRetrievalFailed, err)
	}
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return "", model.Patch{}, fmt.Errorf("%w: empty embedding", concierge.ErrRetrievalFailed)
	}

	subScope := extractSubScope(query)
	items, err := uc.amenities.Search(ctx, amenityRepo.SearchOptions{
		Vector:        vectors[0],
		Scope:         scope,
		SubScope:      subScope,
		Limit:         uc.cfg.SearchLimit,
		NumCandidates: uc.cfg.NumCandidates,
	})
	if err != nil {
		recordError(span, err)
		return "", model.Patch{}, fmt.Errorf("%w: %v", concierge.ErrRetrievalFailed, err)
	}

	items = topN(items, uc.cfg.TopN)
	uc.l.Debugf(ctx, "internal.concierge.usecase.scout: scope=%s sub_scope=%q results=%d", scope, subScope, len(items))

	if len(items) == 0 {
		return fmt.Sprintf(scoutNotFound, query, scope), model.Patch{}, nil
	}

	listing := formatAmenities(items)
	fallback := fmt.Sprintf(scoutListingHeader, scope) + listing
	reply := uc.synthesize(ctx, fmt.Sprintf(scoutPersona, scope), fmt.Sprintf(scoutUserPrompt, query, listing), fallback)
	return reply, model.Patch{}, nil
}

// isContextSetting reports short "I am at X" turns that carry no search intent.
func isContextSetting(text, scope string) bool {
	if scope == "" {
		return false
	}
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
	if len(words) >= contextSettingMaxTokens {
		return false
	}

	var hasPreposition, hasScope bool
	lowerScope := strings.ToLower(scope)
	for _, w := range words {
		if w == lowerScope {
			hasScope = true
		}
		for _, p := range locativePrepositions {
			if w == p {
				hasPreposition = true
			}
		}
	}
	return hasPreposition && hasScope
}

// extractSubScope returns the upper-cased identifier after a designator word, e.g. "Terminal 2" gives "2".
func extractSubScope(text string) string {
	m := subScopePattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return strings.ToUpper(m[1])
}

func topN(items []model.Amenity, n int) []model.Amenity {
	sorted := make([]model.Amenity, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Score > sorted[j].Score })
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func formatAmenities(items []model.Amenity) string {
	lines := make([]string, 0, len(items))
	for _, a := range items {
		status := "OPEN"
		wait := a.WaitMinutes
		if !a.IsOpen {
			status = "CLOSED"
		}
		desc := strings.TrimSpace(a.Description)
		if desc == "" {
			desc = noDescription
		}
		lines = append(lines, fmt.Sprintf("- **%s** (%s)\n  Status: %s | Wait: %dm\n  %s", a.Name, locationLabel(a), status, wait, desc))
	}
	return strings.Join(lines, "\n")
}

func locationLabel(a model.Amenity) string {
	if label := strings.TrimSpace(a.Location); label != "" {
		return label
	}
	if a.SubScope != "" {
		return "Terminal " + a.SubScope
	}
	return generalArea
}
