package hassvoice

import (
	"context"
	"strings"

	"github.com/Workiva/go-datastructures/set"
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/Xevion/go-hass-voice/types"
)

// minimumScore is the exclusive floor a fuzzy match must beat before an
// entity is accepted as resolved.
const minimumScore = 50

// FindEntity resolves a spoken description to the best matching entity
// whose domain is in domains. Both the friendly name and the raw entity id
// are scored with a token-order-insensitive ratio, so "outside temperature"
// and "temperature outside" resolve identically. Returns nil when nothing
// scores above 50.
//
// Ties keep the earlier entity: the running best is only replaced by a
// strictly greater score, so resolution is deterministic for a given
// catalog snapshot.
func (c *Client) FindEntity(ctx context.Context, utterance string, domains []string) (*types.ResolvedEntity, error) {
	states, err := c.GetStates(ctx)
	if err != nil {
		return nil, err
	}

	allowed := set.New()
	for _, domain := range domains {
		allowed.Add(domain)
	}

	spoken := strings.ToLower(utterance)
	bestScore := minimumScore
	var best *types.ResolvedEntity

	for _, state := range states {
		if !allowed.Exists(state.Domain()) {
			continue
		}

		// An entity without a display name can't be spoken back to the
		// user; skip the record and keep scanning.
		name, ok := state.Attributes.FriendlyName()
		if !ok {
			continue
		}

		if score := fuzzy.TokenSortRatio(spoken, strings.ToLower(name)); score > bestScore {
			bestScore = score
			best = resolvedEntity(state, name, score)
		}

		// The raw id gets an independent shot; ids often carry words the
		// friendly name dropped, and may outscore a name match from a
		// different entity.
		if score := fuzzy.TokenSortRatio(spoken, strings.ToLower(state.EntityID)); score > bestScore {
			bestScore = score
			best = resolvedEntity(state, name, score)
		}
	}

	return best, nil
}

func resolvedEntity(state types.EntityState, name string, score int) *types.ResolvedEntity {
	return &types.ResolvedEntity{
		ID:         state.EntityID,
		DevName:    name,
		State:      state.State,
		Score:      score,
		Attributes: state.Attributes,
	}
}
