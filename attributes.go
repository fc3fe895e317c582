package hassvoice

import (
	"context"
	"fmt"

	"github.com/Xevion/go-hass-voice/types"
)

// FindEntityAttributes returns a speech-friendly summary for the entity
// with exactly the given id, or nil when the id is unknown. Lights report
// their brightness in place of a physical unit; everything else reports
// unit_of_measurement. A missing attribute yields an empty unit, not an
// error.
func (c *Client) FindEntityAttributes(ctx context.Context, entityID string) (*types.AttributeSummary, error) {
	states, err := c.GetStates(ctx)
	if err != nil {
		return nil, err
	}

	for _, state := range states {
		if state.EntityID != entityID {
			continue
		}

		// A record without a display name is broken; skip it rather
		// than fail the caller.
		name, ok := state.Attributes.FriendlyName()
		if !ok {
			continue
		}

		var unit string
		if state.Domain() == "light" {
			// Not all lamps report a brightness
			if v, ok := state.Attributes.Value("brightness"); ok {
				unit = fmt.Sprint(v)
			}
		} else if v, ok := state.Attributes.String("unit_of_measurement"); ok {
			unit = v
		}

		return &types.AttributeSummary{
			Name:        name,
			State:       state.State,
			UnitMeasure: unit,
		}, nil
	}

	return nil, nil
}
