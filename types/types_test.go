package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityStateDomain(t *testing.T) {
	assert.Equal(t, "light", EntityState{EntityID: "light.kitchen"}.Domain())
	assert.Equal(t, "sensor", EntityState{EntityID: "sensor.outside_temp"}.Domain())
	assert.Equal(t, "weird", EntityState{EntityID: "weird"}.Domain())
}

func TestEntityStateTimestamps(t *testing.T) {
	state := EntityState{LastChanged: "2023-12-27T15:28:26+00:00"}
	assert.Equal(t, 2023, state.LastChangedTime().Year())
	assert.True(t, EntityState{}.LastUpdatedTime().IsZero())
}

func TestAttributesAccessors(t *testing.T) {
	attrs := Attributes{
		"friendly_name": "Outside Temperature",
		"brightness":    float64(80),
	}

	name, ok := attrs.FriendlyName()
	require.True(t, ok)
	assert.Equal(t, "Outside Temperature", name)

	_, ok = attrs.String("brightness")
	assert.False(t, ok, "non-string values are not strings")

	v, ok := attrs.Value("brightness")
	require.True(t, ok)
	assert.Equal(t, float64(80), v)

	_, ok = attrs.Value("color")
	assert.False(t, ok)

	_, ok = Attributes(nil).FriendlyName()
	assert.False(t, ok)
}

func TestEntityStateDecoding(t *testing.T) {
	raw := `{
		"entity_id": "sensor.outside_temp",
		"state": "21.5",
		"attributes": {"friendly_name": "Outside Temperature", "unit_of_measurement": "°C"},
		"last_changed": "2023-12-27T15:28:26+00:00",
		"last_updated": "2023-12-27T15:28:26+00:00"
	}`

	var state EntityState
	require.NoError(t, json.Unmarshal([]byte(raw), &state))
	assert.Equal(t, "sensor.outside_temp", state.EntityID)
	assert.Equal(t, "21.5", state.State)

	unit, ok := state.Attributes.String("unit_of_measurement")
	require.True(t, ok)
	assert.Equal(t, "°C", unit)
}
