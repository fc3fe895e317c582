package main

import (
	"context"
	"log/slog"
	"os"

	hass "github.com/Xevion/go-hass-voice"
)

func main() {
	client, err := hass.NewClient(hass.Config{
		IPAddress:  "192.168.86.67", // Replace with your Home Assistant host
		PortNumber: 8123,
		Token:      os.Getenv("HA_AUTH_TOKEN"),
	})
	if err != nil {
		slog.Error("Error building HASS client:", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	if !client.Connected(ctx) {
		slog.Error("Home Assistant is not reachable")
		os.Exit(1)
	}

	// Resolve a spoken phrase to a concrete entity.
	entity, err := client.FindEntity(ctx, "outside temperature sensor", []string{"sensor"})
	if err != nil {
		slog.Error("Error resolving entity", "error", err)
		os.Exit(1)
	}
	if entity == nil {
		slog.Info("Nothing matched the description")
		return
	}
	slog.Info("Resolved", "id", entity.ID, "name", entity.DevName, "score", entity.Score)

	// Read a speech-friendly summary of its attributes.
	summary, err := client.FindEntityAttributes(ctx, entity.ID)
	if err != nil {
		slog.Error("Error reading attributes", "error", err)
		os.Exit(1)
	}
	if summary != nil {
		slog.Info("Current reading", "name", summary.Name, "state", summary.State, "unit", summary.UnitMeasure)
	}

	// Invoke a service, e.g. turn on a lamp.
	if _, err := client.CallService(ctx, "light", "turn_on", map[string]any{"entity_id": "light.pantry"}); err != nil {
		slog.Error("Error calling service", "error", err)
	}

	// Or hand the whole utterance to the conversation component.
	reply, err := client.Converse(ctx, "turn off the pantry light")
	if err != nil {
		slog.Error("Error conversing", "error", err)
		return
	}
	slog.Info("Assistant said", "reply", reply)
}
