// internal/writer/builder.go
package writer

import (
	cfg "github.com/tamzrod/hwmon-serial/internal/config"
	wmodbus "github.com/tamzrod/hwmon-serial/internal/writer/modbus"
)

// Build wires the optional link status export.
// A nil config disables it: the returned writer is nil and close is a no-op.
func Build(sm *cfg.StatusMemoryConfig) (StatusWriter, func() error, error) {
	noop := func() error { return nil }
	if sm == nil {
		return nil, noop, nil
	}

	cli, err := wmodbus.NewEndpointClient(wmodbus.Config{
		Endpoint: sm.Endpoint,
		Timeout:  sm.Timeout(),
	})
	if err != nil {
		return nil, noop, err
	}

	sw, err := NewLinkStatusWriter(StatusPlan{
		Endpoint:   sm.Endpoint,
		UnitID:     sm.UnitID,
		BaseSlot:   sm.Slot,
		DeviceName: sm.DeviceName,
	}, cli)
	if err != nil {
		_ = cli.Close()
		return nil, noop, err
	}
	return sw, cli.Close, nil
}
