// internal/status/constants.go
package status

// Link status block layout.
// These values define the exported register map and are not configurable.

// ---- BLOCK GEOMETRY ----

// SlotsPerDevice is the fixed number of registers per status block.
const SlotsPerDevice = 20

// ---- SLOT INDICES ----

// SlotHealthCode holds the link health state.
const SlotHealthCode = 0

// SlotLastErrorCode holds the code of the most recent link failure.
const SlotLastErrorCode = 1

// SlotSecondsInError counts whole seconds spent outside HealthOK.
const SlotSecondsInError = 2

// SlotReconnects counts successful reconnects since start.
const SlotReconnects = 3

// Slots 4-10 are reserved and written as zero.
const (
	SlotReservedStart = 4
	SlotReservedEnd   = 10
)

// ---- DEVICE NAME ----

// SlotDeviceNameStart is the first register of the device name.
const SlotDeviceNameStart = 11

// SlotDeviceNameSlots is the number of registers holding the device name.
const SlotDeviceNameSlots = 8

// SlotDeviceNameEnd is the last device name register (inclusive).
const SlotDeviceNameEnd = SlotDeviceNameStart + SlotDeviceNameSlots - 1

// DeviceNameMaxChars is the maximum number of ASCII characters stored.
const DeviceNameMaxChars = 2 * SlotDeviceNameSlots

// ---- HEALTH CODES ----

const (
	HealthUnknown      uint16 = 0 // boot, nothing sent yet
	HealthOK           uint16 = 1
	HealthError        uint16 = 2
	HealthReconnecting uint16 = 3
)
