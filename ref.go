// Copyright 2024 Gustavo C. Viegas. All rights reserved.

// Package input implements the runtime core of a multi-producer,
// multi-consumer input system: ingress of timestamped samples from
// arbitrary producers, double-buffered per-control-type storage visible
// to one or more independent consumers, and fan-out across virtual
// control hierarchies.
package input

// DeviceRef identifies one live device instance. The zero value is
// invalid and is never assigned to a real device.
type DeviceRef uint32

// DeviceTraitRef identifies a device trait (keyboard, mouse, gamepad...)
// whose meaning is scoped entirely by the Database.
type DeviceTraitRef uint32

// ControlTypeRef indexes the dense table of registered control types.
type ControlTypeRef uint32

// ControlUsage is a semantic identifier for a control (e.g. "space key").
// Virtual children of a parent usage U occupy the range U+1 .. U+k.
type ControlUsage uint32

// Virtual returns the usage of the k-th virtual child of u.
func (u ControlUsage) Virtual(k uint32) ControlUsage { return u + ControlUsage(k) }

// ControlRef identifies a concrete control instance: a usage scoped to a
// device. The zero value (invalid usage, invalid device) is invalid and
// is used throughout the package to mean "no control"/"no parent".
type ControlRef struct {
	Usage  ControlUsage
	Device DeviceRef
}

// Valid reports whether r identifies a real control.
func (r ControlRef) Valid() bool { return r.Usage != 0 && r.Device != 0 }

// FramebufferRef names one independent consumer view, in [0, framebuffer
// count).
type FramebufferRef uint32

// RecordingMode governs whether a control's history is kept and whether
// rolling-merge coalescing is applied during ingress.
type RecordingMode int

const (
	// Disabled makes ingress on the control a no-op.
	Disabled RecordingMode = iota
	// LatestOnly updates state and the latest sample; history is not kept.
	LatestOnly
	// AllMerged behaves like LatestOnly but additionally appends coalesced
	// samples to the history arrays.
	AllMerged
	// AllAsIs disables rolling merge entirely; every sample is appended
	// verbatim, including the one that would otherwise adhoc-merge into
	// the prior latest.
	AllAsIs
)

// Timestamp is the packed timestamp carried alongside every sample.
type Timestamp struct {
	Value    uint64
	Timeline uint16
}

// PersistentID is an opaque, byte-compared device identifier.
type PersistentID [512]byte

// DeviceDescr describes a device instance.
type DeviceDescr struct {
	GUID         GUID
	PersistentID PersistentID
	Name         string
}

// ControlDescr describes a control instance.
type ControlDescr struct {
	Name string
}
