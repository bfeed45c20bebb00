// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package input

// DeviceTraitDescr describes a trait's blob requirements as reported by
// the Database.
type DeviceTraitDescr struct {
	SizeInBytes int
}

// ControlUsageDescr describes how a control usage maps onto a registered
// control type, as reported by the Database.
type ControlUsageDescr struct {
	TypeRef              ControlTypeRef
	DefaultRecordingMode RecordingMode
	// ParentOfVirtual is the usage of the control that this usage is a
	// virtual child of, or the zero ControlUsage if this usage is not a
	// virtual child of anything.
	ParentOfVirtual ControlUsage
}

// Database is the table of callbacks the host supplies before Init. The
// core never inspects what lies behind these callbacks; it only calls
// them to learn the structural taxonomy of devices, traits and controls.
// It does not report control-type sizes: control types are registered
// directly against a *Context via RegisterControlType, which already
// knows its sample/state shapes at compile time.
type Database struct {
	// DeviceTraits returns the traits exposed by a device with the given
	// GUID.
	DeviceTraits func(guid GUID) []DeviceTraitRef

	// TraitSize returns the blob size in bytes for a trait.
	TraitSize func(trait DeviceTraitRef) int

	// ConfigureTrait is called once per (trait, device) at device
	// instantiation, after the blob has been zero-initialised, so the
	// database can populate it.
	ConfigureTrait func(trait DeviceTraitRef, blob []byte, device DeviceRef)

	// TraitControlUsages returns the control usages a trait exposes.
	TraitControlUsages func(trait DeviceTraitRef) []ControlUsage

	// ControlUsageDescr resolves a usage to its type/mode/parent.
	ControlUsageDescr func(usage ControlUsage) ControlUsageDescr

	// NameForDevice and NameForControl back diagnostic name lookups; a
	// nil field yields an empty name rather than a panic.
	NameForDevice  func(device DeviceRef) string
	NameForControl func(control ControlRef) string
}

// Hooks supplies the five per-control-type pipeline extension points
// described in the ingress pipeline design. Convert and the fan-out
// hooks may be nil when a type never receives foreign samples or never
// fans out; ForwardMerge and UpdateControlState may be nil when a type
// has no merge/state behavior (FrameBegin likewise).
type Hooks[Sa, St any] struct {
	// Convert interprets foreignSamples[i], whose concrete element type
	// is determined by foreignType and fromControl, as a sample of this
	// type.
	Convert func(controlRef ControlRef, foreignType ControlTypeRef, foreignSamples any, i int, fromControl ControlRef) Sa

	// ForwardMerge folds next into cur in place and returns true if it
	// did so, discarding next. Must be order-insensitive: callers may
	// invoke it over arbitrary adjacent pairs of a batch.
	ForwardMerge func(curTs *Timestamp, curSample *Sa, nextTs Timestamp, nextSample Sa) bool

	// UpdateControlState updates per-transition state fields (e.g. edge
	// flags) for the move from (prevTs, prevSample) to (nextTs, nextSample).
	UpdateControlState func(state *St, prevTs Timestamp, prevSample Sa, nextTs Timestamp, nextSample Sa)

	// PreMerge fans out to virtual children using the raw, unmerged
	// samples; invoked before rolling merge.
	PreMerge func(ctx *Context, controlRef ControlRef, ts []Timestamp, samples []Sa)

	// PostMerge fans out to virtual children using the coalesced
	// samples; invoked after rolling merge.
	PostMerge func(ctx *Context, controlRef ControlRef, ts []Timestamp, samples []Sa)

	// FrameBegin re-initialises the next frame's back buffers for every
	// live slot of this type, at swap time.
	FrameBegin func(now Timestamp, states []St, latestTimestamps []Timestamp, latestSamples []Sa)
}

// typeEntry is the narrow, non-generic interface a *Context keeps one
// slice of (indexed by ControlTypeRef-1), erasing the concrete sample
// and state types of each registered control type. This is the Go
// analogue of dispatching on a type index into a function table.
type typeEntry interface {
	allocSlot(controlRef ControlRef) int
	controlCount() int
	setFramebufferCount(n int)
	moveToFront(fb FramebufferRef)
	frameBegin(ctx *Context, fb FramebufferRef)
	dispatch(ctx *Context, controlRef ControlRef, foreignType ControlTypeRef, ts []Timestamp, foreignSamples any, fromControl ControlRef)
}

// controlType binds a typeStorage to its Hooks and ControlTypeRef,
// implementing typeEntry.
type controlType[Sa, St any] struct {
	*typeStorage[Sa, St]
	self  ControlTypeRef
	hooks Hooks[Sa, St]
}

func (c *controlType[Sa, St]) allocSlot(controlRef ControlRef) int {
	return c.allocate(controlRef)
}

func (c *controlType[Sa, St]) frameBegin(ctx *Context, fb FramebufferRef) {
	if c.hooks.FrameBegin == nil {
		return
	}
	n := c.controlCount()
	now := ctx.pal.CurrentTime()
	c.hooks.FrameBegin(now, c.state.back[fb][:n], c.latestTimestamp.back[fb][:n], c.latestSample.back[fb][:n])
}

func (c *controlType[Sa, St]) dispatch(ctx *Context, controlRef ControlRef, foreignType ControlTypeRef, ts []Timestamp, foreignSamples any, fromControl ControlRef) {
	ingress(ctx, c.self, controlRef, foreignType, ts, nil, foreignSamples, fromControl, c)
}

// RegisterControlType registers a new control type with its storage
// shape and hooks, returning the dense ControlTypeRef assigned to it. The
// returned ref is what the Database's ControlUsageDescr callback should
// report for usages of this type, so registration ordinarily happens
// before Init: the Database must already be built (and thus every type
// it references already registered) before SetDatabaseCallbacks/Init can
// run. When that is the case, ctx.fbCount is still 0 and the type's
// storage starts with zero framebuffer rows; Init dimensions it once the
// framebuffer count is known (see typeStorage.setFramebufferCount). A
// type registered after Init gets its storage sized correctly here,
// directly from ctx.fbCount.
func RegisterControlType[Sa, St any](ctx *Context, hooks Hooks[Sa, St]) ControlTypeRef {
	ct := &controlType[Sa, St]{
		typeStorage: newTypeStorage[Sa, St](ctx.fbCount),
		hooks:       hooks,
	}
	ctx.types = append(ctx.types, ct)
	ct.self = ControlTypeRef(len(ctx.types))
	return ct.self
}

// typeOf returns the typeEntry for ref, or nil if out of range.
func (ctx *Context) typeOf(ref ControlTypeRef) typeEntry {
	if ref == 0 || int(ref) > len(ctx.types) {
		return nil
	}
	return ctx.types[ref-1]
}
