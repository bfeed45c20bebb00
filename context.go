// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package input

import (
	"github.com/gviegas/input/internal/bitm"
	"github.com/gviegas/input/internal/bitvec"
	"github.com/gviegas/input/internal/spinlock"
	"github.com/pkg/errors"
)

// visBits is the Uint granularity used for visibility bit vectors.
type visBits = uint64

// framebufferVisibility holds one consumer's visible-device/visible-control
// sets and the dirty flag that triggers their recomputation at swap.
//
// devices indexes by DeviceRef-1, which is dense (see
// Context.allocDeviceRef), so membership is a bit vector.
// controls has no natural dense global index spanning every registered
// control type, so it stays a set keyed by the compound ControlRef.
type framebufferVisibility struct {
	dirty    bool
	devices  bitvec.V[visBits]
	controls map[ControlRef]struct{}
}

func newFramebufferVisibility() framebufferVisibility {
	return framebufferVisibility{
		dirty:    true,
		controls: make(map[ControlRef]struct{}),
	}
}

// device is a live or pending-deletion device instance.
type device struct {
	ref             DeviceRef
	descr           DeviceDescr
	pendingDeletion bool
	traits          map[DeviceTraitRef][]byte
}

// control is a live or pending-deletion control instance.
type control struct {
	ref             ControlRef
	typeRef         ControlTypeRef
	parent          ControlRef
	descr           ControlDescr
	recordingMode   RecordingMode
	slot            int
	pendingDeletion bool
}

// Context is the process-wide registry: devices, controls, per-type
// storage and framebuffer visibility, guarded by a single spinlock. There
// is ordinarily exactly one Context in a process, constructed with New
// and driven through Init/Deinit.
type Context struct {
	mu spinlock.Spinlock

	fbCount int
	db      *Database
	pal     PALCallbacks

	types []typeEntry

	devices     map[DeviceRef]*device
	deviceSlots bitm.Bitm[uint32]

	controls map[ControlRef]*control

	visibility []framebufferVisibility
}

// New allocates a Context in its uninitialized state. Call Init before
// using it.
func New() *Context {
	return &Context{pal: defaultPAL()}
}

// lock acquires the context spinlock unless fromControl is valid, in
// which case the caller is a nested ingress fan-out call that relies on
// the outer acquisition (the sole reentrancy exemption; see SPEC_FULL.md
// §5). It returns the matching unlock function.
func (ctx *Context) lock(fromControl ControlRef) func() {
	if fromControl.Valid() {
		return func() {}
	}
	ctx.mu.Lock()
	return ctx.mu.Unlock
}

// SetDatabaseCallbacks sets the Database the core will consult. It must
// be called before Init.
func (ctx *Context) SetDatabaseCallbacks(db *Database) {
	ctx.db = db
}

// Init allocates the context's registries for the given number of
// independent consumer framebuffers. Re-initializing an already
// initialized context is rejected. The Database callbacks must already
// be set.
func (ctx *Context) Init(framebufferCount int) error {
	if ctx.fbCount != 0 {
		return ErrAlreadyInit
	}
	if framebufferCount < 1 {
		return ErrInvalidFramebuffers
	}
	if ctx.db == nil {
		return errors.WithStack(ErrNoDatabase)
	}
	ctx.fbCount = framebufferCount
	ctx.devices = make(map[DeviceRef]*device)
	ctx.controls = make(map[ControlRef]*control)
	ctx.visibility = make([]framebufferVisibility, framebufferCount)
	for i := range ctx.visibility {
		ctx.visibility[i] = newFramebufferVisibility()
	}
	// Control types are ordinarily registered before Init (see
	// RegisterControlType), so their storage starts with zero
	// framebuffer rows; dimension it now that the count is known.
	for _, t := range ctx.types {
		t.setFramebufferCount(framebufferCount)
	}
	return nil
}

// Deinit tears down all registry state. Init may be called again
// afterward.
func (ctx *Context) Deinit() error {
	if ctx.fbCount == 0 {
		return ErrNotInit
	}
	ctx.fbCount = 0
	ctx.types = nil
	ctx.devices = nil
	ctx.controls = nil
	ctx.visibility = nil
	ctx.deviceSlots = bitm.Bitm[uint32]{}
	return nil
}

// allocDeviceRef searches the device slot bitmap for a free bit, growing
// it by one Uint's worth of bits on a miss, and returns the 1-indexed
// DeviceRef for the bit it set.
func (ctx *Context) allocDeviceRef() DeviceRef {
	index, ok := ctx.deviceSlots.Search()
	if !ok {
		index = ctx.deviceSlots.Grow(1)
	}
	ctx.deviceSlots.Set(index)
	return DeviceRef(index + 1)
}

// FramebufferCount returns the number of independent consumer
// framebuffers this context was initialized with.
func (ctx *Context) FramebufferCount() int { return ctx.fbCount }

// markFramebuffersDirty raises the visibility-dirty flag on every
// framebuffer.
func (ctx *Context) markFramebuffersDirty() {
	for i := range ctx.visibility {
		ctx.visibility[i].dirty = true
	}
}

// growDeviceVisibility extends every framebuffer's device bit vector so
// bit index deviceRef-1 is addressable, called once per newly allocated
// DeviceRef.
func (ctx *Context) growDeviceVisibility(deviceRef DeviceRef) {
	for i := range ctx.visibility {
		v := &ctx.visibility[i].devices
		for v.Len() < int(deviceRef) {
			v.Grow(1)
		}
	}
}
