// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package input

// createControl resolves usage's type/mode/parent from the database and
// allocates it a dense slot in the matching type's storage. Called while
// the context lock is already held (from InstantiateDevice).
func (ctx *Context) createControl(ref ControlRef) {
	if ctx.db.ControlUsageDescr == nil {
		ctx.warnf("createControl: no ControlUsageDescr callback")
		return
	}
	descr := ctx.db.ControlUsageDescr(ref.Usage)
	t := ctx.typeOf(descr.TypeRef)
	if t == nil {
		ctx.warnf("createControl: usage %d has unregistered type %d", ref.Usage, descr.TypeRef)
		return
	}

	var parent ControlRef
	if descr.ParentOfVirtual != 0 {
		parent = ControlRef{Usage: descr.ParentOfVirtual, Device: ref.Device}
	}

	c := &control{
		ref:           ref,
		typeRef:       descr.TypeRef,
		parent:        parent,
		recordingMode: descr.DefaultRecordingMode,
		slot:          t.allocSlot(ref),
	}
	if ctx.db.NameForControl != nil {
		c.descr.Name = ctx.db.NameForControl(ref)
	}
	ctx.controls[ref] = c
}

// SetControlDescr overwrites a control's descriptor.
func (ctx *Context) SetControlDescr(controlRef ControlRef, descr ControlDescr) {
	unlock := ctx.lock(ControlRef{})
	defer unlock()

	c, ok := ctx.controls[controlRef]
	if !ok {
		ctx.warnf("SetControlDescr: unknown control %v", controlRef)
		return
	}
	c.descr = descr
}

// GetControlDescr copies out a control's descriptor.
func (ctx *Context) GetControlDescr(controlRef ControlRef) (ControlDescr, bool) {
	unlock := ctx.lock(ControlRef{})
	defer unlock()

	c, ok := ctx.controls[controlRef]
	if !ok {
		ctx.warnf("GetControlDescr: unknown control %v", controlRef)
		return ControlDescr{}, false
	}
	return c.descr, true
}

// SetRecordingMode changes a control's recording mode.
func (ctx *Context) SetRecordingMode(controlRef ControlRef, mode RecordingMode) {
	unlock := ctx.lock(ControlRef{})
	defer unlock()

	c, ok := ctx.controls[controlRef]
	if !ok {
		ctx.warnf("SetRecordingMode: unknown control %v", controlRef)
		return
	}
	c.recordingMode = mode
}

// GetRecordingMode returns a control's current recording mode.
func (ctx *Context) GetRecordingMode(controlRef ControlRef) RecordingMode {
	unlock := ctx.lock(ControlRef{})
	defer unlock()

	c, ok := ctx.controls[controlRef]
	if !ok {
		ctx.warnf("GetRecordingMode: unknown control %v", controlRef)
		return Disabled
	}
	return c.recordingMode
}

// ForceSyncControlInFrontbufferWithBackbuffer is reserved; its semantics
// are not pinned down upstream (see DESIGN.md Open Question 2) and this
// implementation is a documented no-op.
func (ctx *Context) ForceSyncControlInFrontbufferWithBackbuffer(controlRef ControlRef, fb FramebufferRef) {
}
