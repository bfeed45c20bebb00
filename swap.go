// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package input

// SwapFramebuffer advances one consumer's view to the latest ingressed
// data: it rebuilds that consumer's visibility sets if they were marked
// dirty by a device/control change since the last swap, moves every
// registered type's back buffer to front for that framebuffer, and then
// begins the next frame for that buffer.
//
// Each framebuffer is swapped independently; a producer-side ingress call
// writes every framebuffer's back buffer in lockstep, but consumers each
// decide when to observe it.
func (ctx *Context) SwapFramebuffer(fb FramebufferRef) {
	unlock := ctx.lock(ControlRef{})
	defer unlock()

	if int(fb) < 0 || int(fb) >= ctx.fbCount {
		ctx.warnf("SwapFramebuffer: framebuffer %d out of range", fb)
		return
	}

	vis := &ctx.visibility[fb]
	if vis.dirty {
		ctx.rebuildVisibility(vis)
		vis.dirty = false
	}

	for _, t := range ctx.types {
		t.moveToFront(fb)
	}
	for _, t := range ctx.types {
		t.frameBegin(ctx, fb)
	}
}

// rebuildVisibility recomputes a framebuffer's visible-device and
// visible-control sets from the live (non-pending-deletion) registry
// state. Pending-deletion entries are dropped from visibility here but
// their storage slots are not reclaimed; see DESIGN.md Open Question 1.
func (ctx *Context) rebuildVisibility(vis *framebufferVisibility) {
	vis.devices.Clear()
	for c := range vis.controls {
		delete(vis.controls, c)
	}
	for ref, d := range ctx.devices {
		if !d.pendingDeletion {
			vis.devices.Set(int(ref) - 1)
		}
	}
	for ref, c := range ctx.controls {
		if !c.pendingDeletion {
			vis.controls[ref] = struct{}{}
		}
	}
}

// IsDeviceVisible reports whether deviceRef was live, from fb's
// perspective, as of its last swap.
func (ctx *Context) IsDeviceVisible(deviceRef DeviceRef, fb FramebufferRef) bool {
	unlock := ctx.lock(ControlRef{})
	defer unlock()

	if int(fb) < 0 || int(fb) >= ctx.fbCount {
		return false
	}
	idx := int(deviceRef) - 1
	if idx < 0 || idx >= ctx.visibility[fb].devices.Len() {
		return false
	}
	return ctx.visibility[fb].devices.IsSet(idx)
}

// IsControlVisible reports whether controlRef was live, from fb's
// perspective, as of its last swap.
func (ctx *Context) IsControlVisible(controlRef ControlRef, fb FramebufferRef) bool {
	unlock := ctx.lock(ControlRef{})
	defer unlock()

	if int(fb) < 0 || int(fb) >= ctx.fbCount {
		return false
	}
	_, ok := ctx.visibility[fb].controls[controlRef]
	return ok
}
