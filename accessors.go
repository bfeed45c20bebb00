// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package input

// ControlState returns the front-buffer state and latest sample for a
// control of known type (Sa, St), as observed by consumer fb. ok is
// false when the control is unknown, belongs to a different registered
// type than (Sa, St), or fb is out of range. This is the generic
// realization of getControlVisitorGenericState: Go's type system
// requires the caller to name the concrete sample/state types at the
// call site, since there is no runtime "visit any control generically"
// escape hatch without them.
func ControlState[Sa, St any](ctx *Context, controlRef ControlRef, fb FramebufferRef) (state St, sample Sa, ok bool) {
	unlock := ctx.lock(ControlRef{})
	defer unlock()

	c, found := ctx.controls[controlRef]
	if !found {
		ctx.warnf("ControlState: unknown control %v", controlRef)
		return
	}
	if int(fb) < 0 || int(fb) >= ctx.fbCount {
		ctx.warnf("ControlState: framebuffer %d out of range", fb)
		return
	}
	t := ctx.typeOf(c.typeRef)
	ct, match := t.(*controlType[Sa, St])
	if !match {
		ctx.warnf("ControlState: control %v is not of the requested type", controlRef)
		return
	}
	state = ct.state.front[fb][c.slot]
	sample = ct.latestSample.front[fb][c.slot]
	ok = true
	return
}

// ControlLatestTimestamp returns the front-buffer timestamp of the most
// recent sample folded into a control of known type (Sa, St), as
// observed by consumer fb.
func ControlLatestTimestamp[Sa, St any](ctx *Context, controlRef ControlRef, fb FramebufferRef) (Timestamp, bool) {
	unlock := ctx.lock(ControlRef{})
	defer unlock()

	c, found := ctx.controls[controlRef]
	if !found {
		ctx.warnf("ControlLatestTimestamp: unknown control %v", controlRef)
		return Timestamp{}, false
	}
	if int(fb) < 0 || int(fb) >= ctx.fbCount {
		ctx.warnf("ControlLatestTimestamp: framebuffer %d out of range", fb)
		return Timestamp{}, false
	}
	t := ctx.typeOf(c.typeRef)
	ct, match := t.(*controlType[Sa, St])
	if !match {
		ctx.warnf("ControlLatestTimestamp: control %v is not of the requested type", controlRef)
		return Timestamp{}, false
	}
	return ct.latestTimestamp.front[fb][c.slot], true
}

// ControlRecordings returns the front-buffer recorded-history arrays for
// a control of known type (Sa, St), as observed by consumer fb.
func ControlRecordings[Sa, St any](ctx *Context, controlRef ControlRef, fb FramebufferRef) (timestamps []Timestamp, samples []Sa, ok bool) {
	unlock := ctx.lock(ControlRef{})
	defer unlock()

	c, found := ctx.controls[controlRef]
	if !found {
		ctx.warnf("ControlRecordings: unknown control %v", controlRef)
		return
	}
	if int(fb) < 0 || int(fb) >= ctx.fbCount {
		ctx.warnf("ControlRecordings: framebuffer %d out of range", fb)
		return
	}
	t := ctx.typeOf(c.typeRef)
	ct, match := t.(*controlType[Sa, St])
	if !match {
		ctx.warnf("ControlRecordings: control %v is not of the requested type", controlRef)
		return
	}
	timestamps = ct.allTimestamps.front[fb][c.slot]
	samples = ct.allSamples.front[fb][c.slot]
	ok = true
	return
}
