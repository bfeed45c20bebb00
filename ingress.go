// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package input

// maxBatch bounds the per-iteration stack/slice use of the ingress
// pipeline, matching the upstream design's fixed-size batch buffers.
const maxBatch = 128

// Ingress is the typed, external entry point producers call to push
// samples of a control's own type. foreignType is always the control's
// own registered typeRef and fromControl is always invalid; internally
// this funnels into the same generic pipeline used for virtual-control
// fan-out and forwarding.
func Ingress[Sa, St any](ctx *Context, typeRef ControlTypeRef, controlRef ControlRef, timestamps []Timestamp, samples []Sa) {
	t := ctx.typeOf(typeRef)
	ct, ok := t.(*controlType[Sa, St])
	if !ok {
		ctx.warnf("Ingress: type %d is not registered with the requested shape", typeRef)
		return
	}
	ingress(ctx, typeRef, controlRef, typeRef, timestamps, samples, nil, ControlRef{}, ct)
}

// ingressFrom is the sibling/child fan-out entry point: adapters' PreMerge
// and PostMerge hooks call it directly with typed samples of the target
// control's own type, passing the originating control as fromControl so
// the reentrancy exemption applies and so the target (if itself virtual)
// suppresses its own further fan-out.
func ingressFrom[Sa, St any](ctx *Context, typeRef ControlTypeRef, controlRef ControlRef, timestamps []Timestamp, samples []Sa, fromControl ControlRef) {
	t := ctx.typeOf(typeRef)
	ct, ok := t.(*controlType[Sa, St])
	if !ok {
		ctx.warnf("ingressFrom: type %d is not registered with the requested shape", typeRef)
		return
	}
	ingress(ctx, typeRef, controlRef, typeRef, timestamps, samples, nil, fromControl, ct)
}

// ingress implements the generic ingress pipeline algorithm: virtual
// forwarding, batching, rolling merge, per-framebuffer state fold, and
// pre/post-merge fan-out.
func ingress[Sa, St any](
	ctx *Context,
	typeRef ControlTypeRef,
	controlRef ControlRef,
	foreignType ControlTypeRef,
	timestamps []Timestamp,
	ownSamples []Sa,
	foreignSamples any,
	fromControl ControlRef,
	ct *controlType[Sa, St],
) {
	unlock := ctx.lock(fromControl)
	defer unlock()

	count := len(timestamps)
	if count == 0 {
		return
	}

	ctrl, ok := ctx.controls[controlRef]
	if !ok {
		ctx.warnf("ingress: unknown control %v", controlRef)
		return
	}
	if ctrl.recordingMode == Disabled {
		return
	}

	// Virtual forwarding: an externally-originated push on a virtual
	// child is re-dispatched through the parent's own ingress, with
	// fromControl identifying the child so Convert hooks can classify it
	// and so the reentrancy exemption applies.
	if !fromControl.Valid() && ctrl.parent.Valid() {
		parent, ok := ctx.controls[ctrl.parent]
		if !ok {
			ctx.warnf("ingress: missing parent for virtual control %v", controlRef)
			return
		}
		parentType := ctx.typeOf(parent.typeRef)
		if parentType == nil {
			ctx.warnf("ingress: parent %v has unregistered type", ctrl.parent)
			return
		}
		parentType.dispatch(ctx, ctrl.parent, typeRef, timestamps, any(ownSamples), controlRef)
		return
	}

	hooks := &ct.hooks
	slot := ctrl.slot
	isVirtual := ctrl.parent.Valid()
	crossType := fromControl.Valid() && foreignType != typeRef

	for start := 0; start < count; start += maxBatch {
		end := start + maxBatch
		if end > count {
			end = count
		}

		batchTs := make([]Timestamp, 0, end-start)
		batchSamples := make([]Sa, 0, end-start)

		appendMerged := func(ts Timestamp, sample Sa) {
			n := len(batchSamples)
			if ctrl.recordingMode != AllAsIs && n > 0 && hooks.ForwardMerge != nil {
				if hooks.ForwardMerge(&batchTs[n-1], &batchSamples[n-1], ts, sample) {
					return
				}
			}
			batchTs = append(batchTs, ts)
			batchSamples = append(batchSamples, sample)
		}

		if crossType {
			if hooks.Convert == nil {
				ctx.assertf("no Convert hook", "ingress: control %v received foreign type %d with no Convert hook", controlRef, foreignType)
				return
			}
			for i := start; i < end; i++ {
				sample := hooks.Convert(controlRef, foreignType, foreignSamples, i, fromControl)
				if !isVirtual && hooks.PreMerge != nil {
					hooks.PreMerge(ctx, controlRef, timestamps[i:i+1:i+1], []Sa{sample})
				}
				appendMerged(timestamps[i], sample)
			}
		} else {
			if !isVirtual && hooks.PreMerge != nil {
				hooks.PreMerge(ctx, controlRef, timestamps[start:end], ownSamples[start:end])
			}
			for i := start; i < end; i++ {
				appendMerged(timestamps[i], ownSamples[i])
			}
		}

		for fb := 0; fb < ctx.fbCount; fb++ {
			fbr := FramebufferRef(fb)
			foldFramebuffer(ctx, ctrl, ct, fbr, slot, batchTs, batchSamples)
		}

		if !isVirtual && hooks.PostMerge != nil {
			hooks.PostMerge(ctx, controlRef, batchTs, batchSamples)
		}
	}
}

// foldFramebuffer realises ingress pipeline step 5 for one framebuffer's
// back buffer: the optional adhoc-merge into the existing latest sample,
// the UpdateControlState transitions, overwriting latest, and the
// recording-mode-gated history append.
func foldFramebuffer[Sa, St any](ctx *Context, ctrl *control, ct *controlType[Sa, St], fb FramebufferRef, slot int, batchTs []Timestamp, batchSamples []Sa) {
	hooks := &ct.hooks
	latestTs := &ct.latestTimestamp.back[fb][slot]
	latestSample := &ct.latestSample.back[fb][slot]
	state := &ct.state.back[fb][slot]
	everFolded := &ct.everFolded.back[fb][slot]

	if len(batchSamples) == 0 {
		return
	}

	origLatestTs, origLatestSample := *latestTs, *latestSample
	startIdx := 0
	// A freshly allocated slot has no real prior sample to adhoc-merge
	// against; its zero-valued latest would otherwise coincidentally
	// match a genuine first sample (e.g. a released button) and silently
	// swallow it.
	if *everFolded && ctrl.recordingMode != AllAsIs && hooks.ForwardMerge != nil {
		if hooks.ForwardMerge(latestTs, latestSample, batchTs[0], batchSamples[0]) {
			if len(batchSamples) == 1 {
				*everFolded = true
				return
			}
			startIdx = 1
		}
	}
	*everFolded = true

	prevTs, prevSample := origLatestTs, origLatestSample
	if startIdx == 1 {
		prevTs, prevSample = *latestTs, *latestSample
	}
	if hooks.UpdateControlState != nil {
		hooks.UpdateControlState(state, prevTs, prevSample, batchTs[startIdx], batchSamples[startIdx])
		for i := startIdx; i+1 < len(batchSamples); i++ {
			hooks.UpdateControlState(state, batchTs[i], batchSamples[i], batchTs[i+1], batchSamples[i+1])
		}
	}

	*latestTs = batchTs[len(batchTs)-1]
	*latestSample = batchSamples[len(batchSamples)-1]

	if ctrl.recordingMode == AllMerged || ctrl.recordingMode == AllAsIs {
		recTs := batchTs[startIdx:]
		recSamples := batchSamples[startIdx:]
		if len(recTs) > 0 {
			ct.allTimestamps.append(fb, slot, recTs...)
			ct.allSamples.append(fb, slot, recSamples...)
		}
	}
}
