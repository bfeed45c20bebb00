// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package input

// DeltaAxisTwoWaySample is a relative (delta) double-ended analog sample,
// accumulated across a frame rather than held at a steady value.
type DeltaAxisTwoWaySample float32

// DeltaAxisTwoWayState is unused; delta axes carry no derived state.
type DeltaAxisTwoWayState struct{}

const (
	deltaAxisTwoWayPositiveButton = 1
	deltaAxisTwoWayNegativeButton = 2
)

var deltaAxisTwoWayCompanionSet = struct {
	button ControlTypeRef
}{}

// WireDeltaAxisTwoWayCompanions records the companion control type a delta
// axis classifies incoming forwards from and fans PreMerge samples out to.
func WireDeltaAxisTwoWayCompanions(button ControlTypeRef) {
	deltaAxisTwoWayCompanionSet.button = button
}

// RegisterDeltaAxisTwoWayType registers the built-in relative double-ended
// analog axis control type, used for e.g. mouse-wheel scroll.
func RegisterDeltaAxisTwoWayType(ctx *Context) ControlTypeRef {
	return RegisterControlType[DeltaAxisTwoWaySample, DeltaAxisTwoWayState](ctx, Hooks[DeltaAxisTwoWaySample, DeltaAxisTwoWayState]{
		Convert: func(controlRef ControlRef, foreignType ControlTypeRef, foreignSamples any, i int, fromControl ControlRef) DeltaAxisTwoWaySample {
			if foreignType == deltaAxisTwoWayCompanionSet.button {
				samples := foreignSamples.([]ButtonSample)
				pressed := samples[i].IsPressed()
				if fromControl.Usage == controlRef.Usage.Virtual(deltaAxisTwoWayNegativeButton) {
					if pressed {
						return -1.0
					}
					return 0.0
				}
				if pressed {
					return 1.0
				}
				return 0.0
			}
			return 0.0
		},
		// ForwardMerge always accumulates: deltas within the same batch sum
		// rather than adhoc-replacing each other.
		ForwardMerge: func(curTs *Timestamp, curSample *DeltaAxisTwoWaySample, nextTs Timestamp, nextSample DeltaAxisTwoWaySample) bool {
			*curTs = nextTs
			*curSample += nextSample
			return true
		},
		PreMerge: func(ctx *Context, controlRef ControlRef, ts []Timestamp, samples []DeltaAxisTwoWaySample) {
			if deltaAxisTwoWayCompanionSet.button == 0 {
				return
			}
			posButton := make([]ButtonSample, len(samples))
			negButton := make([]ButtonSample, len(samples))
			for i, s := range samples {
				if s > 0.5 {
					posButton[i] = ButtonPressed
				}
				if s < -0.5 {
					negButton[i] = ButtonPressed
				}
			}
			dev := controlRef.Device
			ingressFrom[ButtonSample, ButtonState](ctx, deltaAxisTwoWayCompanionSet.button,
				ControlRef{Usage: controlRef.Usage.Virtual(deltaAxisTwoWayPositiveButton), Device: dev}, ts, posButton, controlRef)
			ingressFrom[ButtonSample, ButtonState](ctx, deltaAxisTwoWayCompanionSet.button,
				ControlRef{Usage: controlRef.Usage.Virtual(deltaAxisTwoWayNegativeButton), Device: dev}, ts, negButton, controlRef)
		},
		FrameBegin: func(now Timestamp, states []DeltaAxisTwoWayState, latestTimestamps []Timestamp, latestSamples []DeltaAxisTwoWaySample) {
			for i := range latestSamples {
				latestTimestamps[i] = now
				latestSamples[i] = 0
			}
		},
	})
}
