// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package input

import "math"

// AxisOneWaySample is a single-ended analog sample in [0, 1].
type AxisOneWaySample float32

// axisOneWayPrecision bounds the rolling-merge adhoc-equality test.
const axisOneWayPrecision = 0.0001

// AxisOneWayState is unused; one-way axes carry no derived state.
type AxisOneWayState struct{}

var axisOneWayCompanionSet = struct {
	button ControlTypeRef
}{}

// WireAxisOneWayCompanions records the companion control type AxisOneWay's
// hooks dispatch to. Must be called once after both AxisOneWay and Button
// are registered, before any ingress occurs.
func WireAxisOneWayCompanions(button ControlTypeRef) {
	axisOneWayCompanionSet.button = button
}

// RegisterAxisOneWayType registers the built-in single-ended analog axis
// control type.
func RegisterAxisOneWayType(ctx *Context) ControlTypeRef {
	return RegisterControlType[AxisOneWaySample, AxisOneWayState](ctx, Hooks[AxisOneWaySample, AxisOneWayState]{
		Convert: func(controlRef ControlRef, foreignType ControlTypeRef, foreignSamples any, i int, fromControl ControlRef) AxisOneWaySample {
			if foreignType == axisOneWayCompanionSet.button {
				buttonSamples := foreignSamples.([]ButtonSample)
				if buttonSamples[i].IsPressed() {
					return 1.0
				}
				return 0.0
			}
			return 0.0
		},
		ForwardMerge: func(curTs *Timestamp, curSample *AxisOneWaySample, nextTs Timestamp, nextSample AxisOneWaySample) bool {
			return float32(math.Abs(float64(*curSample-nextSample))) < axisOneWayPrecision
		},
		PostMerge: func(ctx *Context, controlRef ControlRef, ts []Timestamp, samples []AxisOneWaySample) {
			if axisOneWayCompanionSet.button == 0 {
				return
			}
			buttonSamples := make([]ButtonSample, len(samples))
			for i, s := range samples {
				if s >= 0.5 {
					buttonSamples[i] = ButtonPressed
				} else {
					buttonSamples[i] = ButtonReleased
				}
			}
			buttonControl := ControlRef{Usage: controlRef.Usage.Virtual(1), Device: controlRef.Device}
			ingressFrom[ButtonSample, ButtonState](ctx, axisOneWayCompanionSet.button, buttonControl, ts, buttonSamples, controlRef)
		},
	})
}
