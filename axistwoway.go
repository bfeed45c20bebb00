// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package input

import "math"

// AxisTwoWaySample is a double-ended analog sample in [-1, 1].
type AxisTwoWaySample float32

const axisTwoWayPrecision = 0.0001

// AxisTwoWayState is unused; two-way axes carry no derived state.
type AxisTwoWayState struct{}

// Virtual child offsets of an AxisTwoWay control, used both to compute a
// fan-out target's ControlRef and to classify which child an incoming
// virtual-forwarded sample came from.
const (
	axisTwoWayPositiveAxisOneWay = 1
	axisTwoWayNegativeAxisOneWay = 2
	axisTwoWayPositiveButton     = 3
	axisTwoWayNegativeButton     = 4
)

var axisTwoWayCompanionSet = struct {
	axisOneWay ControlTypeRef
	button     ControlTypeRef
}{}

// WireAxisTwoWayCompanions records the companion control types AxisTwoWay's
// hooks dispatch to and classify incoming forwards from.
func WireAxisTwoWayCompanions(axisOneWay, button ControlTypeRef) {
	axisTwoWayCompanionSet.axisOneWay = axisOneWay
	axisTwoWayCompanionSet.button = button
}

// RegisterAxisTwoWayType registers the built-in double-ended analog axis
// control type.
func RegisterAxisTwoWayType(ctx *Context) ControlTypeRef {
	return RegisterControlType[AxisTwoWaySample, AxisTwoWayState](ctx, Hooks[AxisTwoWaySample, AxisTwoWayState]{
		Convert: func(controlRef ControlRef, foreignType ControlTypeRef, foreignSamples any, i int, fromControl ControlRef) AxisTwoWaySample {
			switch foreignType {
			case axisTwoWayCompanionSet.axisOneWay:
				samples := foreignSamples.([]AxisOneWaySample)
				if fromControl.Usage == controlRef.Usage.Virtual(axisTwoWayNegativeAxisOneWay) {
					return AxisTwoWaySample(-samples[i])
				}
				return AxisTwoWaySample(samples[i])
			case axisTwoWayCompanionSet.button:
				samples := foreignSamples.([]ButtonSample)
				pressed := samples[i].IsPressed()
				if fromControl.Usage == controlRef.Usage.Virtual(axisTwoWayNegativeButton) {
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
		ForwardMerge: func(curTs *Timestamp, curSample *AxisTwoWaySample, nextTs Timestamp, nextSample AxisTwoWaySample) bool {
			return float32(math.Abs(float64(*curSample-nextSample))) < axisTwoWayPrecision
		},
		PostMerge: func(ctx *Context, controlRef ControlRef, ts []Timestamp, samples []AxisTwoWaySample) {
			if axisTwoWayCompanionSet.axisOneWay == 0 || axisTwoWayCompanionSet.button == 0 {
				return
			}
			posAxis := make([]AxisOneWaySample, len(samples))
			negAxis := make([]AxisOneWaySample, len(samples))
			posButton := make([]ButtonSample, len(samples))
			negButton := make([]ButtonSample, len(samples))
			for i, s := range samples {
				if s > 0 {
					posAxis[i] = AxisOneWaySample(s)
				}
				if s < 0 {
					negAxis[i] = AxisOneWaySample(-s)
				}
				if s > 0.5 {
					posButton[i] = ButtonPressed
				}
				if s < -0.5 {
					negButton[i] = ButtonPressed
				}
			}
			dev := controlRef.Device
			ingressFrom[AxisOneWaySample, AxisOneWayState](ctx, axisTwoWayCompanionSet.axisOneWay,
				ControlRef{Usage: controlRef.Usage.Virtual(axisTwoWayPositiveAxisOneWay), Device: dev}, ts, posAxis, controlRef)
			ingressFrom[AxisOneWaySample, AxisOneWayState](ctx, axisTwoWayCompanionSet.axisOneWay,
				ControlRef{Usage: controlRef.Usage.Virtual(axisTwoWayNegativeAxisOneWay), Device: dev}, ts, negAxis, controlRef)
			ingressFrom[ButtonSample, ButtonState](ctx, axisTwoWayCompanionSet.button,
				ControlRef{Usage: controlRef.Usage.Virtual(axisTwoWayPositiveButton), Device: dev}, ts, posButton, controlRef)
			ingressFrom[ButtonSample, ButtonState](ctx, axisTwoWayCompanionSet.button,
				ControlRef{Usage: controlRef.Usage.Virtual(axisTwoWayNegativeButton), Device: dev}, ts, negButton, controlRef)
		},
	})
}
