// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package input

// StickSample is a steady-state 2D sample, e.g. a gamepad thumbstick.
type StickSample struct {
	X, Y float32
}

// StickState is unused; sticks carry no derived state.
type StickState struct{}

const stickPrecision = 0.0001

const (
	stickVerticalAxisTwoWay   = 1
	stickHorizontalAxisTwoWay = 2
	stickLeftAxisOneWay       = 3
	stickRightAxisOneWay      = 4
	stickUpAxisOneWay         = 5
	stickDownAxisOneWay       = 6
	stickLeftButton           = 7
	stickRightButton          = 8
	stickUpButton             = 9
	stickDownButton           = 10
)

var stickCompanionSet = struct {
	axisTwoWay ControlTypeRef
	axisOneWay ControlTypeRef
	button     ControlTypeRef
}{}

// WireStickCompanions records the companion control types a stick
// classifies incoming forwards from and fans PostMerge samples out to.
func WireStickCompanions(axisTwoWay, axisOneWay, button ControlTypeRef) {
	stickCompanionSet.axisTwoWay = axisTwoWay
	stickCompanionSet.axisOneWay = axisOneWay
	stickCompanionSet.button = button
}

// RegisterStickType registers the built-in 2D stick control type.
func RegisterStickType(ctx *Context) ControlTypeRef {
	return RegisterControlType[StickSample, StickState](ctx, Hooks[StickSample, StickState]{
		Convert: func(controlRef ControlRef, foreignType ControlTypeRef, foreignSamples any, i int, fromControl ControlRef) StickSample {
			switch foreignType {
			case stickCompanionSet.axisTwoWay:
				samples := foreignSamples.([]AxisTwoWaySample)
				v := float32(samples[i])
				if fromControl.Usage == controlRef.Usage.Virtual(stickHorizontalAxisTwoWay) {
					return StickSample{X: v}
				}
				return StickSample{Y: v}
			case stickCompanionSet.axisOneWay:
				samples := foreignSamples.([]AxisOneWaySample)
				v := float32(samples[i])
				switch fromControl.Usage {
				case controlRef.Usage.Virtual(stickLeftAxisOneWay):
					return StickSample{X: -v}
				case controlRef.Usage.Virtual(stickRightAxisOneWay):
					return StickSample{X: v}
				case controlRef.Usage.Virtual(stickUpAxisOneWay):
					return StickSample{Y: v}
				case controlRef.Usage.Virtual(stickDownAxisOneWay):
					return StickSample{Y: -v}
				}
			case stickCompanionSet.button:
				samples := foreignSamples.([]ButtonSample)
				pressed := samples[i].IsPressed()
				switch fromControl.Usage {
				case controlRef.Usage.Virtual(stickLeftButton):
					if pressed {
						return StickSample{X: -1}
					}
				case controlRef.Usage.Virtual(stickRightButton):
					if pressed {
						return StickSample{X: 1}
					}
				case controlRef.Usage.Virtual(stickUpButton):
					if pressed {
						return StickSample{Y: 1}
					}
				case controlRef.Usage.Virtual(stickDownButton):
					if pressed {
						return StickSample{Y: -1}
					}
				}
			}
			return StickSample{}
		},
		ForwardMerge: func(curTs *Timestamp, curSample *StickSample, nextTs Timestamp, nextSample StickSample) bool {
			dx := curSample.X - nextSample.X
			dy := curSample.Y - nextSample.Y
			return dx*dx+dy*dy < stickPrecision*stickPrecision
		},
		PostMerge: func(ctx *Context, controlRef ControlRef, ts []Timestamp, samples []StickSample) {
			if stickCompanionSet.axisTwoWay == 0 || stickCompanionSet.axisOneWay == 0 || stickCompanionSet.button == 0 {
				return
			}
			n := len(samples)
			vertical := make([]AxisTwoWaySample, n)
			horizontal := make([]AxisTwoWaySample, n)
			left := make([]AxisOneWaySample, n)
			right := make([]AxisOneWaySample, n)
			up := make([]AxisOneWaySample, n)
			down := make([]AxisOneWaySample, n)
			leftB := make([]ButtonSample, n)
			rightB := make([]ButtonSample, n)
			upB := make([]ButtonSample, n)
			downB := make([]ButtonSample, n)
			for i, s := range samples {
				vertical[i] = AxisTwoWaySample(s.Y)
				horizontal[i] = AxisTwoWaySample(s.X)
				if s.X < 0 {
					left[i] = AxisOneWaySample(-s.X)
				}
				if s.X > 0 {
					right[i] = AxisOneWaySample(s.X)
				}
				if s.Y > 0 {
					up[i] = AxisOneWaySample(s.Y)
				}
				if s.Y < 0 {
					down[i] = AxisOneWaySample(-s.Y)
				}
				if s.X < -0.5 {
					leftB[i] = ButtonPressed
				}
				if s.X > 0.5 {
					rightB[i] = ButtonPressed
				}
				if s.Y > 0.5 {
					upB[i] = ButtonPressed
				}
				if s.Y < -0.5 {
					downB[i] = ButtonPressed
				}
			}
			dev := controlRef.Device
			ingressFrom[AxisTwoWaySample, AxisTwoWayState](ctx, stickCompanionSet.axisTwoWay,
				ControlRef{Usage: controlRef.Usage.Virtual(stickVerticalAxisTwoWay), Device: dev}, ts, vertical, controlRef)
			ingressFrom[AxisTwoWaySample, AxisTwoWayState](ctx, stickCompanionSet.axisTwoWay,
				ControlRef{Usage: controlRef.Usage.Virtual(stickHorizontalAxisTwoWay), Device: dev}, ts, horizontal, controlRef)
			ingressFrom[AxisOneWaySample, AxisOneWayState](ctx, stickCompanionSet.axisOneWay,
				ControlRef{Usage: controlRef.Usage.Virtual(stickLeftAxisOneWay), Device: dev}, ts, left, controlRef)
			ingressFrom[AxisOneWaySample, AxisOneWayState](ctx, stickCompanionSet.axisOneWay,
				ControlRef{Usage: controlRef.Usage.Virtual(stickRightAxisOneWay), Device: dev}, ts, right, controlRef)
			ingressFrom[AxisOneWaySample, AxisOneWayState](ctx, stickCompanionSet.axisOneWay,
				ControlRef{Usage: controlRef.Usage.Virtual(stickUpAxisOneWay), Device: dev}, ts, up, controlRef)
			ingressFrom[AxisOneWaySample, AxisOneWayState](ctx, stickCompanionSet.axisOneWay,
				ControlRef{Usage: controlRef.Usage.Virtual(stickDownAxisOneWay), Device: dev}, ts, down, controlRef)
			ingressFrom[ButtonSample, ButtonState](ctx, stickCompanionSet.button,
				ControlRef{Usage: controlRef.Usage.Virtual(stickLeftButton), Device: dev}, ts, leftB, controlRef)
			ingressFrom[ButtonSample, ButtonState](ctx, stickCompanionSet.button,
				ControlRef{Usage: controlRef.Usage.Virtual(stickRightButton), Device: dev}, ts, rightB, controlRef)
			ingressFrom[ButtonSample, ButtonState](ctx, stickCompanionSet.button,
				ControlRef{Usage: controlRef.Usage.Virtual(stickUpButton), Device: dev}, ts, upB, controlRef)
			ingressFrom[ButtonSample, ButtonState](ctx, stickCompanionSet.button,
				ControlRef{Usage: controlRef.Usage.Virtual(stickDownButton), Device: dev}, ts, downB, controlRef)
		},
	})
}
