// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package input

// ButtonSample is a binary pressed/released sample.
type ButtonSample uint8

// Button sample values.
const (
	ButtonReleased ButtonSample = 0
	ButtonPressed  ButtonSample = 1
)

// IsPressed reports whether the sample represents a press.
func (s ButtonSample) IsPressed() bool { return s == ButtonPressed }

// IsReleased reports whether the sample represents a release.
func (s ButtonSample) IsReleased() bool { return s == ButtonReleased }

// ButtonState carries the edge flags computed for a single ingress
// frame; FrameBegin zeroes both at the start of every frame.
type ButtonState struct {
	WasPressedThisIOFrame  bool
	WasReleasedThisIOFrame bool
}

// buttonCompanionSet.axisOneWay, when set, is the registered type ref of
// the one-way-axis companion type a button fans out to post-merge. It is
// populated by RegisterButtonType's caller via WireButtonCompanions,
// since the built-in types may be registered in either order.
var buttonCompanionSet = struct {
	axisOneWay ControlTypeRef
}{}

// WireButtonCompanions records the companion control types Button's hooks
// dispatch to. It must be called once after both Button and AxisOneWay
// are registered, before any ingress occurs.
func WireButtonCompanions(axisOneWay ControlTypeRef) {
	buttonCompanionSet.axisOneWay = axisOneWay
}

// RegisterButtonType registers the built-in Button control type.
func RegisterButtonType(ctx *Context) ControlTypeRef {
	return RegisterControlType[ButtonSample, ButtonState](ctx, Hooks[ButtonSample, ButtonState]{
		Convert: func(controlRef ControlRef, foreignType ControlTypeRef, foreignSamples any, i int, fromControl ControlRef) ButtonSample {
			if foreignType == buttonCompanionSet.axisOneWay {
				axisSamples := foreignSamples.([]AxisOneWaySample)
				if axisSamples[i] >= 0.5 {
					return ButtonPressed
				}
				return ButtonReleased
			}
			return ButtonReleased
		},
		ForwardMerge: func(curTs *Timestamp, curSample *ButtonSample, nextTs Timestamp, nextSample ButtonSample) bool {
			return *curSample == nextSample
		},
		UpdateControlState: func(state *ButtonState, prevTs Timestamp, prevSample ButtonSample, nextTs Timestamp, nextSample ButtonSample) {
			switch {
			case prevSample.IsReleased() && nextSample.IsPressed():
				state.WasPressedThisIOFrame = true
			case prevSample.IsPressed() && nextSample.IsReleased():
				state.WasReleasedThisIOFrame = true
			}
		},
		PostMerge: func(ctx *Context, controlRef ControlRef, ts []Timestamp, samples []ButtonSample) {
			if buttonCompanionSet.axisOneWay == 0 {
				return
			}
			axisSamples := make([]AxisOneWaySample, len(samples))
			for i, s := range samples {
				if s.IsPressed() {
					axisSamples[i] = 1.0
				}
			}
			axisControl := ControlRef{Usage: controlRef.Usage.Virtual(1), Device: controlRef.Device}
			ingressFrom[AxisOneWaySample, AxisOneWayState](ctx, buttonCompanionSet.axisOneWay, axisControl, ts, axisSamples, controlRef)
		},
		FrameBegin: func(now Timestamp, states []ButtonState, latestTimestamps []Timestamp, latestSamples []ButtonSample) {
			for i := range states {
				states[i] = ButtonState{}
			}
		},
	})
}
