// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package input

// DeltaVector2DSample is a relative 2D sample, accumulated across a frame
// rather than held at a steady value. Used for e.g. mouse pointer delta.
type DeltaVector2DSample struct {
	X, Y float32
}

// DeltaVector2DState is unused; delta vectors carry no derived state.
type DeltaVector2DState struct{}

const (
	deltaVector2DVerticalDeltaAxisTwoWay   = 1
	deltaVector2DHorizontalDeltaAxisTwoWay = 2
	deltaVector2DLeftButton                = 3
	deltaVector2DRightButton               = 4
	deltaVector2DUpButton                  = 5
	deltaVector2DDownButton                = 6
)

var deltaVector2DCompanionSet = struct {
	deltaAxisTwoWay ControlTypeRef
	button          ControlTypeRef
}{}

// WireDeltaVector2DCompanions records the companion control types a delta
// vector classifies incoming forwards from and fans PreMerge samples out to.
func WireDeltaVector2DCompanions(deltaAxisTwoWay, button ControlTypeRef) {
	deltaVector2DCompanionSet.deltaAxisTwoWay = deltaAxisTwoWay
	deltaVector2DCompanionSet.button = button
}

// RegisterDeltaVector2DType registers the built-in relative 2D control
// type, used for e.g. mouse pointer movement.
func RegisterDeltaVector2DType(ctx *Context) ControlTypeRef {
	return RegisterControlType[DeltaVector2DSample, DeltaVector2DState](ctx, Hooks[DeltaVector2DSample, DeltaVector2DState]{
		Convert: func(controlRef ControlRef, foreignType ControlTypeRef, foreignSamples any, i int, fromControl ControlRef) DeltaVector2DSample {
			switch foreignType {
			case deltaVector2DCompanionSet.deltaAxisTwoWay:
				samples := foreignSamples.([]DeltaAxisTwoWaySample)
				if fromControl.Usage == controlRef.Usage.Virtual(deltaVector2DHorizontalDeltaAxisTwoWay) {
					return DeltaVector2DSample{X: float32(samples[i])}
				}
				return DeltaVector2DSample{Y: float32(samples[i])}
			case deltaVector2DCompanionSet.button:
				samples := foreignSamples.([]ButtonSample)
				pressed := samples[i].IsPressed()
				switch fromControl.Usage {
				case controlRef.Usage.Virtual(deltaVector2DLeftButton):
					if pressed {
						return DeltaVector2DSample{X: -1}
					}
				case controlRef.Usage.Virtual(deltaVector2DRightButton):
					if pressed {
						return DeltaVector2DSample{X: 1}
					}
				case controlRef.Usage.Virtual(deltaVector2DUpButton):
					if pressed {
						return DeltaVector2DSample{Y: 1}
					}
				case controlRef.Usage.Virtual(deltaVector2DDownButton):
					if pressed {
						return DeltaVector2DSample{Y: -1}
					}
				}
				return DeltaVector2DSample{}
			}
			return DeltaVector2DSample{}
		},
		// ForwardMerge always accumulates on both axes.
		ForwardMerge: func(curTs *Timestamp, curSample *DeltaVector2DSample, nextTs Timestamp, nextSample DeltaVector2DSample) bool {
			*curTs = nextTs
			curSample.X += nextSample.X
			curSample.Y += nextSample.Y
			return true
		},
		PreMerge: func(ctx *Context, controlRef ControlRef, ts []Timestamp, samples []DeltaVector2DSample) {
			if deltaVector2DCompanionSet.deltaAxisTwoWay == 0 || deltaVector2DCompanionSet.button == 0 {
				return
			}
			vertical := make([]DeltaAxisTwoWaySample, len(samples))
			horizontal := make([]DeltaAxisTwoWaySample, len(samples))
			left := make([]ButtonSample, len(samples))
			right := make([]ButtonSample, len(samples))
			up := make([]ButtonSample, len(samples))
			down := make([]ButtonSample, len(samples))
			for i, s := range samples {
				vertical[i] = DeltaAxisTwoWaySample(s.Y)
				horizontal[i] = DeltaAxisTwoWaySample(s.X)
				if s.X < -0.5 {
					left[i] = ButtonPressed
				}
				if s.X > 0.5 {
					right[i] = ButtonPressed
				}
				if s.Y > 0.5 {
					up[i] = ButtonPressed
				}
				if s.Y < -0.5 {
					down[i] = ButtonPressed
				}
			}
			dev := controlRef.Device
			ingressFrom[DeltaAxisTwoWaySample, DeltaAxisTwoWayState](ctx, deltaVector2DCompanionSet.deltaAxisTwoWay,
				ControlRef{Usage: controlRef.Usage.Virtual(deltaVector2DVerticalDeltaAxisTwoWay), Device: dev}, ts, vertical, controlRef)
			ingressFrom[DeltaAxisTwoWaySample, DeltaAxisTwoWayState](ctx, deltaVector2DCompanionSet.deltaAxisTwoWay,
				ControlRef{Usage: controlRef.Usage.Virtual(deltaVector2DHorizontalDeltaAxisTwoWay), Device: dev}, ts, horizontal, controlRef)
			ingressFrom[ButtonSample, ButtonState](ctx, deltaVector2DCompanionSet.button,
				ControlRef{Usage: controlRef.Usage.Virtual(deltaVector2DLeftButton), Device: dev}, ts, left, controlRef)
			ingressFrom[ButtonSample, ButtonState](ctx, deltaVector2DCompanionSet.button,
				ControlRef{Usage: controlRef.Usage.Virtual(deltaVector2DRightButton), Device: dev}, ts, right, controlRef)
			ingressFrom[ButtonSample, ButtonState](ctx, deltaVector2DCompanionSet.button,
				ControlRef{Usage: controlRef.Usage.Virtual(deltaVector2DUpButton), Device: dev}, ts, up, controlRef)
			ingressFrom[ButtonSample, ButtonState](ctx, deltaVector2DCompanionSet.button,
				ControlRef{Usage: controlRef.Usage.Virtual(deltaVector2DDownButton), Device: dev}, ts, down, controlRef)
		},
		FrameBegin: func(now Timestamp, states []DeltaVector2DState, latestTimestamps []Timestamp, latestSamples []DeltaVector2DSample) {
			for i := range latestSamples {
				latestTimestamps[i] = now
				latestSamples[i] = DeltaVector2DSample{}
			}
		},
	})
}
