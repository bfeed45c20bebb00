// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package input

// Position2DSample is a steady-state absolute 2D sample, e.g. an
// absolute pointer or touch position. Unlike Stick, it has no virtual
// fan-out: it is a leaf control type.
type Position2DSample struct {
	X, Y float32
}

// Position2DState is unused; positions carry no derived state.
type Position2DState struct{}

const position2DPrecision = 0.0001

// RegisterPosition2DType registers the built-in absolute 2D control type.
func RegisterPosition2DType(ctx *Context) ControlTypeRef {
	return RegisterControlType[Position2DSample, Position2DState](ctx, Hooks[Position2DSample, Position2DState]{
		ForwardMerge: func(curTs *Timestamp, curSample *Position2DSample, nextTs Timestamp, nextSample Position2DSample) bool {
			dx := curSample.X - nextSample.X
			dy := curSample.Y - nextSample.Y
			return dx*dx+dy*dy < position2DPrecision*position2DPrecision
		},
	})
}
