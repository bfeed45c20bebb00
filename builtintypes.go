// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package input

// BuiltinTypes collects the ControlTypeRef assigned to each of the seven
// built-in control types, as returned by RegisterBuiltinControlTypes.
type BuiltinTypes struct {
	Button          ControlTypeRef
	AxisOneWay      ControlTypeRef
	AxisTwoWay      ControlTypeRef
	DeltaAxisTwoWay ControlTypeRef
	DeltaVector2D   ControlTypeRef
	Stick           ControlTypeRef
	Position2D      ControlTypeRef
}

// RegisterBuiltinControlTypes registers all seven built-in control types
// against ctx and wires their companion relationships (the virtual
// parent/child pairings each type's Convert/PreMerge/PostMerge hooks
// depend on). ctx need not be initialized yet — in fact it ordinarily
// isn't, since the returned ControlTypeRefs are what a Database's
// ControlUsageDescr callback reports, and the Database must be set via
// SetDatabaseCallbacks before Init will succeed. Hosts that only need a
// subset of the built-in types may instead call the individual
// RegisterXType/WireXCompanions functions directly.
func RegisterBuiltinControlTypes(ctx *Context) BuiltinTypes {
	t := BuiltinTypes{
		Button:          RegisterButtonType(ctx),
		AxisOneWay:      RegisterAxisOneWayType(ctx),
		AxisTwoWay:      RegisterAxisTwoWayType(ctx),
		DeltaAxisTwoWay: RegisterDeltaAxisTwoWayType(ctx),
		DeltaVector2D:   RegisterDeltaVector2DType(ctx),
		Stick:           RegisterStickType(ctx),
		Position2D:      RegisterPosition2DType(ctx),
	}
	WireButtonCompanions(t.AxisOneWay)
	WireAxisOneWayCompanions(t.Button)
	WireAxisTwoWayCompanions(t.AxisOneWay, t.Button)
	WireDeltaAxisTwoWayCompanions(t.Button)
	WireDeltaVector2DCompanions(t.DeltaAxisTwoWay, t.Button)
	WireStickCompanions(t.AxisTwoWay, t.AxisOneWay, t.Button)
	return t
}
