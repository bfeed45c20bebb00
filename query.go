// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package input

// QueryRef identifies a registered query.
type QueryRef uint32

// QueryDescr describes a query a host would register against the
// control registry (e.g. "first gamepad with a Stick control"). Query
// matching itself is not implemented; see DESIGN.md Open Question 5.
type QueryDescr struct {
	DeviceTrait DeviceTraitRef
	ControlType ControlTypeRef
}

// RegisterQuery is reserved. Query evaluation was not part of the
// distilled runtime core and has no implementation here.
func (ctx *Context) RegisterQuery(descr QueryDescr) (QueryRef, error) {
	return 0, ErrQueryNotImplemented
}

// GetQueryResult is reserved; see RegisterQuery.
func (ctx *Context) GetQueryResult(ref QueryRef, fb FramebufferRef) ([]ControlRef, error) {
	return nil, ErrQueryNotImplemented
}
