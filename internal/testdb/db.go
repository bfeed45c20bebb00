// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package testdb

import "github.com/gviegas/input"

// KeyboardGUID and MouseGUID are the fixed device identities this
// reference database recognizes.
var (
	KeyboardGUID = input.GUID{0x01}
	MouseGUID    = input.GUID{0x02}
)

// Device traits.
const (
	TraitKeyboard input.DeviceTraitRef = iota + 1
	TraitMouse
)

// Usage ranges. Each base usage is a primary (non-virtual) control; its
// virtual children, if any, occupy base+1 .. base+k following the
// convention ControlUsage.Virtual(k) assumes.
const (
	keyUsageBase = 1000 // + Key*2; +1 is the key's AxisOneWay companion

	mousePositionUsage = 5000

	mouseDeltaUsage = 5010 // + 1..6: vertical/horizontal delta axes, left/right/up/down buttons

	mouseScrollUsage = 5030 // + 1..6: vertical/horizontal delta axes, left/right/up/down buttons (2-D delta, x unused)

	mouseButtonUsageBase = 5100 // + Button*2; +1 is the button's AxisOneWay companion
)

// KeyUsage returns the ControlUsage of key's primary Button control.
func KeyUsage(k Key) input.ControlUsage {
	return input.ControlUsage(keyUsageBase + int(k)*2)
}

// MousePositionUsage returns the ControlUsage of the mouse's absolute
// pointer position.
func MousePositionUsage() input.ControlUsage { return mousePositionUsage }

// MouseDeltaUsage returns the ControlUsage of the mouse's pointer-delta
// control.
func MouseDeltaUsage() input.ControlUsage { return mouseDeltaUsage }

// MouseScrollUsage returns the ControlUsage of the mouse's scroll-wheel
// control.
func MouseScrollUsage() input.ControlUsage { return mouseScrollUsage }

// MouseButtonUsage returns the ControlUsage of b's primary Button control.
func MouseButtonUsage(b Button) input.ControlUsage {
	return input.ControlUsage(mouseButtonUsageBase + int(b)*2)
}

// usageEntry is the database's internal description of one usage.
type usageEntry struct {
	typeRef input.ControlTypeRef
	mode    input.RecordingMode
	parent  input.ControlUsage
}

// New builds the reference Database for a keyboard and a mouse device,
// wiring every usage it exposes onto the built-in control types
// registered in types.
func New(types input.BuiltinTypes) *input.Database {
	usages := make(map[input.ControlUsage]usageEntry)

	for k := Key(0); k < keyCount; k++ {
		base := KeyUsage(k)
		usages[base] = usageEntry{typeRef: types.Button, mode: input.LatestOnly}
		usages[base.Virtual(1)] = usageEntry{typeRef: types.AxisOneWay, mode: input.LatestOnly, parent: base}
	}

	usages[mousePositionUsage] = usageEntry{typeRef: types.Position2D, mode: input.LatestOnly}

	deltaBase := input.ControlUsage(mouseDeltaUsage)
	usages[deltaBase] = usageEntry{typeRef: types.DeltaVector2D, mode: input.LatestOnly}
	usages[deltaBase.Virtual(1)] = usageEntry{typeRef: types.DeltaAxisTwoWay, mode: input.LatestOnly, parent: deltaBase}
	usages[deltaBase.Virtual(2)] = usageEntry{typeRef: types.DeltaAxisTwoWay, mode: input.LatestOnly, parent: deltaBase}
	usages[deltaBase.Virtual(3)] = usageEntry{typeRef: types.Button, mode: input.LatestOnly, parent: deltaBase}
	usages[deltaBase.Virtual(4)] = usageEntry{typeRef: types.Button, mode: input.LatestOnly, parent: deltaBase}
	usages[deltaBase.Virtual(5)] = usageEntry{typeRef: types.Button, mode: input.LatestOnly, parent: deltaBase}
	usages[deltaBase.Virtual(6)] = usageEntry{typeRef: types.Button, mode: input.LatestOnly, parent: deltaBase}

	scrollBase := input.ControlUsage(mouseScrollUsage)
	usages[scrollBase] = usageEntry{typeRef: types.DeltaVector2D, mode: input.LatestOnly}
	usages[scrollBase.Virtual(1)] = usageEntry{typeRef: types.DeltaAxisTwoWay, mode: input.LatestOnly, parent: scrollBase}
	usages[scrollBase.Virtual(2)] = usageEntry{typeRef: types.DeltaAxisTwoWay, mode: input.LatestOnly, parent: scrollBase}
	usages[scrollBase.Virtual(3)] = usageEntry{typeRef: types.Button, mode: input.LatestOnly, parent: scrollBase}
	usages[scrollBase.Virtual(4)] = usageEntry{typeRef: types.Button, mode: input.LatestOnly, parent: scrollBase}
	usages[scrollBase.Virtual(5)] = usageEntry{typeRef: types.Button, mode: input.LatestOnly, parent: scrollBase}
	usages[scrollBase.Virtual(6)] = usageEntry{typeRef: types.Button, mode: input.LatestOnly, parent: scrollBase}

	for b := Button(0); b < btnCount; b++ {
		base := MouseButtonUsage(b)
		usages[base] = usageEntry{typeRef: types.Button, mode: input.LatestOnly}
		usages[base.Virtual(1)] = usageEntry{typeRef: types.AxisOneWay, mode: input.LatestOnly, parent: base}
	}

	keyboardUsages := make([]input.ControlUsage, 0, keyCount*2)
	for k := Key(0); k < keyCount; k++ {
		base := KeyUsage(k)
		keyboardUsages = append(keyboardUsages, base, base.Virtual(1))
	}

	mouseUsages := []input.ControlUsage{
		mousePositionUsage,
		deltaBase, deltaBase.Virtual(1), deltaBase.Virtual(2), deltaBase.Virtual(3), deltaBase.Virtual(4), deltaBase.Virtual(5), deltaBase.Virtual(6),
		scrollBase, scrollBase.Virtual(1), scrollBase.Virtual(2), scrollBase.Virtual(3), scrollBase.Virtual(4), scrollBase.Virtual(5), scrollBase.Virtual(6),
	}
	for b := Button(0); b < btnCount; b++ {
		base := MouseButtonUsage(b)
		mouseUsages = append(mouseUsages, base, base.Virtual(1))
	}

	return &input.Database{
		DeviceTraits: func(guid input.GUID) []input.DeviceTraitRef {
			switch guid {
			case KeyboardGUID:
				return []input.DeviceTraitRef{TraitKeyboard}
			case MouseGUID:
				return []input.DeviceTraitRef{TraitMouse}
			}
			return nil
		},
		TraitSize: func(trait input.DeviceTraitRef) int { return 0 },
		ConfigureTrait: func(trait input.DeviceTraitRef, blob []byte, device input.DeviceRef) {
		},
		TraitControlUsages: func(trait input.DeviceTraitRef) []input.ControlUsage {
			switch trait {
			case TraitKeyboard:
				return keyboardUsages
			case TraitMouse:
				return mouseUsages
			}
			return nil
		},
		ControlUsageDescr: func(usage input.ControlUsage) input.ControlUsageDescr {
			e, ok := usages[usage]
			if !ok {
				return input.ControlUsageDescr{}
			}
			return input.ControlUsageDescr{
				TypeRef:              e.typeRef,
				DefaultRecordingMode: e.mode,
				ParentOfVirtual:      e.parent,
			}
		},
	}
}
