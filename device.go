// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package input

// InstantiateDevice creates a new device instance from its GUID and
// persistent identifier. It queries the database for the device's traits,
// allocates and zero-initializes a blob per trait, invokes ConfigureTrait
// on each, then batch-creates every control exposed by those traits.
func (ctx *Context) InstantiateDevice(guid GUID, persistentID PersistentID) DeviceRef {
	unlock := ctx.lock(ControlRef{})
	defer unlock()

	if ctx.db == nil || ctx.db.DeviceTraits == nil {
		ctx.warnf("InstantiateDevice: no database callbacks")
		return 0
	}

	ref := ctx.allocDeviceRef()
	ctx.growDeviceVisibility(ref)

	d := &device{
		ref: ref,
		descr: DeviceDescr{
			GUID:         guid,
			PersistentID: persistentID,
		},
		traits: make(map[DeviceTraitRef][]byte),
	}
	if ctx.db.NameForDevice != nil {
		d.descr.Name = ctx.db.NameForDevice(ref)
	}

	traits := ctx.db.DeviceTraits(guid)
	for _, trait := range traits {
		size := 0
		if ctx.db.TraitSize != nil {
			size = ctx.db.TraitSize(trait)
		}
		blob := make([]byte, size)
		d.traits[trait] = blob
		if ctx.db.ConfigureTrait != nil {
			ctx.db.ConfigureTrait(trait, blob, ref)
		}
	}

	ctx.devices[ref] = d

	for _, trait := range traits {
		if ctx.db.TraitControlUsages == nil {
			continue
		}
		for _, usage := range ctx.db.TraitControlUsages(trait) {
			ctx.createControl(ControlRef{Usage: usage, Device: ref})
		}
	}

	ctx.markFramebuffersDirty()
	return ref
}

// RemoveDevice marks deviceRef and every one of its controls as pending
// deletion, and raises every framebuffer's visibility-dirty flag.
// Physical reclamation is deferred; see DESIGN.md Open Question 1.
func (ctx *Context) RemoveDevice(deviceRef DeviceRef) {
	unlock := ctx.lock(ControlRef{})
	defer unlock()

	d, ok := ctx.devices[deviceRef]
	if !ok {
		ctx.warnf("RemoveDevice: unknown device %d", deviceRef)
		return
	}
	d.pendingDeletion = true
	for ref, c := range ctx.controls {
		if ref.Device == deviceRef {
			c.pendingDeletion = true
		}
	}
	ctx.markFramebuffersDirty()
}

// FindDeviceForPersistentID linearly scans every registered device,
// including ones pending deletion, for one whose persistent identifier
// is byte-equal to id, returning the invalid
// DeviceRef (0) when none matches.
func (ctx *Context) FindDeviceForPersistentID(id PersistentID) DeviceRef {
	unlock := ctx.lock(ControlRef{})
	defer unlock()

	for ref, d := range ctx.devices {
		if d.descr.PersistentID == id {
			return ref
		}
	}
	return 0
}

// GetDeviceTrait returns the blob the database configured for
// (deviceRef, traitRef). The second return value is false if the device
// is unknown or does not carry that trait.
func (ctx *Context) GetDeviceTrait(deviceRef DeviceRef, traitRef DeviceTraitRef) ([]byte, bool) {
	unlock := ctx.lock(ControlRef{})
	defer unlock()

	d, ok := ctx.devices[deviceRef]
	if !ok {
		ctx.warnf("GetDeviceTrait: unknown device %d", deviceRef)
		return nil, false
	}
	blob, ok := d.traits[traitRef]
	if !ok {
		ctx.warnf("GetDeviceTrait: device %d has no trait %d", deviceRef, traitRef)
		return nil, false
	}
	return blob, true
}

// GetDeviceDescr copies out the descriptor for deviceRef.
func (ctx *Context) GetDeviceDescr(deviceRef DeviceRef) (DeviceDescr, bool) {
	unlock := ctx.lock(ControlRef{})
	defer unlock()

	d, ok := ctx.devices[deviceRef]
	if !ok {
		ctx.warnf("GetDeviceDescr: unknown device %d", deviceRef)
		return DeviceDescr{}, false
	}
	return d.descr, true
}

// DeviceTraits returns the trait refs configured for deviceRef, a
// diagnostic/introspection convenience not named by the distilled public
// interface but present in the original database-driven design (see
// DESIGN.md, supplemented features).
func (ctx *Context) DeviceTraits(deviceRef DeviceRef) []DeviceTraitRef {
	unlock := ctx.lock(ControlRef{})
	defer unlock()

	d, ok := ctx.devices[deviceRef]
	if !ok {
		return nil
	}
	traits := make([]DeviceTraitRef, 0, len(d.traits))
	for t := range d.traits {
		traits = append(traits, t)
	}
	return traits
}
