// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package input_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gviegas/input"
	"github.com/gviegas/input/internal/testdb"
)

func newTestContext(t *testing.T, framebuffers int) (*input.Context, input.BuiltinTypes) {
	t.Helper()
	ctx := input.New()
	types := input.RegisterBuiltinControlTypes(ctx)
	ctx.SetDatabaseCallbacks(testdb.New(types))
	require.NoError(t, ctx.Init(framebuffers))
	t.Cleanup(func() { _ = ctx.Deinit() })
	return ctx, types
}

func TestInitRejectsDoubleInit(t *testing.T) {
	ctx, _ := newTestContext(t, 1)
	require.ErrorIs(t, ctx.Init(1), input.ErrAlreadyInit)
}

func TestInitRejectsBadFramebufferCount(t *testing.T) {
	ctx := input.New()
	ctx.SetDatabaseCallbacks(testdb.New(input.RegisterBuiltinControlTypes(ctx)))
	require.ErrorIs(t, ctx.Init(0), input.ErrInvalidFramebuffers)
}

func TestInitRejectsMissingDatabase(t *testing.T) {
	ctx := input.New()
	err := ctx.Init(1)
	require.ErrorIs(t, err, input.ErrNoDatabase)
}

func TestInstantiateDeviceCreatesControls(t *testing.T) {
	ctx, _ := newTestContext(t, 1)
	dev := ctx.InstantiateDevice(testdb.KeyboardGUID, input.PersistentID{})
	require.NotZero(t, dev)

	descr, ok := ctx.GetDeviceDescr(dev)
	require.True(t, ok)
	require.Equal(t, testdb.KeyboardGUID, descr.GUID)

	spaceRef := input.ControlRef{Usage: testdb.KeyUsage(testdb.KeySpace), Device: dev}
	_, _, ok = input.ControlState[input.ButtonSample, input.ButtonState](ctx, spaceRef, 0)
	require.True(t, ok)
}

func TestFindDeviceForPersistentID(t *testing.T) {
	ctx, _ := newTestContext(t, 1)
	var id input.PersistentID
	copy(id[:], "keyboard-0")
	dev := ctx.InstantiateDevice(testdb.KeyboardGUID, id)
	require.Equal(t, dev, ctx.FindDeviceForPersistentID(id))

	var otherID input.PersistentID
	copy(otherID[:], "nonexistent")
	require.Zero(t, ctx.FindDeviceForPersistentID(otherID))
}

func TestRemoveDeviceHidesDeviceAfterSwap(t *testing.T) {
	ctx, _ := newTestContext(t, 1)
	dev := ctx.InstantiateDevice(testdb.KeyboardGUID, input.PersistentID{})
	ctx.SwapFramebuffer(0)
	require.True(t, ctx.IsDeviceVisible(dev, 0))

	ctx.RemoveDevice(dev)
	// Visibility reflects the last swap until the next one.
	require.True(t, ctx.IsDeviceVisible(dev, 0))

	ctx.SwapFramebuffer(0)
	require.False(t, ctx.IsDeviceVisible(dev, 0))
}
