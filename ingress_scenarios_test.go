// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package input_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gviegas/input"
	"github.com/gviegas/input/internal/testdb"
)

func ts(v uint64) input.Timestamp { return input.Timestamp{Value: v} }

// Scenarios 1-3 follow a single space-bar key across a button pulse, its
// release, and a cross-control ingress via its virtual one-way-axis
// companion.
func TestScenarioButtonPulseReleaseAndCrossControl(t *testing.T) {
	ctx, types := newTestContext(t, 1)
	dev := ctx.InstantiateDevice(testdb.KeyboardGUID, input.PersistentID{})
	spaceRef := input.ControlRef{Usage: testdb.KeyUsage(testdb.KeySpace), Device: dev}
	axisRef := input.ControlRef{Usage: testdb.KeyUsage(testdb.KeySpace).Virtual(1), Device: dev}

	// Scenario 1: single button pulse.
	input.Ingress[input.ButtonSample, input.ButtonState](ctx, types.Button, spaceRef, []input.Timestamp{ts(0)}, []input.ButtonSample{input.ButtonPressed})

	state, sample, ok := input.ControlState[input.ButtonSample, input.ButtonState](ctx, spaceRef, 0)
	require.True(t, ok)
	require.False(t, sample.IsPressed())
	require.False(t, state.WasPressedThisIOFrame)

	ctx.SwapFramebuffer(0)

	state, sample, ok = input.ControlState[input.ButtonSample, input.ButtonState](ctx, spaceRef, 0)
	require.True(t, ok)
	require.True(t, sample.IsPressed())
	require.True(t, state.WasPressedThisIOFrame)
	require.False(t, state.WasReleasedThisIOFrame)

	_, axisSample, ok := input.ControlState[input.AxisOneWaySample, input.AxisOneWayState](ctx, axisRef, 0)
	require.True(t, ok)
	require.Equal(t, input.AxisOneWaySample(1.0), axisSample)

	ctx.SwapFramebuffer(0)
	state, sample, ok = input.ControlState[input.ButtonSample, input.ButtonState](ctx, spaceRef, 0)
	require.True(t, ok)
	require.True(t, sample.IsPressed())
	require.False(t, state.WasPressedThisIOFrame)

	// Scenario 2: release transition.
	input.Ingress[input.ButtonSample, input.ButtonState](ctx, types.Button, spaceRef, []input.Timestamp{ts(1)}, []input.ButtonSample{input.ButtonReleased})
	ctx.SwapFramebuffer(0)

	state, sample, ok = input.ControlState[input.ButtonSample, input.ButtonState](ctx, spaceRef, 0)
	require.True(t, ok)
	require.False(t, sample.IsPressed())
	require.True(t, state.WasReleasedThisIOFrame)

	// Scenario 3: cross-control ingress via the one-way-axis companion.
	input.Ingress[input.AxisOneWaySample, input.AxisOneWayState](ctx, types.AxisOneWay, axisRef, []input.Timestamp{ts(2)}, []input.AxisOneWaySample{1.0})
	ctx.SwapFramebuffer(0)

	state, sample, ok = input.ControlState[input.ButtonSample, input.ButtonState](ctx, spaceRef, 0)
	require.True(t, ok)
	require.True(t, sample.IsPressed())
	require.True(t, state.WasPressedThisIOFrame)
}

// Scenario 4: coalescing recording under AllMerged.
func TestScenarioCoalescingRecording(t *testing.T) {
	ctx, types := newTestContext(t, 1)
	dev := ctx.InstantiateDevice(testdb.KeyboardGUID, input.PersistentID{})
	ref := input.ControlRef{Usage: testdb.KeyUsage(testdb.KeyA), Device: dev}
	ctx.SetRecordingMode(ref, input.AllMerged)

	timestamps := make([]input.Timestamp, 10)
	samples := make([]input.ButtonSample, 10)
	for i := 0; i < 10; i++ {
		timestamps[i] = ts(uint64(i))
		if i%3 != 0 {
			samples[i] = input.ButtonPressed
		} else {
			samples[i] = input.ButtonReleased
		}
	}
	input.Ingress[input.ButtonSample, input.ButtonState](ctx, types.Button, ref, timestamps, samples)
	ctx.SwapFramebuffer(0)

	gotTs, gotSamples, ok := input.ControlRecordings[input.ButtonSample, input.ButtonState](ctx, ref, 0)
	require.True(t, ok)

	wantTsValues := []uint64{0, 1, 3, 4, 6, 7, 9}
	require.Len(t, gotTs, len(wantTsValues))
	for i, v := range wantTsValues {
		require.Equal(t, v, gotTs[i].Value, "timestamp %d", i)
	}
	wantSamples := []input.ButtonSample{
		input.ButtonReleased, input.ButtonPressed, input.ButtonReleased, input.ButtonPressed,
		input.ButtonReleased, input.ButtonPressed, input.ButtonReleased,
	}
	require.Equal(t, wantSamples, gotSamples)
}

// Scenario 5: mouse scroll under all four recording modes.
func TestScenarioMouseScrollModes(t *testing.T) {
	pattern := func() ([]input.Timestamp, []input.DeltaVector2DSample) {
		timestamps := make([]input.Timestamp, 10)
		samples := make([]input.DeltaVector2DSample, 10)
		for i := 0; i < 10; i++ {
			timestamps[i] = ts(uint64(i))
			if i%3 != 0 {
				samples[i] = input.DeltaVector2DSample{Y: 1}
			} else {
				samples[i] = input.DeltaVector2DSample{Y: -1}
			}
		}
		return timestamps, samples
	}

	run := func(t *testing.T, mode input.RecordingMode) (*input.Context, input.ControlRef, input.DeviceRef) {
		ctx, types := newTestContext(t, 1)
		dev := ctx.InstantiateDevice(testdb.MouseGUID, input.PersistentID{})
		scrollRef := input.ControlRef{Usage: testdb.MouseScrollUsage(), Device: dev}
		ctx.SetRecordingMode(scrollRef, mode)
		timestamps, samples := pattern()
		input.Ingress[input.DeltaVector2DSample, input.DeltaVector2DState](ctx, types.DeltaVector2D, scrollRef, timestamps, samples)
		ctx.SwapFramebuffer(0)
		return ctx, scrollRef, dev
	}

	t.Run("Disabled", func(t *testing.T) {
		ctx, scrollRef, dev := run(t, input.Disabled)
		_, sample, ok := input.ControlState[input.DeltaVector2DSample, input.DeltaVector2DState](ctx, scrollRef, 0)
		require.True(t, ok)
		require.Equal(t, float32(0), sample.Y)

		upRef := input.ControlRef{Usage: testdb.MouseScrollUsage().Virtual(5), Device: dev}
		upState, _, ok := input.ControlState[input.ButtonSample, input.ButtonState](ctx, upRef, 0)
		require.True(t, ok)
		require.False(t, upState.WasPressedThisIOFrame)
		require.False(t, upState.WasReleasedThisIOFrame)
	})

	modeNames := map[input.RecordingMode]string{input.LatestOnly: "LatestOnly", input.AllMerged: "AllMerged"}
	for _, mode := range []input.RecordingMode{input.LatestOnly, input.AllMerged} {
		mode := mode
		t.Run(modeNames[mode], func(t *testing.T) {
			ctx, scrollRef, dev := run(t, mode)
			_, sample, ok := input.ControlState[input.DeltaVector2DSample, input.DeltaVector2DState](ctx, scrollRef, 0)
			require.True(t, ok)
			latestTs, ok := input.ControlLatestTimestamp[input.DeltaVector2DSample, input.DeltaVector2DState](ctx, scrollRef, 0)
			require.True(t, ok)
			require.Equal(t, uint64(9), latestTs.Value)
			require.Equal(t, float32(2), sample.Y)

			upRef := input.ControlRef{Usage: testdb.MouseScrollUsage().Virtual(5), Device: dev}
			downRef := input.ControlRef{Usage: testdb.MouseScrollUsage().Virtual(6), Device: dev}
			upState, _, ok := input.ControlState[input.ButtonSample, input.ButtonState](ctx, upRef, 0)
			require.True(t, ok)
			require.True(t, upState.WasPressedThisIOFrame)
			require.True(t, upState.WasReleasedThisIOFrame)
			downState, _, ok := input.ControlState[input.ButtonSample, input.ButtonState](ctx, downRef, 0)
			require.True(t, ok)
			require.True(t, downState.WasPressedThisIOFrame)
			require.True(t, downState.WasReleasedThisIOFrame)

			// A follow-up swap with no ingress re-zeroes the delta.
			ctx.SwapFramebuffer(0)
			_, sample, ok = input.ControlState[input.DeltaVector2DSample, input.DeltaVector2DState](ctx, scrollRef, 0)
			require.True(t, ok)
			require.Equal(t, float32(0), sample.Y)
		})
	}

	t.Run("AllAsIs", func(t *testing.T) {
		ctx, scrollRef, _ := run(t, input.AllAsIs)
		_, sample, ok := input.ControlState[input.DeltaVector2DSample, input.DeltaVector2DState](ctx, scrollRef, 0)
		require.True(t, ok)
		latestTs, ok := input.ControlLatestTimestamp[input.DeltaVector2DSample, input.DeltaVector2DState](ctx, scrollRef, 0)
		require.True(t, ok)
		require.Equal(t, uint64(9), latestTs.Value)
		require.Equal(t, float32(-1), sample.Y)
	})
}
