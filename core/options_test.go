package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lowerbound/core"
)

func TestParseModes(t *testing.T) {
	cases := []struct {
		in   []string
		want core.Mode
	}{
		{nil, core.AllModes},
		{[]string{"walk"}, core.Walk},
		{[]string{"WALK", " transit "}, core.Walk | core.Transit},
		{[]string{"bike", "car"}, core.Bicycle | core.Car},
		{[]string{"all"}, core.AllModes},
	}
	for _, tc := range cases {
		got, err := core.ParseModes(tc.in)
		require.NoError(t, err, "%v", tc.in)
		require.Equal(t, tc.want, got, "%v", tc.in)
	}

	_, err := core.ParseModes([]string{"walk", "hovercraft"})
	require.ErrorIs(t, err, core.ErrUnknownMode)
}

func TestModeString(t *testing.T) {
	require.Equal(t, "walk,transit", (core.Walk | core.Transit).String())
	require.Equal(t, "none", core.Mode(0).String())
	require.Equal(t, "walk,bicycle,car,transit", core.AllModes.String())
}

func TestModeAllows(t *testing.T) {
	require.True(t, (core.Walk | core.Car).Allows(core.Car))
	require.False(t, core.Walk.Allows(core.Car|core.Transit))
}

func TestTraverseOptionsModesAndSpeed(t *testing.T) {
	opts := core.DefaultTraverseOptions()
	require.False(t, opts.ArriveBy)
	require.Equal(t, core.AllModes, opts.AllowedModes())
	require.Equal(t, core.DefaultCarSpeed, opts.MaxSpeed())

	opts.Modes = core.Walk
	require.Equal(t, core.DefaultWalkSpeed, opts.MaxSpeed())

	opts.Modes = core.Walk | core.Transit
	require.Equal(t, core.DefaultTransitSpeed, opts.MaxSpeed())

	var zero core.TraverseOptions
	require.Equal(t, core.AllModes, zero.AllowedModes(), "zero Modes means every mode")
	require.Equal(t, 0.0, zero.MaxSpeed())
}
