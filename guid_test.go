// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package input

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseGUID(t *testing.T) {
	g, err := ParseGUID("d8c9e8d6-9fca-4177-a288-29d4eefd893d")
	require.NoError(t, err)
	want := GUID{
		0xd6, 0xe8, 0xc9, 0xd8,
		0xca, 0x9f,
		0x77, 0x41,
		0xa2, 0x88,
		0x29, 0xd4, 0xee, 0xfd, 0x89, 0x3d,
	}
	require.Equal(t, want, g)
}

func TestGUIDRoundTrip(t *testing.T) {
	const s = "d8c9e8d6-9fca-4177-a288-29d4eefd893d"
	g, err := ParseGUID(s)
	require.NoError(t, err)
	require.Equal(t, s, g.String())
}

func TestParseGUIDInvalid(t *testing.T) {
	cases := []string{
		"",
		"not-a-guid",
		"d8c9e8d6-9fca-4177-a288-29d4eefd893",
		"d8c9e8d69fca4177a28829d4eefd893d",
		"zzzzzzzz-9fca-4177-a288-29d4eefd893d",
	}
	for _, s := range cases {
		_, err := ParseGUID(s)
		require.Error(t, err, "ParseGUID(%q)", s)
	}
}
