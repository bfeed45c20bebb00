// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package input

import (
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
)

// GUID is a 16-byte RFC 4122 identifier. It is opaque to the core; the
// core neither allocates nor serialises GUIDs beyond the utilities below.
type GUID [16]byte

// guidGroupLens are the hex-digit counts of the five dash-separated
// groups of a 36-char GUID string, and guidGroupByteReversed marks which groups
// are stored byte-reversed (the conventional Data1/Data2/Data3 layout)
// rather than verbatim (Data4).
var guidGroupLens = [5]int{8, 4, 4, 4, 12}
var guidGroupByteReversed = [5]bool{true, true, true, false, false}

// ParseGUID parses a 36-character dashed hex string (dashes at positions
// 8, 13, 18, 23) into a GUID. The first three groups are stored
// byte-reversed within the resulting 16 bytes; the last two groups are
// stored in the order they appear in the string.
func ParseGUID(s string) (GUID, error) {
	var g GUID
	if len(s) != 36 {
		return g, errors.Errorf("input: invalid guid length %d", len(s))
	}
	for _, i := range [4]int{8, 13, 18, 23} {
		if s[i] != '-' {
			return g, errors.Errorf("input: invalid guid separator at %d", i)
		}
	}
	groups := [5]string{s[0:8], s[9:13], s[14:18], s[19:23], s[24:36]}
	off := 0
	for gi, grp := range groups {
		raw, err := hex.DecodeString(grp)
		if err != nil {
			return g, errors.Wrap(err, "input: invalid guid hex digits")
		}
		n := guidGroupLens[gi] / 2
		if guidGroupByteReversed[gi] {
			for i := 0; i < n; i++ {
				g[off+i] = raw[n-1-i]
			}
		} else {
			copy(g[off:off+n], raw)
		}
		off += n
	}
	return g, nil
}

// String formats g back into the 36-character dashed form, inverting the
// byte reordering applied by ParseGUID.
func (g GUID) String() string {
	var groups [5][]byte
	off := 0
	for gi, glen := range guidGroupLens {
		n := glen / 2
		raw := make([]byte, n)
		if guidGroupByteReversed[gi] {
			for i := 0; i < n; i++ {
				raw[i] = g[off+n-1-i]
			}
		} else {
			copy(raw, g[off:off+n])
		}
		groups[gi] = raw
		off += n
	}
	return fmt.Sprintf("%s-%s-%s-%s-%s",
		hex.EncodeToString(groups[0]),
		hex.EncodeToString(groups[1]),
		hex.EncodeToString(groups[2]),
		hex.EncodeToString(groups[3]),
		hex.EncodeToString(groups[4]))
}
