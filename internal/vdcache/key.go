// Package vdcache memoizes vector drawable conversions behind a small
// LRU map keyed by a content fingerprint. The cache is purely an
// optimization: every result it returns is byte-identical to what the
// converter would produce.
package vdcache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/droidcast/droidcast/internal/vd"
)

// Key computes a deterministic fingerprint over the input text and the
// resolved option set. Struct JSON marshaling has a fixed field order,
// so equal inputs always produce equal keys and any change to either
// the text or an option value changes the key.
func Key(input string, opts vd.Options) string {
	canonical, err := json.Marshal(opts.Resolve())
	if err != nil {
		// Options contains only scalars; Marshal cannot fail.
		panic(err)
	}

	h := sha256.New()
	h.Write([]byte(input))
	h.Write([]byte{0}) // boundary between text and options
	h.Write(canonical)
	return hex.EncodeToString(h.Sum(nil))
}
