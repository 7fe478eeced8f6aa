// Package vd converts Android VectorDrawable XML to SVG text.
//
// Convert is a deterministic pure function of its inputs. Callers that
// want memoization wrap it with the vdcache package; correctness never
// depends on the cache.
package vd

// DefaultPrecision is the number of fractional digits used for numeric
// output when no precision is requested.
const DefaultPrecision = 2

// Options controls the SVG output. The zero value is usable.
type Options struct {
	// Precision is the number of fractional digits for numeric
	// attribute output. Zero or negative means DefaultPrecision.
	Precision int `json:"precision"`

	// ForceBlackFill replaces every fill color with black.
	ForceBlackFill bool `json:"force_black_fill"`

	// XMLDeclaration prepends the standard XML declaration.
	XMLDeclaration bool `json:"xml_declaration"`

	// Tint overrides all fill colors with the given color. Takes
	// precedence over ForceBlackFill.
	Tint string `json:"tint"`
}

// Resolve returns o with defaults filled in. Cache keys are computed
// over resolved options so that an explicit default and an omitted
// value fingerprint identically.
func (o Options) Resolve() Options {
	if o.Precision <= 0 {
		o.Precision = DefaultPrecision
	}
	return o
}
