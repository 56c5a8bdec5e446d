// Package rulebook holds the static reference data for the game — houses,
// subclass feature trees, backgrounds, heritages, metamagic, and the
// level-indexed progression tables — together with the pure calculator
// functions that derive values from them.
//
// Everything in this package is stateless. Out-of-domain character levels
// are clamped to [1, 20] by every level-indexed function; the clamp policy
// is applied uniformly so callers never see a partial table lookup.
package rulebook
