//go:build ndshape_debug

package shape

// debugAssertions enables extent and bit-count checks in constructors and
// compile-time shapes. Build with -tags ndshape_debug.
const debugAssertions = true
