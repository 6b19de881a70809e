//go:build !ndshape_debug

package shape

// debugAssertions is off; build with -tags ndshape_debug to enable the checks.
const debugAssertions = false
