//go:build android

package rtltcp

// isAndroidPlatform is true only on the Android build, where Stop must
// prepend the 0x7e exit sentinel.
const isAndroidPlatform = true
