//go:build !android

package rtltcp

// isAndroidPlatform is false for every target except the Android build,
// where android_exit.go shadows this with true.
const isAndroidPlatform = false
