//go:build !debug
// +build !debug

package gravlens

func DebugLog(format string, args ...interface{})     {}
func DebugLogOnce(format string, args ...interface{}) {}
