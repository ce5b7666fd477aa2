//go:build !unix

package main

// maxRSS is unavailable on this platform.
func maxRSS() uint64 { return 0 }
