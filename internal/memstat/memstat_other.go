//go:build !linux && !windows

package memstat

import "fmt"

// rssKB reports that memory measurement is not implemented outside Linux
// and Windows.
func rssKB() (int64, error) {
	return 0, fmt.Errorf("memstat: memory usage measurement is not implemented for this platform")
}
