//go:build linux

package memstat

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// rssKB reads VmRSS out of /proc/self/status.
func rssKB() (int64, error) {
	f, err := os.Open("/proc/self/status")
	if err != nil {
		return 0, fmt.Errorf("memstat: opening /proc/self/status: %w", err)
	}
	defer f.Close()

	s := bufio.NewScanner(f)
	for s.Scan() {
		line := s.Text()
		if !strings.HasPrefix(line, "VmRSS:") {
			continue
		}
		fields := strings.Fields(strings.TrimPrefix(line, "VmRSS:"))
		if len(fields) == 0 {
			return 0, fmt.Errorf("memstat: malformed VmRSS line %q", line)
		}
		kb, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("memstat: parsing VmRSS value: %w", err)
		}
		return kb, nil
	}
	if err := s.Err(); err != nil {
		return 0, fmt.Errorf("memstat: reading /proc/self/status: %w", err)
	}
	return 0, fmt.Errorf("memstat: VmRSS not found in /proc/self/status")
}
