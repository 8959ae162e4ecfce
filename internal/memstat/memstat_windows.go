//go:build windows

package memstat

import (
	"fmt"
	"syscall"
	"unsafe"
)

// processMemoryCounters mirrors the fields of Windows'
// PROCESS_MEMORY_COUNTERS that GetProcessMemoryInfo fills in; only
// WorkingSetSize is used.
type processMemoryCounters struct {
	cb                         uint32
	PageFaultCount             uint32
	PeakWorkingSetSize         uintptr
	WorkingSetSize             uintptr
	QuotaPeakPagedPoolUsage    uintptr
	QuotaPagedPoolUsage        uintptr
	QuotaPeakNonPagedPoolUsage uintptr
	QuotaNonPagedPoolUsage     uintptr
	PagefileUsage              uintptr
	PeakPagefileUsage          uintptr
}

var (
	modpsapi                 = syscall.NewLazyDLL("psapi.dll")
	procGetProcessMemoryInfo = modpsapi.NewProc("GetProcessMemoryInfo")
	procGetCurrentProcess    = syscall.NewLazyDLL("kernel32.dll").NewProc("GetCurrentProcess")
)

// rssKB returns GetProcessMemoryInfo's WorkingSetSize, converted from
// bytes to KB.
func rssKB() (int64, error) {
	handle, _, _ := procGetCurrentProcess.Call()

	var pmc processMemoryCounters
	pmc.cb = uint32(unsafe.Sizeof(pmc))

	ret, _, err := procGetProcessMemoryInfo.Call(
		handle,
		uintptr(unsafe.Pointer(&pmc)),
		uintptr(pmc.cb),
	)
	if ret == 0 {
		return 0, fmt.Errorf("memstat: GetProcessMemoryInfo failed: %w", err)
	}
	return int64(pmc.WorkingSetSize) / 1024, nil
}
