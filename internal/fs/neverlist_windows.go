//go:build windows

package fs

import "golang.org/x/sys/windows"

// protectedAttrs marks compatibility junctions such as "Application Data"
// that Explorer never shows.
const protectedAttrs = windows.FILE_ATTRIBUTE_SYSTEM | windows.FILE_ATTRIBUTE_REPARSE_POINT

// neverListed reports entries kept out of every panel. An entry whose
// attributes cannot be read is listed.
func neverListed(fullPath string) bool {
	if fullPath == "" {
		return false
	}
	ptr, err := windows.UTF16PtrFromString(fullPath)
	if err != nil {
		return false
	}
	attrs, err := windows.GetFileAttributes(ptr)
	if err != nil {
		return false
	}
	return attrs&protectedAttrs == protectedAttrs
}
