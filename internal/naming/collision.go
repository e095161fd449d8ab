package naming

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExistsFunc reports whether a path is already taken. Injecting it keeps
// collision resolution testable and lets the pipeline layer an in-run claim
// set over the plain filesystem check.
type ExistsFunc func(path string) bool

// FileExists is the default ExistsFunc backed by os.Stat.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// AvoidCollision returns target unchanged when it is free, otherwise the
// first " (1)", " (2)", ... variant (inserted before the extension) that
// exists reports free. It performs no filesystem writes; the check-then-act
// window up to the actual rename is the caller's to manage.
func AvoidCollision(target string, exists ExistsFunc) string {
	if !exists(target) {
		return target
	}
	dir := filepath.Dir(target)
	ext := filepath.Ext(target)
	stem := strings.TrimSuffix(filepath.Base(target), ext)
	for n := 1; ; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, n, ext))
		if !exists(candidate) {
			return candidate
		}
	}
}
