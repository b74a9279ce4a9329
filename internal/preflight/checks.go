package preflight

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"

	"lyricpro/internal/failure"
	"lyricpro/internal/history"
	"lyricpro/internal/style"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckWritableParent verifies that path could be created: its nearest
// existing ancestor must be a writable directory.
func CheckWritableParent(name, path string) Result {
	dir := filepath.Dir(path)
	for {
		if _, err := os.Stat(dir); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	result := CheckDirectoryAccess(name, dir)
	if result.Passed && dir != filepath.Dir(path) {
		result.Detail = fmt.Sprintf("%s (will be created under %s)", filepath.Dir(path), dir)
	}
	return result
}

// CheckTemplate verifies the template document is readable and carries a
// styled text element.
func CheckTemplate(path string) Result {
	const name = "Template"

	path = strings.TrimSpace(path)
	if path == "" {
		return Result{Name: name, Detail: "not configured (set paths.template or LYRICPRO_TEMPLATE)"}
	}
	if err := unix.Access(path, unix.R_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: not readable: %v)", path, err)}
	}
	_, tmpl, err := style.LoadFile(path)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %s: %v)", path, failure.Kind(err), err)}
	}
	return Result{
		Name:   name,
		Passed: true,
		Detail: fmt.Sprintf("%s (%s %gpt, %s)", path, tmpl.Font.DisplayName(), tmpl.Font.Size, tmpl.Alignment),
	}
}

// CheckHistory verifies the history database opens and can be queried.
func CheckHistory(ctx context.Context, path string) Result {
	const name = "History database"

	store, err := history.Open(path)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	defer store.Close()

	entries, err := store.List(ctx, 1)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	if len(entries) == 0 {
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (empty)", path)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (last run %s)", path, entries[0].CreatedAt.Local().Format("2006-01-02 15:04"))}
}
