// Package repo creates the on-disk repository skeleton read by the object
// database.
package repo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/agenthands/gitcat/pkg/core"
)

const DefaultBranch = "main"

// Layout names the paths of a repository rooted at Dir.
type Layout struct {
	Dir string
}

func (l Layout) ObjectsDir() string { return filepath.Join(l.Dir, "objects") }
func (l Layout) RefsDir() string    { return filepath.Join(l.Dir, "refs") }
func (l Layout) HeadFile() string   { return filepath.Join(l.Dir, "HEAD") }

// InitResult reports what Init did.
type InitResult struct {
	Layout        Layout
	Reinitialized bool // HEAD already existed and was left untouched
}

// Init creates dir, its objects and refs directories, and a HEAD pointing
// at refs/heads/<branch>. Existing directories are kept; an existing HEAD is
// not overwritten.
func Init(dir, branch string) (InitResult, error) {
	if dir == "" {
		return InitResult{}, fmt.Errorf("%w: repository directory not specified", core.ErrInvalidInput)
	}
	if branch == "" {
		branch = DefaultBranch
	}
	if err := checkBranch(branch); err != nil {
		return InitResult{}, err
	}

	l := Layout{Dir: dir}
	for _, d := range []string{l.Dir, l.ObjectsDir(), l.RefsDir()} {
		if err := os.MkdirAll(d, 0755); err != nil {
			return InitResult{}, fmt.Errorf("failed to create %s: %w", d, err)
		}
	}

	head := fmt.Sprintf("ref: refs/heads/%s\n", branch)
	f, err := os.OpenFile(l.HeadFile(), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return InitResult{Layout: l, Reinitialized: true}, nil
		}
		return InitResult{}, fmt.Errorf("failed to create HEAD: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(head); err != nil {
		return InitResult{}, fmt.Errorf("failed to write HEAD: %w", err)
	}
	if err := f.Close(); err != nil {
		return InitResult{}, fmt.Errorf("failed to write HEAD: %w", err)
	}

	return InitResult{Layout: l}, nil
}

func checkBranch(branch string) error {
	if strings.ContainsAny(branch, " \t\n\x00~^:?*[\\") ||
		strings.HasPrefix(branch, "/") || strings.HasSuffix(branch, "/") ||
		strings.Contains(branch, "..") {
		return fmt.Errorf("%w: invalid branch name %q", core.ErrInvalidInput, branch)
	}
	return nil
}
