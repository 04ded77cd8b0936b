package pathguard

import (
	"errors"
	"fmt"
	"io/fs"
	"media-share/internal/core/domain"
	"os"
	"path"
	"path/filepath"
	"strings"
	"syscall"
)

// Guard resolves client supplied paths inside a fixed media root
type Guard struct {
	root string
}

// NewGuard creates a Guard. The root is made absolute and its symlinks are resolved once.
func NewGuard(root string) (*Guard, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve media root: %w", err)
	}
	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize media root: %w", err)
	}
	return &Guard{root: canonical}, nil
}

// Root returns the canonical media root
func (g *Guard) Root() string {
	return g.root
}

// Resolve resolves relative against the guard's root
func (g *Guard) Resolve(relative string) (string, error) {
	return Resolve(g.root, relative)
}

// Rel returns abs relative to the root, slash separated. The root itself is "".
func (g *Guard) Rel(abs string) (string, error) {
	if !contains(g.root, abs) {
		return "", domain.ErrPathUnsafe
	}
	rel, err := filepath.Rel(g.root, abs)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrPathUnsafe, err)
	}
	if rel == "." {
		return "", nil
	}
	return filepath.ToSlash(rel), nil
}

// Clean returns relative as Resolve joins it, lexically and without following symlinks:
// slash separated, "." and ".." applied, "" for the root.
func Clean(relative string) string {
	return strings.TrimPrefix(path.Clean("/"+filepath.ToSlash(relative)), "/")
}

// Resolve joins relative onto root, which must be absolute and canonical, and returns
// the canonical result. relative must already be percent-decoded.
//
// Returns domain.ErrPathUnsafe when the lexical or the symlink-resolved result leaves
// root, and domain.ErrNotFound when nothing exists at the resolved location.
func Resolve(root, relative string) (string, error) {
	root = filepath.Clean(root)

	// Join cleans, so ".." is fully applied and a leading "/" stays under root.
	joined := filepath.Join(root, filepath.FromSlash(relative))
	if !contains(root, joined) {
		return "", domain.ErrPathUnsafe
	}

	canonical, err := filepath.EvalSymlinks(joined)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return "", fmt.Errorf("%w: %s", domain.ErrNotFound, relative)
		}
		return "", fmt.Errorf("failed to canonicalize path: %w", err)
	}

	if !contains(root, canonical) {
		return "", domain.ErrPathUnsafe
	}

	return canonical, nil
}

// contains reports whether target is root or lies below it. The separator check keeps
// "/media-private" from matching "/media".
func contains(root, target string) bool {
	if target == root {
		return true
	}
	prefix := root
	if !strings.HasSuffix(prefix, string(os.PathSeparator)) {
		prefix += string(os.PathSeparator)
	}
	return strings.HasPrefix(target, prefix)
}
