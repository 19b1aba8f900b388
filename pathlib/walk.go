package pathlib

import (
	"io/fs"
	"iter"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/joshyorko/rpms2sbom/common"
)

const PackageSuffix = ".rpm"

// Finder locates package files below Root. FS defaults to os.DirFS(Root).
type Finder struct {
	Root   string
	Suffix string
	FS     fs.FS
}

func NewFinder(root string) *Finder {
	return &Finder{
		Root:   root,
		Suffix: PackageSuffix,
	}
}

// Find lazily yields matching paths in lexical order. Entries that cannot be
// read are reported as warnings and skipped; unreadable directories are
// skipped as a whole.
func (it *Finder) Find() iter.Seq[string] {
	fsys := it.FS
	if fsys == nil {
		fsys = os.DirFS(it.Root)
	}
	suffix := it.Suffix
	if len(suffix) == 0 {
		suffix = PackageSuffix
	}
	return func(yield func(string) bool) {
		fs.WalkDir(fsys, ".", func(name string, entry fs.DirEntry, err error) error {
			if err != nil {
				common.Warning("Skipping %q during traversal: %v", it.location(name), err)
				if name == "." {
					return fs.SkipAll
				}
				return nil
			}
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), suffix) {
				return nil
			}
			if !yield(it.location(name)) {
				return fs.SkipAll
			}
			return nil
		})
	}
}

func (it *Finder) location(name string) string {
	if name == "." {
		return it.Root
	}
	return filepath.Join(it.Root, filepath.FromSlash(path.Clean(name)))
}

// Collect drains a Find sequence into a slice.
func (it *Finder) Collect() []string {
	result := make([]string, 0, 16)
	for found := range it.Find() {
		result = append(result, found)
	}
	return result
}
