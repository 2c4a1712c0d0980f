package state

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// SortField selects the secondary sort key. Directories always come first.
type SortField int

const (
	SortByName SortField = iota
	SortBySize
	SortByModified
)

var sortFieldNames = []string{"name", "size", "modified"}

func (f SortField) String() string {
	if int(f) < len(sortFieldNames) && f >= 0 {
		return sortFieldNames[f]
	}
	return "name"
}

// Next cycles name -> size -> modified -> name.
func (f SortField) Next() SortField {
	return (f + 1) % SortField(len(sortFieldNames))
}

// ParseSortField accepts "name", "size" or "modified".
func ParseSortField(s string) (SortField, error) {
	for i, name := range sortFieldNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return SortField(i), nil
		}
	}
	return SortByName, fmt.Errorf("unknown sort field %q", s)
}

// SortOrder applies to the secondary key only.
type SortOrder int

const (
	SortAsc SortOrder = iota
	SortDesc
)

func (o SortOrder) String() string {
	if o == SortDesc {
		return "desc"
	}
	return "asc"
}

// ParseSortOrder accepts "asc" or "desc".
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc":
		return SortAsc, nil
	case "desc":
		return SortDesc, nil
	}
	return SortAsc, fmt.Errorf("unknown sort order %q", s)
}

// ViewCriteria controls how a raw listing becomes the presented view.
type ViewCriteria struct {
	SortBy     SortField
	Order      SortOrder
	ShowHidden bool
	// SearchQuery keeps entries whose name contains it, ignoring case.
	SearchQuery string
	// ExtensionFilter keeps files whose extension equals it, ignoring case
	// and a leading dot. Directories are not affected.
	ExtensionFilter string
	// Pattern is a glob matched against the entry name.
	Pattern string
}

// Filtering reports whether any filter narrows the view.
func (c ViewCriteria) Filtering() bool {
	return strings.TrimSpace(c.SearchQuery) != "" || normalizeExtension(c.ExtensionFilter) != "" || c.Pattern != ""
}

// ApplyView sorts and filters entries. The input slice is not modified and
// the result does not share its backing array.
func ApplyView(entries []FileEntry, c ViewCriteria) []FileEntry {
	sorted := make([]FileEntry, len(entries))
	copy(sorted, entries)

	col := collate.New(language.Und)
	compareNames := func(a, b FileEntry) int {
		if r := col.CompareString(a.Name, b.Name); r != 0 {
			return r
		}
		return strings.Compare(a.Name, b.Name)
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.IsDir != b.IsDir {
			return a.IsDir
		}

		var r int
		switch c.SortBy {
		case SortBySize:
			r = compareInt64(a.Size, b.Size)
		case SortByModified:
			r = a.Modified.Compare(b.Modified)
		default:
			r = compareNames(a, b)
		}
		if c.Order == SortDesc {
			r = -r
		}
		if r != 0 {
			return r < 0
		}

		if c.SortBy != SortByName {
			if r = compareNames(a, b); r != 0 {
				return r < 0
			}
		}
		return a.FullPath < b.FullPath
	})

	match := newEntryMatcher(c)
	out := sorted[:0]
	for _, e := range sorted {
		if match(e) {
			out = append(out, e)
		}
	}
	return out
}

func newEntryMatcher(c ViewCriteria) func(FileEntry) bool {
	fold := cases.Fold()
	foldName := func(s string) string {
		return fold.String(norm.NFC.String(s))
	}

	query := foldName(strings.TrimSpace(c.SearchQuery))
	ext := normalizeExtension(c.ExtensionFilter)
	pattern := c.Pattern
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		pattern = ""
	}

	return func(e FileEntry) bool {
		if !c.ShowHidden && e.IsHidden() {
			return false
		}
		if query != "" && !strings.Contains(foldName(e.Name), query) {
			return false
		}
		if ext != "" && !e.IsDir && !strings.EqualFold(e.Extension, ext) {
			return false
		}
		if pattern != "" {
			if ok, _ := doublestar.Match(pattern, e.Name); !ok {
				return false
			}
		}
		return true
	}
}

func normalizeExtension(ext string) string {
	return strings.TrimPrefix(strings.TrimSpace(ext), ".")
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
