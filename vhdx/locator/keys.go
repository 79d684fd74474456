package locator

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Keys defined by the VHDX format for the parent locator type.
const (
	// KeyParentLinkage holds the parent's DataWriteGuid as braced GUID text.
	KeyParentLinkage = "parent_linkage"
	// KeyParentLinkage2 is an alternate linkage GUID some writers record.
	KeyParentLinkage2 = "parent_linkage2"
	// KeyRelativePath is the parent path relative to the child's directory.
	KeyRelativePath = "relative_path"
	// KeyVolumePath is the parent path using a volume GUID path.
	KeyVolumePath = "volume_path"
	// KeyAbsoluteWin32Path is the absolute drive-letter path of the parent.
	KeyAbsoluteWin32Path = "absolute_win32_path"
)

// pathKeys lists the path hints in the order a reader should try them.
var pathKeys = []string{KeyRelativePath, KeyVolumePath, KeyAbsoluteWin32Path}

// ParentLinkage parses the parent_linkage entry.
func (l *Locator) ParentLinkage() (uuid.UUID, error) {
	return l.guid(KeyParentLinkage)
}

// ParentLinkage2 parses the parent_linkage2 entry.
func (l *Locator) ParentLinkage2() (uuid.UUID, error) {
	return l.guid(KeyParentLinkage2)
}

// SetParentLinkage stores id under parent_linkage as {XXXXXXXX-XXXX-...}.
func (l *Locator) SetParentLinkage(id uuid.UUID) {
	l.Set(KeyParentLinkage, FormatLinkage(id))
}

// FormatLinkage formats id the way Hyper-V writes linkage values.
func FormatLinkage(id uuid.UUID) string {
	return "{" + strings.ToUpper(id.String()) + "}"
}

// ParentPaths returns the non-empty path hints in resolution order:
// relative_path, volume_path, absolute_win32_path.
func (l *Locator) ParentPaths() []string {
	var paths []string
	for _, k := range pathKeys {
		if v, ok := l.Get(k); ok && v != "" {
			paths = append(paths, v)
		}
	}
	return paths
}

func (l *Locator) guid(key string) (uuid.UUID, error) {
	v, ok := l.Get(key)
	if !ok {
		return uuid.Nil, fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s %q: %w", key, v, err)
	}
	return id, nil
}
