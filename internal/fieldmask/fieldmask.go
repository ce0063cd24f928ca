// Package fieldmask implements read-mask filtering (AIP-157) and update-mask
// validation (AIP-134) over the hand-maintained pb structs. Responses are
// built in full and pruned afterwards; the identifier field always survives.
package fieldmask

import (
	"strings"

	"google.golang.org/protobuf/types/known/fieldmaskpb"

	"github.com/macosusesdk/automationd/internal/apierr"
)

// ReadAll reports whether the mask requests every field: nil, empty, or
// containing "*".
func ReadAll(mask *fieldmaskpb.FieldMask) bool {
	if mask == nil || len(mask.GetPaths()) == 0 {
		return true
	}
	for _, p := range mask.GetPaths() {
		if p == "*" {
			return true
		}
	}
	return false
}

// Keep is the set of top-level response fields to retain. Unknown paths in
// read masks are ignored silently; only the first path segment matters for
// these flat resources.
type Keep map[string]bool

// NewKeep builds the keep set from a non-ReadAll mask plus the identifier
// field, which is returned unconditionally.
func NewKeep(mask *fieldmaskpb.FieldMask, idField string) Keep {
	k := Keep{idField: true}
	for _, p := range mask.GetPaths() {
		if i := strings.IndexByte(p, '.'); i >= 0 {
			p = p[:i]
		}
		if p != "" {
			k[p] = true
		}
	}
	return k
}

// Has reports whether field survives the mask.
func (k Keep) Has(field string) bool { return k[field] }

// IsFullReplace reports whether an update mask means full replacement: all
// mutable fields, including clearance via zero values.
func IsFullReplace(mask *fieldmaskpb.FieldMask) bool {
	return mask == nil || len(mask.GetPaths()) == 0
}

// ValidateUpdate rejects update-mask paths outside the allowed set.
func ValidateUpdate(mask *fieldmaskpb.FieldMask, allowed map[string]bool) error {
	for _, p := range mask.GetPaths() {
		if !allowed[p] {
			return apierr.InvalidArgument(apierr.ReasonInvalidUpdateMask,
				"unknown update mask path: "+p,
				map[string]string{"path": p})
		}
	}
	return nil
}
