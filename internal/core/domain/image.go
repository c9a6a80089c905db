package domain

import (
	"sort"
	"strings"
)

const imageListSeparator = ";"

// ImageName returns the part of an image reference before the last colon.
// References without a colon are returned unchanged.
func ImageName(reference string) string {
	index := strings.LastIndex(reference, ":")
	if index < 0 {
		return reference
	}
	return reference[:index]
}

// DesiredImageSet maps an image name to its full replacement reference.
type DesiredImageSet map[string]string

// Names returns the image names in sorted order.
func (d DesiredImageSet) Names() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseDesiredImages parses a semicolon separated list of name:tag references.
// A blank list yields an empty set. Empty entries and repeated image names are rejected.
func ParseDesiredImages(images string) (DesiredImageSet, error) {
	desired := DesiredImageSet{}
	if strings.TrimSpace(images) == "" {
		return desired, nil
	}

	seen := make(map[string][]string)
	for _, reference := range strings.Split(images, imageListSeparator) {
		reference = strings.TrimSpace(reference)
		if reference == "" {
			return nil, &InvalidImagesError{Images: images, Reason: "redundant semicolon"}
		}
		name := ImageName(reference)
		seen[name] = append(seen[name], reference)
		desired[name] = reference
	}

	for _, name := range desired.Names() {
		if references := seen[name]; len(references) > 1 {
			return nil, &DuplicateImageError{Name: name, References: references}
		}
	}

	return desired, nil
}
