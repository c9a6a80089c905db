package domain

import (
	"fmt"
	"strings"
)

// CredentialNotFoundError is returned when a credential id does not resolve.
type CredentialNotFoundError struct {
	ID string
}

func (e *CredentialNotFoundError) Error() string {
	return fmt.Sprintf("cannot find rancher2 credential '%s'", e.ID)
}

// UpstreamError carries a non-200 answer from the Rancher2 API.
type UpstreamError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s %s returned status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}

// MismatchError means at least one requested image has no container in the workload.
// Both lists are sorted.
type MismatchError struct {
	WorkloadImages []string
	DesiredImages  []string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf(
		"images do not match the workload: workload images [%s], requested images [%s]",
		strings.Join(e.WorkloadImages, ", "),
		strings.Join(e.DesiredImages, ", "),
	)
}

// Unmatched returns the requested image names missing from the workload.
func (e *MismatchError) Unmatched() []string {
	present := make(map[string]bool, len(e.WorkloadImages))
	for _, name := range e.WorkloadImages {
		present[name] = true
	}
	var unmatched []string
	for _, name := range e.DesiredImages {
		if !present[name] {
			unmatched = append(unmatched, name)
		}
	}
	return unmatched
}

// InvalidImagesError is returned for a malformed images list.
type InvalidImagesError struct {
	Images string
	Reason string
}

func (e *InvalidImagesError) Error() string {
	return fmt.Sprintf("invalid images '%s': %s", e.Images, e.Reason)
}

// DuplicateImageError is returned when two entries of an images list share an image name.
type DuplicateImageError struct {
	Name       string
	References []string
}

func (e *DuplicateImageError) Error() string {
	return fmt.Sprintf(
		"image '%s' is listed more than once (%s)",
		e.Name,
		strings.Join(e.References, ", "),
	)
}

// InvalidWorkloadPathError is returned for a workload path outside the project API.
type InvalidWorkloadPathError struct {
	Path   string
	Reason string
}

func (e *InvalidWorkloadPathError) Error() string {
	return fmt.Sprintf("invalid workload path '%s': %s", e.Path, e.Reason)
}
