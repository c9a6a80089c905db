package core

import (
	"time"

	"redeploy/internal/core/domain"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/util/sets"
)

// ImageChange records one container image that was replaced.
type ImageChange struct {
	Container int
	OldImage  string
	NewImage  string
}

type PatchResult struct {
	Document *domain.WorkloadDocument
	Matched  []string
	Changes  []ImageChange
}

// WorkloadPatcher rewrites the container images of a workload.
type WorkloadPatcher struct {
	now func() time.Time
}

func ProvideWorkloadPatcher() *WorkloadPatcher {
	return NewWorkloadPatcher(time.Now)
}

func NewWorkloadPatcher(now func() time.Time) *WorkloadPatcher {
	return &WorkloadPatcher{now: now}
}

// Patch returns a copy of document ready to be submitted: server-only fields are removed,
// the redeploy timestamp annotation is refreshed, and every container whose image name is
// in desired gets the desired reference. document itself is not modified.
//
// Unless every desired image name matches at least one container, a *domain.MismatchError
// is returned and no document.
func (p *WorkloadPatcher) Patch(
	document *domain.WorkloadDocument,
	desired domain.DesiredImageSet,
	alwaysPull bool,
) (*PatchResult, error) {
	patched := document.DeepCopy()
	patched.Actions = nil
	patched.Links = nil

	if patched.Annotations == nil {
		patched.Annotations = map[string]string{}
	}
	patched.Annotations[domain.TimestampAnnotation] = p.now().UTC().Format(domain.TimestampLayout)

	workloadImages := sets.New[string]()
	matched := sets.New[string]()
	var changes []ImageChange
	for i := range patched.Containers {
		container := &patched.Containers[i]
		if container.Image == nil {
			continue
		}
		oldImage := *container.Image
		name := domain.ImageName(oldImage)
		workloadImages.Insert(name)

		newImage, ok := desired[name]
		if !ok {
			continue
		}
		container.Image = &newImage
		if alwaysPull {
			policy := string(corev1.PullAlways)
			container.ImagePullPolicy = &policy
		}
		matched.Insert(name)
		changes = append(changes, ImageChange{Container: i, OldImage: oldImage, NewImage: newImage})
	}

	if matched.Len() != len(desired) {
		return nil, &domain.MismatchError{
			WorkloadImages: sets.List(workloadImages),
			DesiredImages:  desired.Names(),
		}
	}

	return &PatchResult{
		Document: patched,
		Matched:  sets.List(matched),
		Changes:  changes,
	}, nil
}
