package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	TimestampAnnotation = "cattle.io/timestamp"
	TimestampLayout     = "2006-01-02T15:04:05Z"

	legacyProjectPrefix = "/p/"
)

// WorkloadDocument is a Rancher2 workload as returned by the project API.
// Fields this tool does not edit are kept in Fields and written back verbatim.
type WorkloadDocument struct {
	Containers  []WorkloadContainer
	Annotations map[string]string
	Actions     json.RawMessage
	Links       json.RawMessage
	Fields      map[string]json.RawMessage
}

// WorkloadContainer is one entry of a workload's containers list.
// Image and ImagePullPolicy are nil when absent or not a string.
type WorkloadContainer struct {
	Image           *string
	ImagePullPolicy *string
	Fields          map[string]json.RawMessage
}

func (w *WorkloadDocument) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	if fields == nil {
		return fmt.Errorf("workload document is not a JSON object")
	}

	*w = WorkloadDocument{}
	if raw, ok := fields["containers"]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &w.Containers); err != nil {
			return fmt.Errorf("failed to parse containers: %w", err)
		}
		delete(fields, "containers")
	}
	if raw, ok := fields["annotations"]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &w.Annotations); err != nil {
			return fmt.Errorf("failed to parse annotations: %w", err)
		}
		delete(fields, "annotations")
	}
	if raw, ok := fields["actions"]; ok {
		w.Actions = raw
		delete(fields, "actions")
	}
	if raw, ok := fields["links"]; ok {
		w.Links = raw
		delete(fields, "links")
	}
	w.Fields = fields
	return nil
}

func (w WorkloadDocument) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(w.Fields)+4)
	for key, value := range w.Fields {
		out[key] = value
	}
	if w.Containers != nil {
		out["containers"] = w.Containers
	}
	if w.Annotations != nil {
		out["annotations"] = w.Annotations
	}
	if w.Actions != nil {
		out["actions"] = w.Actions
	}
	if w.Links != nil {
		out["links"] = w.Links
	}
	return json.Marshal(out)
}

func (c *WorkloadContainer) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*c = WorkloadContainer{}
	c.Image = takeString(fields, "image")
	c.ImagePullPolicy = takeString(fields, "imagePullPolicy")
	c.Fields = fields
	return nil
}

func (c WorkloadContainer) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(c.Fields)+2)
	for key, value := range c.Fields {
		out[key] = value
	}
	if c.Image != nil {
		out["image"] = *c.Image
	}
	if c.ImagePullPolicy != nil {
		out["imagePullPolicy"] = *c.ImagePullPolicy
	}
	return json.Marshal(out)
}

// DeepCopy returns a copy that shares no maps, slices or pointers with w.
// Raw JSON values are never modified in place and are shared.
func (w *WorkloadDocument) DeepCopy() *WorkloadDocument {
	out := &WorkloadDocument{
		Actions: w.Actions,
		Links:   w.Links,
		Fields:  copyFields(w.Fields),
	}
	if w.Containers != nil {
		out.Containers = make([]WorkloadContainer, len(w.Containers))
		for i, container := range w.Containers {
			out.Containers[i] = container.DeepCopy()
		}
	}
	if w.Annotations != nil {
		out.Annotations = make(map[string]string, len(w.Annotations))
		for key, value := range w.Annotations {
			out.Annotations[key] = value
		}
	}
	return out
}

func (c WorkloadContainer) DeepCopy() WorkloadContainer {
	return WorkloadContainer{
		Image:           copyString(c.Image),
		ImagePullPolicy: copyString(c.ImagePullPolicy),
		Fields:          copyFields(c.Fields),
	}
}

// ValidateWorkloadPath checks that the path addresses a workload of the project API.
func ValidateWorkloadPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return &InvalidWorkloadPathError{Path: path, Reason: "workload path is required"}
	}
	if !strings.HasPrefix(path, "/project") && !strings.HasPrefix(path, legacyProjectPrefix) {
		return &InvalidWorkloadPathError{Path: path, Reason: "must start with /project or /p/"}
	}
	return nil
}

// NormalizeWorkloadPath rewrites UI style paths (/p/<project>/workload/<id>)
// to their API form (/project/<project>/workloads/<id>).
func NormalizeWorkloadPath(path string) string {
	path = strings.TrimSpace(path)
	if strings.HasPrefix(path, legacyProjectPrefix) {
		path = strings.Replace(path, legacyProjectPrefix, "/project/", 1)
		path = strings.Replace(path, "/workload/", "/workloads/", 1)
	}
	return path
}

func takeString(fields map[string]json.RawMessage, key string) *string {
	raw, ok := fields[key]
	if !ok || isNull(raw) {
		return nil
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil
	}
	delete(fields, key)
	return &value
}

func isNull(raw json.RawMessage) bool {
	return strings.TrimSpace(string(raw)) == "null"
}

func copyFields(fields map[string]json.RawMessage) map[string]json.RawMessage {
	if fields == nil {
		return nil
	}
	out := make(map[string]json.RawMessage, len(fields))
	for key, value := range fields {
		out[key] = value
	}
	return out
}

func copyString(value *string) *string {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}
