package testutil

import (
	"os"

	"redeploy/internal/ports"
)

var _ ports.Environment = MapEnvironment{}

// MapEnvironment is a ports.Environment backed by a fixed set of variables.
type MapEnvironment map[string]string

func (e MapEnvironment) Expand(value string) string {
	return os.Expand(value, func(key string) string {
		if v, ok := e[key]; ok {
			return v
		}
		return "${" + key + "}"
	})
}

func (e MapEnvironment) Lookup(key string) (string, bool) {
	v, ok := e[key]
	return v, ok
}
