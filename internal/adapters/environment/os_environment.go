package environment

import (
	"os"

	"redeploy/internal/ports"
)

var _ ports.Environment = (*OsEnvironment)(nil)

// OsEnvironment reads the process environment, which is where CI servers expose build variables.
type OsEnvironment struct {
	lookup func(key string) (string, bool)
}

func ProvideOsEnvironment() *OsEnvironment {
	return &OsEnvironment{lookup: os.LookupEnv}
}

// Expand replaces $VAR and ${VAR} with their values. Unset variables are kept as ${VAR}.
func (e *OsEnvironment) Expand(value string) string {
	return os.Expand(value, func(key string) string {
		if v, ok := e.lookup(key); ok {
			return v
		}
		return "${" + key + "}"
	})
}

func (e *OsEnvironment) Lookup(key string) (string, bool) {
	return e.lookup(key)
}
