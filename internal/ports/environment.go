package ports

// Environment gives access to the variables of the build environment.
type Environment interface {
	// Expand replaces $VAR and ${VAR} placeholders. Unknown variables are left as written.
	Expand(value string) string
	Lookup(key string) (string, bool)
}
