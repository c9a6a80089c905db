package ports

type AccessMode int

const (
	// ReadWrite is for files only the owner may read, such as the credential store.
	ReadWrite AccessMode = iota
	ReadWriteExecute
	// ReadAllWriteOwner is for files without secrets, such as the configuration file.
	ReadAllWriteOwner
)

// FileSystem resolves paths starting with "~" against the user's home directory.
type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	// WriteFile creates missing parent directories.
	WriteFile(path string, content []byte, accessMode AccessMode) error
	EnsureDirExists(path string) error
	FileExists(path string) (bool, error)
	// RemoveFile deletes a file. A missing file is not an error.
	RemoveFile(path string) error
}
