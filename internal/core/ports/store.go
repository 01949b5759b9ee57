package ports

// BuildInfoStore persists the input fingerprint of previously executed tasks
// for up-to-date checks.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildInfoStore interface {
	// Get returns the stored input hash for a task path, or "" if none.
	Get(taskPath string) (string, error)

	// Put stores the input hash for a task path.
	Put(taskPath, inputHash string) error
}

// InputHasher computes a fingerprint over a task's declared input files.
type InputHasher interface {
	HashInputs(root string, inputs []string) (string, error)
}
