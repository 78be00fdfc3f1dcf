package store

// Memory is a process-local repository. Its mutations never fail.
type Memory struct {
	repo
}

func NewMemory() *Memory {
	return &Memory{repo: repo{st: newState()}}
}
