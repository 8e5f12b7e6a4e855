package solver

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrSolutionNotFound is returned when no solution exists for the given id
var ErrSolutionNotFound = errors.New("solution not found")

// Solved is a stored solution with its identifier
type Solved struct {
	ID          string
	ProblemText string
	Solution    Solution
	CreatedAt   time.Time
}

// Store keeps generated solutions in memory keyed by id. Entries live for
// the process lifetime.
type Store struct {
	mu        sync.RWMutex
	solutions map[string]Solved
}

// NewStore creates an empty solution store
func NewStore() *Store {
	return &Store{
		solutions: make(map[string]Solved),
	}
}

// Put stores a solution and returns it with its generated id
func (s *Store) Put(problemText string, solution Solution) Solved {
	solved := Solved{
		ID:          uuid.NewString(),
		ProblemText: problemText,
		Solution:    solution,
		CreatedAt:   time.Now().UTC(),
	}

	s.mu.Lock()
	s.solutions[solved.ID] = solved
	s.mu.Unlock()

	return solved
}

// Get returns the stored solution for id
func (s *Store) Get(id string) (Solved, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	solved, ok := s.solutions[id]
	if !ok {
		return Solved{}, ErrSolutionNotFound
	}

	return solved, nil
}
