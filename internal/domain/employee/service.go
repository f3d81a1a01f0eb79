package employee

import "context"

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

func (s *Service) Get(ctx context.Context, employeeID string) (*Employee, error) {
	return s.store.Get(ctx, employeeID)
}

func (s *Service) List(ctx context.Context, status string, limit, offset int) ([]Employee, int, error) {
	employees, err := s.store.List(ctx, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.store.Count(ctx, status)
	if err != nil {
		return nil, 0, err
	}
	return employees, total, nil
}

// Create validates and persists a new employee record. Validation happens
// here, on the write path, so the promotion engine can assume the stored
// data is consistent.
func (s *Service) Create(ctx context.Context, emp Employee) (string, error) {
	Normalize(&emp)
	if err := Validate(&emp); err != nil {
		return "", err
	}
	return s.store.Create(ctx, emp)
}

func (s *Service) Update(ctx context.Context, employeeID string, emp Employee) error {
	Normalize(&emp)
	if err := Validate(&emp); err != nil {
		return err
	}
	return s.store.Update(ctx, employeeID, emp)
}

func (s *Service) Delete(ctx context.Context, employeeID string) error {
	return s.store.Delete(ctx, employeeID)
}
