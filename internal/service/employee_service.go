package service

import (
	"context"

	dom "Backoffice/internal/domain"
	"Backoffice/internal/cache"
	"Backoffice/internal/repo"

	"golang.org/x/sync/singleflight"
)

// EmployeeService handles employee CRUD. Mutations report rows affected and
// never distinguish a missing id from a present one; deleting or updating a
// record that is not there is still a success with zero rows.
type EmployeeService struct {
	repo  repo.EmployeeRepo
	cache *cache.EmployeeCache
	sf    singleflight.Group
}

// NewEmployeeService creates an EmployeeService. If c is nil, caching is disabled.
func NewEmployeeService(r repo.EmployeeRepo, c *cache.EmployeeCache) *EmployeeService {
	return &EmployeeService{repo: r, cache: c}
}

func (s *EmployeeService) Create(ctx context.Context, e dom.Employee) (dom.Employee, error) {
	out, err := s.repo.Create(ctx, e)
	if err != nil {
		return dom.Employee{}, err
	}
	s.invalidateCache(ctx)
	return out, nil
}

func (s *EmployeeService) List(ctx context.Context) ([]dom.Employee, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("list", func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.List(ctx)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Employee), nil
	}
	return s.repo.List(ctx)
}

func (s *EmployeeService) Update(ctx context.Context, id int64, e dom.Employee) (int64, error) {
	rows, err := s.repo.Update(ctx, id, e)
	if err != nil {
		return 0, err
	}
	s.invalidateCache(ctx)
	return rows, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id int64) (int64, error) {
	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	s.invalidateCache(ctx)
	return rows, nil
}

func (s *EmployeeService) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		_ = s.cache.Invalidate(ctx)
	}
}
