package repo

import (
	"context"

	dom "Backoffice/internal/domain"
)

// EmployeeRepo provides employee persistence. Update and Delete report the
// number of rows affected; callers decide what zero means.
type EmployeeRepo interface {
	Create(ctx context.Context, e dom.Employee) (dom.Employee, error)
	List(ctx context.Context) ([]dom.Employee, error)
	Update(ctx context.Context, id int64, e dom.Employee) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type PGEmployeeRepo struct {
	db Queryer
}

func NewPGEmployeeRepo(db Queryer) *PGEmployeeRepo {
	return &PGEmployeeRepo{db: db}
}

func (r *PGEmployeeRepo) Create(ctx context.Context, e dom.Employee) (dom.Employee, error) {
	query := `
		INSERT INTO employees (name, emp_code, salary)
		VALUES ($1, $2, $3)
		RETURNING id, name, emp_code, salary`
	var out dom.Employee
	err := r.db.QueryRow(ctx, query, e.Name, e.EmpCode, e.Salary).Scan(
		&out.ID, &out.Name, &out.EmpCode, &out.Salary,
	)
	return out, err
}

func (r *PGEmployeeRepo) List(ctx context.Context) ([]dom.Employee, error) {
	query := `
		SELECT id, name, emp_code, salary
		FROM employees ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Employee
	for rows.Next() {
		var e dom.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.EmpCode, &e.Salary); err != nil {
			return nil, err
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func (r *PGEmployeeRepo) Update(ctx context.Context, id int64, e dom.Employee) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`UPDATE employees SET name = $2, emp_code = $3, salary = $4 WHERE id = $1`,
		id, e.Name, e.EmpCode, e.Salary,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *PGEmployeeRepo) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
