package domain

// Employee is the single record type managed by the CRUD endpoints.
// Не зависит от Gin, Postgres, Redis.
type Employee struct {
	ID      int64
	Name    string
	EmpCode string
	Salary  float64
}
