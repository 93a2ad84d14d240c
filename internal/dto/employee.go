package dto

// EmployeeRequest is the body for create and update. All three fields are
// required; update replaces the whole record (last writer wins).
type EmployeeRequest struct {
	Name    string   `json:"Name" form:"Name" binding:"required"`
	EmpCode string   `json:"EmpCode" form:"EmpCode" binding:"required"`
	Salary  *float64 `json:"Salary" form:"Salary" binding:"required"`
}

type EmployeeResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"Name"`
	EmpCode string  `json:"EmpCode"`
	Salary  float64 `json:"Salary"`
}

// MutationResponse mirrors the driver's insert/update/delete result descriptor.
// ID is only set for inserts.
type MutationResponse struct {
	ID           int64 `json:"id,omitempty"`
	RowsAffected int64 `json:"rows_affected"`
}
