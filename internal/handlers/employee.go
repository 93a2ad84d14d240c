package handlers

import (
	"log"
	"net/http"
	"strconv"

	dom "Backoffice/internal/domain"
	"Backoffice/internal/dto"
	"Backoffice/internal/service"

	"github.com/gin-gonic/gin"
)

// EmployeeHandler handles the guarded CRUD endpoints in both modes.
type EmployeeHandler struct {
	svc *service.EmployeeService
}

func NewEmployeeHandler(svc *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

// View godoc
// @Summary      List employees (form)
// @Tags         employees
// @Produce      html
// @Security     CookieAuth
// @Success      200
// @Router       /auth/view [get]
func (h *EmployeeHandler) View(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		log.Printf("view: %v", err)
		redirectError(c, "/", "Internal Server Error")
		return
	}
	c.HTML(http.StatusOK, "view.html", gin.H{
		"Employees": employeesToResponses(list),
	})
}

// RestView godoc
// @Summary      List employees (API)
// @Tags         employees
// @Produce      json
// @Security     TokenAuth
// @Success      200  {array}   dto.EmployeeResponse
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /auth/restview [get]
func (h *EmployeeHandler) RestView(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		log.Printf("restview: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, employeesToResponses(list))
}

// Create godoc
// @Summary      Create an employee (form)
// @Tags         employees
// @Accept       x-www-form-urlencoded
// @Security     CookieAuth
// @Param        Name     formData  string  true  "Name"
// @Param        EmpCode  formData  string  true  "Employee code"
// @Param        Salary   formData  number  true  "Salary"
// @Success      302
// @Router       /auth/create [post]
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req dto.EmployeeRequest
	if err := c.ShouldBind(&req); err != nil {
		redirectError(c, "/auth/view", err.Error())
		return
	}
	if _, err := h.svc.Create(c.Request.Context(), employeeFromRequest(req)); err != nil {
		log.Printf("create: %v", err)
		redirectError(c, "/", "Internal Server Error")
		return
	}
	c.Redirect(http.StatusFound, "/auth/view")
}

// RestCreate godoc
// @Summary      Create an employee (API)
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        body  body      dto.EmployeeRequest  true  "Employee"
// @Success      200   {object}  dto.MutationResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/restcreate [post]
func (h *EmployeeHandler) RestCreate(c *gin.Context) {
	var req dto.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	e, err := h.svc.Create(c.Request.Context(), employeeFromRequest(req))
	if err != nil {
		log.Printf("restcreate: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, dto.MutationResponse{ID: e.ID, RowsAffected: 1})
}

// Update godoc
// @Summary      Update an employee (form)
// @Tags         employees
// @Accept       x-www-form-urlencoded
// @Security     CookieAuth
// @Param        id       path      int     true  "Employee ID"
// @Param        Name     formData  string  true  "Name"
// @Param        EmpCode  formData  string  true  "Employee code"
// @Param        Salary   formData  number  true  "Salary"
// @Success      302
// @Router       /{id}/update [post]
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		redirectError(c, "/auth/view", "invalid id")
		return
	}
	var req dto.EmployeeRequest
	if err := c.ShouldBind(&req); err != nil {
		redirectError(c, "/auth/view", err.Error())
		return
	}
	if _, err := h.svc.Update(c.Request.Context(), id, employeeFromRequest(req)); err != nil {
		log.Printf("update: %v", err)
		redirectError(c, "/auth/view", "Internal Server Error")
		return
	}
	c.Redirect(http.StatusFound, "/auth/view")
}

// RestUpdate godoc
// @Summary      Update an employee (API)
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     TokenAuth
// @Param        id    path      int                  true  "Employee ID"
// @Param        body  body      dto.EmployeeRequest  true  "Employee"
// @Success      200   {object}  dto.MutationResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /{id}/update [patch]
func (h *EmployeeHandler) RestUpdate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req dto.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rows, err := h.svc.Update(c.Request.Context(), id, employeeFromRequest(req))
	if err != nil {
		log.Printf("restupdate: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	// Zero rows (unknown id) is still reported as success, as the driver does.
	c.JSON(http.StatusOK, dto.MutationResponse{RowsAffected: rows})
}

// Delete godoc
// @Summary      Delete an employee (form)
// @Tags         employees
// @Security     CookieAuth
// @Param        id  path  int  true  "Employee ID"
// @Success      302
// @Router       /{id}/delete [get]
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		redirectError(c, "/auth/view", "invalid id")
		return
	}
	if _, err := h.svc.Delete(c.Request.Context(), id); err != nil {
		log.Printf("delete: %v", err)
		redirectError(c, "/auth/view", "Internal Server Error")
		return
	}
	c.Redirect(http.StatusFound, "/auth/view")
}

// RestDelete godoc
// @Summary      Delete an employee (API)
// @Tags         employees
// @Produce      json
// @Security     TokenAuth
// @Param        id  path  int  true  "Employee ID"
// @Success      200  {object}  dto.MutationResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /{id}/delete [delete]
func (h *EmployeeHandler) RestDelete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	rows, err := h.svc.Delete(c.Request.Context(), id)
	if err != nil {
		log.Printf("restdelete: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal Server Error"})
		return
	}
	// Deleting a missing id answers the same way; delete is idempotent.
	c.JSON(http.StatusOK, dto.MutationResponse{RowsAffected: rows})
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func employeeFromRequest(req dto.EmployeeRequest) dom.Employee {
	return dom.Employee{Name: req.Name, EmpCode: req.EmpCode, Salary: *req.Salary}
}

func employeeToResponse(e dom.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{ID: e.ID, Name: e.Name, EmpCode: e.EmpCode, Salary: e.Salary}
}

func employeesToResponses(list []dom.Employee) []dto.EmployeeResponse {
	out := make([]dto.EmployeeResponse, len(list))
	for i := range list {
		out[i] = employeeToResponse(list[i])
	}
	return out
}
