package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Backoffice/internal/app"
	"Backoffice/internal/auth"
	dom "Backoffice/internal/domain"
	"Backoffice/internal/handlers"
	"Backoffice/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

type fakeAccountRepo struct {
	byEmail map[string]dom.Account
	seq     int64
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byEmail: make(map[string]dom.Account)}
}

func (r *fakeAccountRepo) GetByEmail(_ context.Context, email string) (dom.Account, error) {
	a, ok := r.byEmail[email]
	if !ok {
		return dom.Account{}, pgx.ErrNoRows
	}
	return a, nil
}

func (r *fakeAccountRepo) Create(_ context.Context, email, passwordHash string) (dom.Account, error) {
	r.seq++
	a := dom.Account{ID: r.seq, Email: email, PasswordHash: passwordHash}
	r.byEmail[email] = a
	return a, nil
}

type fakeEmployeeRepo struct {
	employees map[int64]dom.Employee
	seq       int64
	order     []int64
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[int64]dom.Employee)}
}

func (r *fakeEmployeeRepo) Create(_ context.Context, e dom.Employee) (dom.Employee, error) {
	r.seq++
	e.ID = r.seq
	r.employees[e.ID] = e
	r.order = append(r.order, e.ID)
	return e, nil
}

func (r *fakeEmployeeRepo) List(_ context.Context) ([]dom.Employee, error) {
	var out []dom.Employee
	for _, id := range r.order {
		if e, ok := r.employees[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, id int64, e dom.Employee) (int64, error) {
	if _, ok := r.employees[id]; !ok {
		return 0, nil
	}
	e.ID = id
	r.employees[id] = e
	return 1, nil
}

func (r *fakeEmployeeRepo) Delete(_ context.Context, id int64) (int64, error) {
	if _, ok := r.employees[id]; !ok {
		return 0, nil
	}
	delete(r.employees, id)
	return 1, nil
}

type testEnv struct {
	router   *gin.Engine
	accounts *fakeAccountRepo
	emps     *fakeEmployeeRepo
	tokens   *auth.Issuer
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := auth.NewIssuer([]byte("test-secret"), 10*time.Hour)
	if err != nil {
		t.Fatalf("issuer: %v", err)
	}

	accounts := newFakeAccountRepo()
	emps := newFakeEmployeeRepo()

	r := gin.New()
	r.LoadHTMLGlob("../../web/templates/*.html")

	app.RegisterAccountRoutes(r, handlers.NewAccountHandler(service.NewAccountService(accounts), tokens), tokens)
	app.RegisterEmployeeRoutes(r, handlers.NewEmployeeHandler(service.NewEmployeeService(emps, nil)), tokens)

	return &testEnv{router: r, accounts: accounts, emps: emps, tokens: tokens}
}

func (e *testEnv) doJSON(method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(auth.TokenName, token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) doForm(method, path, form, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(form))
	if form != "" {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: auth.TokenName, Value: cookie})
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// login registers an account and returns a valid token for it.
func (e *testEnv) login(t *testing.T, email, password string) string {
	t.Helper()
	w := e.doJSON(http.MethodPost, "/auth/restsignup", map[string]string{"Email": email, "Password": password}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("restsignup: status %d: %s", w.Code, w.Body.String())
	}
	w = e.doJSON(http.MethodPost, "/auth/restlogin", map[string]string{"Email": email, "Password": password}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("restlogin: status %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("restlogin body: %v", err)
	}
	return resp.Token
}
