package handlers_test

import (
	"net/http"
	"testing"

	"Backoffice/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSignupForm_Success(t *testing.T) {
	env := newTestEnv(t)

	w := env.doForm(http.MethodPost, "/auth/signup", "Email=a%40x.com&Password=Secret123", "")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	require.Len(t, env.accounts.byEmail, 1)

	stored := env.accounts.byEmail["a@x.com"]
	assert.NotEqual(t, "Secret123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Secret123")))
}

func TestSignupForm_InvalidInputRedirectsWithError(t *testing.T) {
	env := newTestEnv(t)

	w := env.doForm(http.MethodPost, "/auth/signup", "Email=not-an-email&Password=Secret123", "")

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/?error=")
	assert.Empty(t, env.accounts.byEmail)
}

func TestRestSignup(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(http.MethodPost, "/auth/restsignup", map[string]string{"Email": "a@x.com", "Password": "Secret123"}, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rows_affected":1`)

	// Reusing the email creates nothing and reports the duplicate.
	w = env.doJSON(http.MethodPost, "/auth/restsignup", map[string]string{"Email": "a@x.com", "Password": "Other456"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email already exists!")
	assert.Len(t, env.accounts.byEmail, 1)
}

func TestRestSignup_ShortPassword(t *testing.T) {
	env := newTestEnv(t)

	w := env.doJSON(http.MethodPost, "/auth/restsignup", map[string]string{"Email": "a@x.com", "Password": "abc"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, env.accounts.byEmail)
}

func TestRestLogin_IssuesVerifiableToken(t *testing.T) {
	env := newTestEnv(t)
	env.doJSON(http.MethodPost, "/auth/restsignup", map[string]string{"Email": "a@x.com", "Password": "Secret123"}, "")

	w := env.doJSON(http.MethodPost, "/auth/restlogin", map[string]string{"Email": "a@x.com", "Password": "Secret123"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	headerToken := w.Header().Get(auth.TokenName)
	require.NotEmpty(t, headerToken, "token must be in the response header")
	assert.Contains(t, w.Body.String(), headerToken, "token must be in the response body")

	accountID, err := env.tokens.Parse(headerToken)
	require.NoError(t, err)
	assert.Equal(t, env.accounts.byEmail["a@x.com"].ID, accountID)
}

func TestRestLogin_Failures(t *testing.T) {
	env := newTestEnv(t)
	env.doJSON(http.MethodPost, "/auth/restsignup", map[string]string{"Email": "a@x.com", "Password": "Secret123"}, "")

	w := env.doJSON(http.MethodPost, "/auth/restlogin", map[string]string{"Email": "nobody@x.com", "Password": "Secret123"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email does not exist")
	assert.Empty(t, w.Header().Get(auth.TokenName), "no token on unknown email")

	w = env.doJSON(http.MethodPost, "/auth/restlogin", map[string]string{"Email": "a@x.com", "Password": "WrongPass"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid password")
	assert.Empty(t, w.Header().Get(auth.TokenName), "no token on bad password")
}

func TestLoginForm_SetsCookieMatchingTokenTTL(t *testing.T) {
	env := newTestEnv(t)
	env.doJSON(http.MethodPost, "/auth/restsignup", map[string]string{"Email": "a@x.com", "Password": "Secret123"}, "")

	w := env.doForm(http.MethodPost, "/auth/login", "Email=a%40x.com&Password=Secret123", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/auth/view", w.Header().Get("Location"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, auth.TokenName, c.Name)
	assert.True(t, c.HttpOnly)
	// Cookie and token expire together.
	assert.Equal(t, int(env.tokens.TTL().Seconds()), c.MaxAge)

	accountID, err := env.tokens.Parse(c.Value)
	require.NoError(t, err)
	assert.Equal(t, env.accounts.byEmail["a@x.com"].ID, accountID)
}

func TestLoginForm_BadPasswordRedirects(t *testing.T) {
	env := newTestEnv(t)
	env.doJSON(http.MethodPost, "/auth/restsignup", map[string]string{"Email": "a@x.com", "Password": "Secret123"}, "")

	w := env.doForm(http.MethodPost, "/auth/login", "Email=a%40x.com&Password=WrongPass", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/?error=")
	assert.Empty(t, w.Result().Cookies())
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "a@x.com", "Secret123")

	w := env.doForm(http.MethodPost, "/auth/logout", "", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "logged out")

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Less(t, cookies[0].MaxAge, 0, "cookie must be cleared")
}

func TestLogout_WithoutCookieRedirects(t *testing.T) {
	env := newTestEnv(t)

	w := env.doForm(http.MethodPost, "/auth/logout", "", "")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/?error=")
}

func TestRestLogout(t *testing.T) {
	env := newTestEnv(t)
	token := env.login(t, "a@x.com", "Secret123")

	w := env.doJSON(http.MethodPost, "/auth/restlogout", nil, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "logged out")

	w = env.doJSON(http.MethodPost, "/auth/restlogout", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
