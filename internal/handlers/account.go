package handlers

import (
	"errors"
	"log"
	"net/http"
	"net/url"

	"Backoffice/internal/auth"
	"Backoffice/internal/dto"
	"Backoffice/internal/service"

	"github.com/gin-gonic/gin"
)

// AccountHandler handles signup, login and logout in both form and API mode.
// Form-mode failures redirect to the landing page with the message in the
// query string; API-mode failures answer with a status code and JSON body.
type AccountHandler struct {
	svc    *service.AccountService
	tokens *auth.Issuer
}

// NewAccountHandler returns a new AccountHandler.
func NewAccountHandler(svc *service.AccountService, tokens *auth.Issuer) *AccountHandler {
	return &AccountHandler{svc: svc, tokens: tokens}
}

// Signup godoc
// @Summary      Sign up (form)
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        Email     formData  string  true  "Email"
// @Param        Password  formData  string  true  "Password (min 6)"
// @Success      302
// @Router       /auth/signup [post]
func (h *AccountHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		redirectError(c, "/", err.Error())
		return
	}
	if _, err := h.svc.Register(c.Request.Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			redirectError(c, "/", "Email already exists!")
			return
		}
		log.Printf("signup: %v", err)
		redirectError(c, "/", "Internal Server Error")
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// RestSignup godoc
// @Summary      Sign up (API)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SignupRequest  true  "Credentials"
// @Success      200   {object}  dto.MutationResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/restsignup [post]
func (h *AccountHandler) RestSignup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, err := h.svc.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already exists!"})
			return
		}
		log.Printf("restsignup: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, dto.MutationResponse{ID: a.ID, RowsAffected: 1})
}

// Login godoc
// @Summary      Log in (form)
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Param        Email     formData  string  true  "Email"
// @Param        Password  formData  string  true  "Password"
// @Success      302
// @Router       /auth/login [post]
func (h *AccountHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		redirectError(c, "/", err.Error())
		return
	}
	a, err := h.svc.ValidateCredentials(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAccountNotFound):
			redirectError(c, "/", "Email does not exist")
		case errors.Is(err, service.ErrInvalidCredentials):
			redirectError(c, "/", "Invalid Password")
		default:
			log.Printf("login: %v", err)
			redirectError(c, "/", "Internal Server Error")
		}
		return
	}
	token, err := h.tokens.Issue(a.ID)
	if err != nil {
		log.Printf("login: issue token: %v", err)
		redirectError(c, "/", "Internal Server Error")
		return
	}
	// Cookie lifetime matches the token expiry.
	c.SetCookie(auth.TokenName, token, int(h.tokens.TTL().Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, "/auth/view")
}

// RestLogin godoc
// @Summary      Log in (API)
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      dto.LoginRequest  true  "Credentials"
// @Success      200   {object}  dto.TokenResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/restlogin [post]
func (h *AccountHandler) RestLogin(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, err := h.svc.ValidateCredentials(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAccountNotFound):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email does not exist"})
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid password"})
		default:
			log.Printf("restlogin: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		}
		return
	}
	token, err := h.tokens.Issue(a.ID)
	if err != nil {
		log.Printf("restlogin: issue token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.Header(auth.TokenName, token)
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}

// Logout godoc
// @Summary      Log out (form)
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /auth/logout [post]
func (h *AccountHandler) Logout(c *gin.Context) {
	c.SetCookie(auth.TokenName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"loggedout": "logged out"})
}

// RestLogout godoc
// @Summary      Log out (API)
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /auth/restlogout [post]
func (h *AccountHandler) RestLogout(c *gin.Context) {
	// Tokens are stateless; the client discards its copy.
	c.JSON(http.StatusOK, gin.H{"loggedout": "logged out"})
}

func redirectError(c *gin.Context, target, msg string) {
	c.Redirect(http.StatusFound, target+"?error="+url.QueryEscape(msg))
}
