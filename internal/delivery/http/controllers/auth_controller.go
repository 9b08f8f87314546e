package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	h "eventattendance/internal/delivery/http/helpers"
	"eventattendance/internal/domain"
)

// emailProblem describes what is wrong with an email field, or returns "".
func emailProblem(email string, required bool) string {
	switch {
	case strings.TrimSpace(email) == "":
		if required {
			return "email is required"
		}
		return ""
	case !domain.ValidEmail(email):
		return "invalid email format"
	}
	return ""
}

// SignUpRequest creates a workspace operator account.
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// Validate implements Validator.
func (s SignUpRequest) Validate() []string {
	var problems []string
	if msg := emailProblem(s.Email, true); msg != "" {
		problems = append(problems, msg)
	}
	if len(s.Password) < domain.MinPasswordLen {
		problems = append(problems, fmt.Sprintf("password must be at least %d characters", domain.MinPasswordLen))
	}
	return problems
}

// LoginRequest exchanges credentials for a bearer token.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	if strings.TrimSpace(l.Email) == "" || l.Password == "" {
		return []string{"email and password are required"}
	}
	return nil
}

// LoginResponse carries the issued token and the signed-in account.
type LoginResponse struct {
	Token     string       `json:"token"`
	TokenType string       `json:"token_type"`
	User      *domain.User `json:"user"`
}

// LoginSuccessResponse is the success envelope for POST /auth/login (200).
type LoginSuccessResponse struct {
	Data  LoginResponse `json:"data"`
	Error *h.APIError   `json:"error"`
}

type AuthController struct {
	Logger  *slog.Logger
	Service domain.AuthService
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService) *AuthController {
	return &AuthController{
		Logger:  logger,
		Service: svc,
	}
}

// SignUp godoc
// @Summary Sign up a workspace member
// @Description Create an account with email, password, and name. Password is stored hashed.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body SignUpRequest true "Sign-up data"
// @Success 201 {object} helpers.APIResponse "data contains the created user"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/signup [post]
func (c *AuthController) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	user, err := c.Service.SignUp(r.Context(), req.Email, req.Password, strings.TrimSpace(req.Name))
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, user)
}

// Login godoc
// @Summary Log in
// @Description Authenticate with email and password. Returns a bearer JWT and the user.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} controllers.LoginSuccessResponse
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /auth/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	token, user, err := c.Service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.WriteDomainError(w, r, c.Logger, err)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, LoginResponse{Token: token, TokenType: "Bearer", User: user})
}
