package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kevanghobadi/windsurf-hotel/app/entities"
	"github.com/kevanghobadi/windsurf-hotel/app/usecases"
)

type AuthHandler struct {
	authUsecase usecases.AuthUsecase
}

func NewAuthHandler(authUsecase usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase}
}

// AdminLogin godoc
// @Summary Admin login
// @Description Check the admin password and hand back the dashboard token
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body entities.AdminLoginRequest true "Admin password"
// @Success 200 {object} entities.AdminLoginResponse
// @Failure 401 {object} entities.AdminLoginResponse
// @Router /api/admin/login [post]
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req entities.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnauthorized, entities.AdminLoginResponse{
			Success: false,
			Message: "invalid request body",
		})
	}

	token, err := h.authUsecase.Login(req.Password)
	if err != nil {
		message := "invalid password"
		if e, ok := err.(*usecases.UseCaseError); ok {
			message = e.Message
		}
		return c.JSON(http.StatusUnauthorized, entities.AdminLoginResponse{
			Success: false,
			Message: message,
		})
	}
	return c.JSON(http.StatusOK, entities.AdminLoginResponse{
		Success: true,
		Token:   token,
		Message: "login successful",
	})
}
