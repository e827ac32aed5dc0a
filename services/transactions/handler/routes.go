package handler

import (
	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/autofinanceai/backend/internal/pkg/models"
	"github.com/autofinanceai/backend/services/transactions/handler/http"
)

// Handler coordinates the HTTP handlers for the transaction service
type Handler struct {
	txHandler *http.TransactionHandler
	cfg       *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(txHandler *http.TransactionHandler, cfg *models.Config) *Handler {
	return &Handler{
		txHandler: txHandler,
		cfg:       cfg,
	}
}

// GetJWTMiddleware returns the configured JWT middleware for HTTP requests
func (h *Handler) GetJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.cfg.JWT.Secret),
		SuccessHandler: func(c echo.Context) {
			// Parse the token directly from Authorization header to avoid type conflicts
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader != "" && len(authHeader) > 7 && authHeader[:7] == "Bearer " {
				tokenString := authHeader[7:]
				token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
					return []byte(h.cfg.JWT.Secret), nil
				})
				if err == nil && token.Valid {
					if claims, ok := token.Claims.(jwt.MapClaims); ok {
						if userID, exists := claims["user_id"]; exists {
							c.Set("user_id", userID)
						}
						if isStaff, exists := claims["is_staff"]; exists {
							if b, ok := isStaff.(bool); ok {
								c.Set("is_staff", b)
							}
						}
					}
				}
			}
		},
	})
}

// RegisterRoutes registers all transaction routes behind JWT authentication
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	protected := e.Group("", h.GetJWTMiddleware())

	txGroup := protected.Group("/transactions")
	txGroup.GET("/", h.txHandler.ListTransactions)
	txGroup.POST("/", h.txHandler.CreateTransactions)
	txGroup.PATCH("/:id/", h.txHandler.UpdateTransaction)
	txGroup.DELETE("/:id/", h.txHandler.DeleteTransaction)
	txGroup.GET("/pdf/download/", h.txHandler.DownloadMonthlyReport)

	protected.POST("/image-to-transaction/", h.txHandler.ExtractFromImage)
	protected.GET("/analysis/", h.txHandler.AnalyzeSpending)
}
