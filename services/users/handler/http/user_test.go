package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autofinanceai/backend/internal/pkg/models"
	"github.com/autofinanceai/backend/services/users/mocks"
)

func setupUserHandlerTest(t *testing.T) (*UserHandler, *mocks.MockUserUC) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockUserUC(ctrl)
	return NewUserHandler(mockUC), mockUC
}

func TestUpdateProfile(t *testing.T) {
	handler, mockUC := setupUserHandlerTest(t)

	userID := uuid.New()
	e := echo.New()
	body := `{"email": "alice.new@example.com", "first_name": "Alicia"}`
	req := httptest.NewRequest(http.MethodPatch, "/user/update/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID.String())

	mockUC.EXPECT().
		UpdateProfile(gomock.Any(), userID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, req models.UpdateUserRequest) (*models.UserView, error) {
			require.NotNil(t, req.Email)
			assert.Equal(t, "alice.new@example.com", *req.Email)
			require.NotNil(t, req.FirstName)
			assert.Nil(t, req.LastName)
			return &models.UserView{
				ID:        userID,
				Username:  "alice",
				Email:     *req.Email,
				FirstName: *req.FirstName,
				LastName:  "Smith",
			}, nil
		})

	err := handler.UpdateProfile(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var view models.UserView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	assert.Equal(t, "alice.new@example.com", view.Email)
	assert.Equal(t, "Alicia", view.FirstName)
}

func TestUpdateProfileValidationError(t *testing.T) {
	handler, mockUC := setupUserHandlerTest(t)

	userID := uuid.New()
	e := echo.New()
	body := `{"email": "not-an-email"}`
	req := httptest.NewRequest(http.MethodPatch, "/user/update/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID.String())

	mockUC.EXPECT().
		UpdateProfile(gomock.Any(), userID, gomock.Any()).
		Return(nil, models.NewValidationError("Enter a valid email address."))

	err := handler.UpdateProfile(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Enter a valid email address.")
}

func TestUpdateProfileUnauthenticated(t *testing.T) {
	handler, _ := setupUserHandlerTest(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPatch, "/user/update/", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.UpdateProfile(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
