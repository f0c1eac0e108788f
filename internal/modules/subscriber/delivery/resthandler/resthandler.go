package resthandler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/golangid/subscriber-service/internal/modules/subscriber/domain"
	"github.com/golangid/subscriber-service/internal/modules/subscriber/usecase"
	"github.com/golangid/subscriber-service/pkg/codebase/interfaces"
	"github.com/golangid/subscriber-service/pkg/logger"
	"github.com/golangid/subscriber-service/pkg/shared"
	"github.com/golangid/subscriber-service/pkg/tracer"
	"github.com/golangid/subscriber-service/pkg/wrapper"
	"github.com/labstack/echo"
	"go.uber.org/zap/zapcore"
)

const createSubscriberSchema = "subscriber/create"

// RestHandler handler
type RestHandler struct {
	uc        usecase.SubscriberUsecase
	validator interfaces.Validator
}

// NewRestHandler create new rest handler
func NewRestHandler(uc usecase.SubscriberUsecase, validator interfaces.Validator) *RestHandler {
	return &RestHandler{
		uc:        uc,
		validator: validator,
	}
}

// Mount handler with root "/", static path "/subscribers/name" take precedence over "/subscribers/:id"
func (h *RestHandler) Mount(root *echo.Group) {
	root.GET("/subscribers", h.getAllSubscribers)
	root.POST("/subscribers", h.createSubscriber)
	root.GET("/subscribers/name", h.getAllSubscriberSummaries)
	root.POST("/subscribers/name", h.createSubscriber)
	root.GET("/subscribers/:id", h.getSubscriberByID)
	root.POST("/subscribers/:id", h.createSubscriberWithID)
}

func (h *RestHandler) getAllSubscribers(c echo.Context) error {
	data, err := h.uc.GetAllSubscribers(c.Request().Context())
	if err != nil {
		logger.Log(zapcore.ErrorLevel, err.Error(), "SubscriberUsecase:GetAllSubscribers", "getAllSubscribers")
		return wrapper.NewHTTPResponse(http.StatusInternalServerError, err.Error()).JSON(c.Response())
	}
	return c.JSON(http.StatusOK, data)
}

func (h *RestHandler) getAllSubscriberSummaries(c echo.Context) error {
	data, err := h.uc.GetAllSubscriberSummaries(c.Request().Context())
	if err != nil {
		logger.Log(zapcore.ErrorLevel, err.Error(), "SubscriberUsecase:GetAllSubscriberSummaries", "getAllSubscriberSummaries")
		return wrapper.NewHTTPResponse(http.StatusInternalServerError, err.Error()).JSON(c.Response())
	}
	return c.JSON(http.StatusOK, data)
}

func (h *RestHandler) getSubscriberByID(c echo.Context) error {
	data, err := h.uc.GetSubscriberByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if shared.IsNotFoundError(err) {
			return wrapper.NewHTTPResponse(http.StatusBadRequest, err.Error()).JSON(c.Response())
		}
		logger.Log(zapcore.ErrorLevel, err.Error(), "SubscriberUsecase:GetSubscriberByID", "getSubscriberByID")
		return wrapper.NewHTTPResponse(http.StatusInternalServerError, err.Error()).JSON(c.Response())
	}
	return c.JSON(http.StatusOK, data)
}

func (h *RestHandler) createSubscriber(c echo.Context) error {
	return h.create(c, "")
}

func (h *RestHandler) createSubscriberWithID(c echo.Context) error {
	return h.create(c, c.Param("id"))
}

func (h *RestHandler) create(c echo.Context, id string) error {
	ctx := c.Request().Context()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			return httpErr
		}
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed read payload", err).JSON(c.Response())
	}
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	if err := h.validator.ValidateDocument(createSubscriberSchema, body); err != nil {
		tracer.Log(ctx, "validate_document", err)
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed validate payload", err).JSON(c.Response())
	}

	var req domain.CreateSubscriberRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return wrapper.NewHTTPResponse(http.StatusBadRequest, "Failed parse payload", err).JSON(c.Response())
	}
	req.ID = id

	data, err := h.uc.CreateSubscriber(ctx, req)
	if err != nil {
		switch {
		case shared.IsValidationError(err):
			return wrapper.NewHTTPResponse(http.StatusBadRequest, err.Error()).JSON(c.Response())
		case shared.IsStoreError(err):
			logger.Log(zapcore.WarnLevel, err.Error(), "SubscriberUsecase:CreateSubscriber", "create")
			return wrapper.NewHTTPResponse(http.StatusBadRequest, err.Error()).JSON(c.Response())
		}
		logger.Log(zapcore.ErrorLevel, err.Error(), "SubscriberUsecase:CreateSubscriber", "create")
		return wrapper.NewHTTPResponse(http.StatusInternalServerError, err.Error()).JSON(c.Response())
	}
	return c.JSON(http.StatusCreated, data)
}
