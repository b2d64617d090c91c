// File: handlers/provider.go
package handlers

import (
	"net/http"

	"medibook/models"
	providersvc "medibook/services/provider"
	"medibook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler bundles provider account and availability endpoints.
type ProviderHandler struct {
	Service providersvc.ProviderService
}

func NewProviderHandler(svc providersvc.ProviderService) *ProviderHandler {
	return &ProviderHandler{Service: svc}
}

func (h *ProviderHandler) RegisterProviderHandler(c *gin.Context) {
	var req providersvc.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	resp, err := h.Service.Register(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProviderHandler) AuthenticateProviderHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	resp, err := h.Service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProviderHandler) GetProviderByIDHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing provider ID in path", "")
		return
	}

	prov, err := h.Service.GetProviderByID(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, prov)
}

// SetAvailabilityHandler replaces the authenticated provider's weekly
// availability template wholesale.
func (h *ProviderHandler) SetAvailabilityHandler(c *gin.Context) {
	logger := utils.GetLogger()

	providerID, ok := callerFromContext(c, "providerID")
	if !ok {
		return
	}

	var av models.Availability
	if err := c.ShouldBindJSON(&av); err != nil {
		logger.Error("Invalid availability payload", zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	prov, err := h.Service.SetAvailability(c.Request.Context(), providerID, av)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Availability updated",
		"provider": prov,
	})
}

// callerFromContext retrieves an id the auth middleware stored, aborting
// with 401 when the request was not authenticated for that role.
func callerFromContext(c *gin.Context, key string) (string, bool) {
	value, exists := c.Get(key)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return "", false
	}
	id, ok := value.(string)
	if !ok || id == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid caller ID in context"})
		return "", false
	}
	return id, true
}
