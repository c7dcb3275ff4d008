package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clientdesk/clientdesk/internal/cache"
	"github.com/clientdesk/clientdesk/internal/httperr"
	"github.com/clientdesk/clientdesk/internal/models"
	"github.com/clientdesk/clientdesk/internal/store"
)

type ClientHandler struct {
	store store.Store
	cache *cache.ListCache
}

func NewClientHandler(st store.Store, lc *cache.ListCache) *ClientHandler {
	return &ClientHandler{store: st, cache: lc}
}

// --------- Requests ---------

type CreateClientRequest struct {
	Name              string        `json:"name" binding:"required"`
	Email             string        `json:"email" binding:"required"`
	Phone             string        `json:"phone" binding:"required"`
	Details           string        `json:"details"`
	Budget            models.Budget `json:"budget" binding:"required"`
	Status            string        `json:"status" binding:"omitempty,oneof='New' 'In Progress' 'Completed' 'On Hold'"`
	AssignedDeveloper string        `json:"assignedDeveloper"`
}

type UpdateClientRequest struct {
	Name              *string        `json:"name,omitempty"`
	Email             *string        `json:"email,omitempty"`
	Phone             *string        `json:"phone,omitempty"`
	Details           *string        `json:"details,omitempty"`
	Budget            *models.Budget `json:"budget,omitempty"`
	Status            *string        `json:"status,omitempty" binding:"omitempty,oneof='New' 'In Progress' 'Completed' 'On Hold'"`
	AssignedDeveloper *string        `json:"assignedDeveloper,omitempty"`
}

// --------- Handlers ---------

func (h *ClientHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if body, ok := h.cache.Get(ctx, cache.KindClients); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	clients, err := h.store.ListClients(ctx)
	if err != nil {
		log.Printf("list clients: %v", err)
		httperr.Internal(c)
		return
	}

	body, err := json.Marshal(clients)
	if err != nil {
		httperr.Internal(c)
		return
	}
	h.cache.Set(ctx, cache.KindClients, body)

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Client not found")
		return
	}

	client, err := h.store.GetClient(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "Client not found")
			return
		}
		log.Printf("get client %d: %v", id, err)
		httperr.Internal(c)
		return
	}

	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	client := models.Client{
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		Details:           req.Details,
		Budget:            req.Budget,
		Status:            req.Status,
		AssignedDeveloper: req.AssignedDeveloper,
	}

	if err := h.store.CreateClient(c.Request.Context(), &client); err != nil {
		if errors.Is(err, store.ErrInvalidStatus) {
			httperr.BadRequestField(c, "status must be one of: New, In Progress, Completed, On Hold", "status")
			return
		}
		log.Printf("create client: %v", err)
		httperr.Internal(c)
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KindClients)

	c.JSON(http.StatusCreated, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Client not found")
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	if req.Budget != nil && *req.Budget == "" {
		httperr.BadRequestField(c, "budget must not be empty", "budget")
		return
	}

	patch := store.ClientPatch{
		Name:              req.Name,
		Email:             req.Email,
		Phone:             req.Phone,
		Details:           req.Details,
		Budget:            req.Budget,
		Status:            req.Status,
		AssignedDeveloper: req.AssignedDeveloper,
	}

	client, err := h.store.UpdateClient(c.Request.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			httperr.NotFound(c, "Client not found")
		case errors.Is(err, store.ErrInvalidStatus):
			httperr.BadRequestField(c, "status must be one of: New, In Progress, Completed, On Hold", "status")
		default:
			log.Printf("update client %d: %v", id, err)
			httperr.Internal(c)
		}
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KindClients)

	c.JSON(http.StatusOK, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		// Delete is idempotent; an id that can't exist is already gone.
		c.Status(http.StatusNoContent)
		return
	}

	if err := h.store.DeleteClient(c.Request.Context(), id); err != nil {
		log.Printf("delete client %d: %v", id, err)
		httperr.Internal(c)
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KindClients)

	c.Status(http.StatusNoContent)
}
