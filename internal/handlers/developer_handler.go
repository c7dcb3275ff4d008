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

type DeveloperHandler struct {
	store store.Store
	cache *cache.ListCache
}

func NewDeveloperHandler(st store.Store, lc *cache.ListCache) *DeveloperHandler {
	return &DeveloperHandler{store: st, cache: lc}
}

// --------- Requests ---------

type CreateDeveloperRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	TechStack   string `json:"techStack"`
	Skills      string `json:"skills"`
	Description string `json:"description"`
}

// --------- Handlers ---------

func (h *DeveloperHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if body, ok := h.cache.Get(ctx, cache.KindDevelopers); ok {
		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
		return
	}

	devs, err := h.store.ListDevelopers(ctx)
	if err != nil {
		log.Printf("list developers: %v", err)
		httperr.Internal(c)
		return
	}

	body, err := json.Marshal(devs)
	if err != nil {
		httperr.Internal(c)
		return
	}
	h.cache.Set(ctx, cache.KindDevelopers, body)

	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}

func (h *DeveloperHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		httperr.NotFound(c, "Developer not found")
		return
	}

	dev, err := h.store.GetDeveloper(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.NotFound(c, "Developer not found")
			return
		}
		log.Printf("get developer %d: %v", id, err)
		httperr.Internal(c)
		return
	}

	c.JSON(http.StatusOK, dev)
}

func (h *DeveloperHandler) Create(c *gin.Context) {
	var req CreateDeveloperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, err)
		return
	}

	dev := models.Developer{
		Name:        req.Name,
		Email:       req.Email,
		TechStack:   req.TechStack,
		Skills:      req.Skills,
		Description: req.Description,
	}

	if err := h.store.CreateDeveloper(c.Request.Context(), &dev); err != nil {
		log.Printf("create developer: %v", err)
		httperr.Internal(c)
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KindDevelopers)

	c.JSON(http.StatusCreated, dev)
}

func (h *DeveloperHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}

	if err := h.store.DeleteDeveloper(c.Request.Context(), id); err != nil {
		log.Printf("delete developer %d: %v", id, err)
		httperr.Internal(c)
		return
	}

	h.cache.Invalidate(c.Request.Context(), cache.KindDevelopers)

	c.Status(http.StatusNoContent)
}
