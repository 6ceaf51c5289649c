package relayd

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DuJao22/sistema-controle-lava-rapido/internal/common"
)

// Handler exposes the objects API over HTTP.
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

type envelope struct {
	Name string          `json:"name"`
	Data json.RawMessage `json:"data"`
}

func (h *Handler) CreateObject(c *gin.Context) {
	var body envelope
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body"})
		return
	}
	if body.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	obj, err := h.store.Create(c.Request.Context(), body.Name, body.Data)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, obj)
}

func (h *Handler) UpdateObject(c *gin.Context) {
	var body envelope
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json body"})
		return
	}
	obj, err := h.store.Update(c.Request.Context(), c.Param("id"), body.Name, body.Data)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, obj)
}

func (h *Handler) GetObject(c *gin.Context) {
	obj, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, obj)
}

func (h *Handler) ListObjects(c *gin.Context) {
	objects, err := h.store.List(c.Request.Context(), c.Query("name"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, objects)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	if errors.Is(err, common.ErrorNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
