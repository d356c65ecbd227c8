package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "moneytracker/internal/errors"
	"moneytracker/internal/models"
	"moneytracker/internal/services"
)

// ListHandler handles expense list requests.
type ListHandler struct {
	listService services.ListServicer
}

// NewListHandler creates a new ListHandler.
func NewListHandler(listService services.ListServicer) *ListHandler {
	return &ListHandler{listService: listService}
}

// ListNameRequest is the payload for creating or renaming a list.
type ListNameRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// SelectListRequest is the payload for changing the active list.
type SelectListRequest struct {
	ListID string `json:"listId" binding:"required"`
}

// ListsResponse is every list plus the active one.
type ListsResponse struct {
	Lists          []models.ExpenseList `json:"lists"`
	SelectedListID string               `json:"selectedListId"`
}

// GetLists handles listing expense lists.
// @Summary     Get lists
// @Description Get every expense list and the active list id
// @Tags        lists
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} ListsResponse "Lists"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /lists [get]
func (h *ListHandler) GetLists(c *gin.Context) {
	resp := ListsResponse{Lists: h.listService.GetLists()}
	if active, err := h.listService.ActiveList(); err == nil {
		resp.SelectedListID = active.ID
	}
	c.JSON(http.StatusOK, resp)
}

// CreateList handles creating a list. The new list becomes active.
// @Summary     Create a list
// @Tags        lists
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body ListNameRequest true "List name"
// @Success     201 {object} ListResponse "List created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     403 {object} ErrorResponse "Read-only token"
// @Router      /lists [post]
func (h *ListHandler) CreateList(c *gin.Context) {
	var req ListNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	list, err := h.listService.AddList(req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ListResponse{List: list})
}

// RenameList handles renaming a list.
// @Summary     Rename a list
// @Tags        lists
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string          true "List ID"
// @Param       request body ListNameRequest true "New name"
// @Success     200 {object} ListResponse "Renamed list"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "List not found"
// @Router      /lists/{id} [put]
func (h *ListHandler) RenameList(c *gin.Context) {
	listID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ListNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	list, err := h.listService.RenameList(listID, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListResponse{List: list})
}

// SelectList handles changing the active list.
// @Summary     Select the active list
// @Tags        lists
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body SelectListRequest true "List to activate"
// @Success     200 {object} ListsResponse "Lists"
// @Failure     404 {object} ErrorResponse "List not found"
// @Router      /lists/selected [put]
func (h *ListHandler) SelectList(c *gin.Context) {
	var req SelectListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.listService.SelectList(req.ListID); err != nil {
		respondWithError(c, err)
		return
	}

	h.GetLists(c)
}
