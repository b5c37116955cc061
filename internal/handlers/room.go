package handlers

import (
	"net/http"
	"strconv"

	"questup-backend/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	roomService *services.RoomService
}

func NewRoomHandler(roomService *services.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

type CreateRoomRequest struct {
	Title string `json:"title" binding:"required,max=255" example:"Algebra"`
}

type JoinRoomRequest struct {
	RoomCode string `json:"room_code" binding:"required,len=6" example:"A1B2C3"`
}

// CreateRoom godoc
// @Summary      Create a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreateRoomRequest true "Room data"
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Router       /rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	teacherID := c.GetUint("teacher_id")
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	room, err := h.roomService.CreateRoom(teacherID, req.Title)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "room": room})
}

// MyRooms godoc
// @Summary      List own rooms with question and participant counts
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} map[string]interface{}
// @Router       /rooms/my-rooms [get]
func (h *RoomHandler) MyRooms(c *gin.Context) {
	teacherID := c.GetUint("teacher_id")
	rooms, err := h.roomService.ListMyRooms(teacherID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "rooms": rooms})
}

// GetRoom godoc
// @Summary      Get one of your rooms
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Room ID"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorResponse
// @Router       /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	teacherID := c.GetUint("teacher_id")
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid room id"})
		return
	}

	room, err := h.roomService.GetRoom(teacherID, uint(roomID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, room)
}

// Join godoc
// @Summary      Join a room by code
// @Description  Public lookup of an open room; also issues a voter token
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        request body JoinRoomRequest true "Room code"
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorResponse
// @Router       /rooms/join [post]
func (h *RoomHandler) Join(c *gin.Context) {
	var req JoinRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	room, err := h.roomService.JoinByCode(req.RoomCode)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"room":        room,
		"voter_token": uuid.NewString(),
	})
}

// CloseRoom godoc
// @Summary      Close a room
// @Description  Idempotent; a closed room stays closed and cannot reopen
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Room ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /rooms/{id}/close [post]
func (h *RoomHandler) CloseRoom(c *gin.Context) {
	teacherID := c.GetUint("teacher_id")
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid room id"})
		return
	}

	if err := h.roomService.CloseRoom(teacherID, uint(roomID)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "room closed"})
}
