package handlers

import (
	"net/http"
	"strconv"

	"questup-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	authService     *services.AuthService
	roomService     *services.RoomService
	questionService *services.QuestionService
}

func NewAdminHandler(authService *services.AuthService, roomService *services.RoomService, questionService *services.QuestionService) *AdminHandler {
	return &AdminHandler{
		authService:     authService,
		roomService:     roomService,
		questionService: questionService,
	}
}

// ListRequests godoc
// @Summary      List teacher access requests
// @Tags         admin
// @Produce      json
// @Param        X-Admin-Secret header string true "Admin secret"
// @Success      200 {object} map[string]interface{}
// @Failure      401 {object} ErrorResponse
// @Router       /auth/teachers/requests [get]
func (h *AdminHandler) ListRequests(c *gin.Context) {
	list, err := h.authService.ListRequests()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"requests": list.Pending,
		"history":  list.Approved,
		"stats": gin.H{
			"pending":  len(list.Pending),
			"approved": len(list.Approved),
			"total":    list.TotalTeachers,
		},
	})
}

// ApproveTeacher godoc
// @Summary      Approve a teacher request
// @Description  Creates the teacher account and marks the request approved
// @Tags         admin
// @Produce      json
// @Param        X-Admin-Secret header string true "Admin secret"
// @Param        id path int true "Request ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /auth/teachers/approve/{id} [post]
func (h *AdminHandler) ApproveTeacher(c *gin.Context) {
	requestID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request id"})
		return
	}

	if err := h.authService.Approve(uint(requestID)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "teacher approved and account created"})
}

// ListTeacherRooms godoc
// @Summary      List all rooms of a teacher
// @Tags         admin
// @Produce      json
// @Param        X-Admin-Secret header string true "Admin secret"
// @Param        id path int true "Teacher ID"
// @Success      200 {object} map[string]interface{}
// @Failure      401 {object} ErrorResponse
// @Router       /auth/admin/teachers/{id}/rooms [get]
func (h *AdminHandler) ListTeacherRooms(c *gin.Context) {
	teacherID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid teacher id"})
		return
	}

	rooms, err := h.roomService.ListTeacherRooms(uint(teacherID))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "rooms": rooms})
}
