package handlers

import (
	"net/http"
	"strconv"

	"questup-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questionService *services.QuestionService
}

func NewQuestionHandler(questionService *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

type PostQuestionRequest struct {
	Title       string  `json:"title" binding:"required,max=255" example:"What is x?"`
	Description *string `json:"description" example:"Slide 12, second equation"`
	StudentName *string `json:"student_name" example:"maria"`
}

type VoteRequest struct {
	VoteType   string  `json:"vote_type" binding:"required" example:"up"`
	VoterToken *string `json:"voter_token" example:"d3adb33f"`
}

// PostQuestion godoc
// @Summary      Post a question to an open room
// @Description  Anonymous; no authentication required from the poster
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        id path int true "Room ID"
// @Param        request body PostQuestionRequest true "Question data"
// @Success      201 {object} map[string]interface{}
// @Failure      404 {object} ErrorResponse
// @Router       /rooms/{id}/questions [post]
func (h *QuestionHandler) PostQuestion(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid room id"})
		return
	}

	var req PostQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	question, err := h.questionService.PostQuestion(uint(roomID), services.QuestionInput{
		Title:       req.Title,
		Description: req.Description,
		StudentName: req.StudentName,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, question)
}

// ListQuestions godoc
// @Summary      List questions in a room with vote counts
// @Tags         questions
// @Produce      json
// @Param        id path int true "Room ID"
// @Param        sort query string false "Sort mode" Enums(recent, votes) default(recent)
// @Success      200 {object} map[string]interface{}
// @Failure      404 {object} ErrorResponse
// @Router       /rooms/{id}/questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid room id"})
		return
	}

	questions, err := h.questionService.ListQuestions(uint(roomID), c.DefaultQuery("sort", "recent"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "questions": questions})
}

// MarkSolved godoc
// @Summary      Mark a question solved
// @Description  Room owner only; solving is one-way
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Question ID"
// @Success      200 {object} map[string]interface{}
// @Failure      403 {object} ErrorResponse
// @Router       /questions/{id}/solve [post]
func (h *QuestionHandler) MarkSolved(c *gin.Context) {
	teacherID := c.GetUint("teacher_id")
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid question id"})
		return
	}

	question, err := h.questionService.MarkSolved(uint(questionID), teacherID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, question)
}

// CastVote godoc
// @Summary      Vote on a question
// @Description  Anonymous; one vote per voter token per question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        id path int true "Question ID"
// @Param        request body VoteRequest true "Vote data"
// @Success      201 {object} map[string]interface{}
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /questions/{id}/vote [post]
func (h *QuestionHandler) CastVote(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid question id"})
		return
	}

	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	vote, err := h.questionService.CastVote(uint(questionID), req.VoteType, req.VoterToken)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "vote_id": vote.ID})
}
