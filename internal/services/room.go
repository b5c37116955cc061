package services

import (
	"math/rand"

	"questup-backend/internal/models"

	"gorm.io/gorm"
)

const (
	roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	roomCodeLength   = 6

	// With 36^6 possible codes, collisions are rare at any realistic room
	// count; the cap turns an exhausted code space into an error instead of
	// an unbounded loop.
	maxCodeAttempts = 10
)

type RoomService struct {
	db *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{db: db}
}

func (s *RoomService) CreateRoom(ownerID uint, title string) (*models.Room, error) {
	code, err := s.generateUniqueCode()
	if err != nil {
		return nil, err
	}

	room := models.Room{
		Title:    title,
		RoomCode: code,
		OwnerID:  ownerID,
		IsOpen:   true,
	}
	if err := s.db.Create(&room).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// GetRoom is owner-scoped: a teacher cannot see another teacher's room here.
func (s *RoomService) GetRoom(ownerID, roomID uint) (*models.Room, error) {
	var room models.Room
	if err := s.db.Where("id = ? AND owner_id = ?", roomID, ownerID).First(&room).Error; err != nil {
		return nil, ErrRoomNotFound
	}
	return &room, nil
}

// JoinByCode is the public lookup. Closed and nonexistent codes are
// indistinguishable so callers cannot probe which codes exist.
func (s *RoomService) JoinByCode(code string) (*models.Room, error) {
	var room models.Room
	if err := s.db.Where("room_code = ? AND is_open = ?", code, true).First(&room).Error; err != nil {
		return nil, ErrRoomNotFoundOrClosed
	}
	return &room, nil
}

// CloseRoom is idempotent; closing an already-closed room succeeds. There is
// no reopen path.
func (s *RoomService) CloseRoom(ownerID, roomID uint) error {
	var room models.Room
	if err := s.db.Where("id = ? AND owner_id = ?", roomID, ownerID).First(&room).Error; err != nil {
		return ErrRoomNotFound
	}
	room.IsOpen = false
	return s.db.Save(&room).Error
}

type RoomSummary struct {
	models.Room
	QuestionCount    int64 `json:"question_count"`
	ParticipantCount int64 `json:"participant_count"`
}

// ListMyRooms returns the owner's rooms newest-first. ParticipantCount is the
// number of distinct non-null student names, not a verified identity count.
func (s *RoomService) ListMyRooms(ownerID uint) ([]RoomSummary, error) {
	var rooms []models.Room
	if err := s.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&rooms).Error; err != nil {
		return nil, err
	}

	summaries := make([]RoomSummary, 0, len(rooms))
	for _, room := range rooms {
		var questions, participants int64
		if err := s.db.Model(&models.Question{}).Where("room_id = ?", room.ID).Count(&questions).Error; err != nil {
			return nil, err
		}
		if err := s.db.Model(&models.Question{}).
			Where("room_id = ? AND student_name IS NOT NULL", room.ID).
			Distinct("student_name").
			Count(&participants).Error; err != nil {
			return nil, err
		}
		summaries = append(summaries, RoomSummary{
			Room:             room,
			QuestionCount:    questions,
			ParticipantCount: participants,
		})
	}
	return summaries, nil
}

// ListTeacherRooms returns all rooms of a teacher regardless of state.
// Admin inspection only.
func (s *RoomService) ListTeacherRooms(teacherID uint) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.db.Where("owner_id = ?", teacherID).Order("created_at DESC").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

// GetRoomByID is unscoped; admin export only.
func (s *RoomService) GetRoomByID(roomID uint) (*models.Room, error) {
	var room models.Room
	if err := s.db.First(&room, roomID).Error; err != nil {
		return nil, ErrRoomNotFound
	}
	return &room, nil
}

func (s *RoomService) generateUniqueCode() (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := randomCode()
		var count int64
		if err := s.db.Model(&models.Room{}).Where("room_code = ?", code).Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return code, nil
		}
	}
	return "", ErrCodeSpaceExhausted
}

func randomCode() string {
	b := make([]byte, roomCodeLength)
	for i := range b {
		b[i] = roomCodeAlphabet[rand.Intn(len(roomCodeAlphabet))]
	}
	return string(b)
}
