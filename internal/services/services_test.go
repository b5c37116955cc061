package services

import (
	"testing"
	"time"

	"questup-backend/internal/database"
	"questup-backend/internal/models"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createTestTeacher(t *testing.T, db *gorm.DB, email string) *models.Teacher {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	teacher := &models.Teacher{Name: "Test Teacher", Email: email, PasswordHash: string(hash)}
	if err := db.Create(teacher).Error; err != nil {
		t.Fatalf("failed to create test teacher: %v", err)
	}
	return teacher
}

func createTestRoom(t *testing.T, db *gorm.DB, ownerID uint, code string, open bool) *models.Room {
	t.Helper()

	room := &models.Room{Title: "Test Room", RoomCode: code, OwnerID: ownerID, IsOpen: open}
	if err := db.Create(room).Error; err != nil {
		t.Fatalf("failed to create test room: %v", err)
	}
	if !open {
		// default:true would override a zero-value IsOpen on insert
		if err := db.Model(room).Update("is_open", false).Error; err != nil {
			t.Fatalf("failed to close test room: %v", err)
		}
		room.IsOpen = false
	}
	return room
}

func createTestQuestion(t *testing.T, db *gorm.DB, roomID uint, title string, studentName *string, createdAt time.Time) *models.Question {
	t.Helper()

	q := &models.Question{RoomID: roomID, Title: title, StudentName: studentName, CreatedAt: createdAt}
	if err := db.Create(q).Error; err != nil {
		t.Fatalf("failed to create test question: %v", err)
	}
	return q
}

func castTestVote(t *testing.T, db *gorm.DB, questionID uint, voteType string) {
	t.Helper()

	if err := db.Create(&models.QuestionVote{QuestionID: questionID, VoteType: voteType}).Error; err != nil {
		t.Fatalf("failed to create test vote: %v", err)
	}
}

func strPtr(s string) *string { return &s }
