package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"questup-backend/internal/models"
)

func TestCreateRoomCodeProperties(t *testing.T) {
	db := setupTestDB(t)
	s := NewRoomService(db)
	teacher := createTestTeacher(t, db, "ada@school.edu")

	seen := make(map[string]bool)
	for i := 0; i < 30; i++ {
		room, err := s.CreateRoom(teacher.ID, "Algebra")
		if err != nil {
			t.Fatalf("CreateRoom failed: %v", err)
		}
		if len(room.RoomCode) != roomCodeLength {
			t.Fatalf("room code %q is not %d characters", room.RoomCode, roomCodeLength)
		}
		for _, ch := range room.RoomCode {
			if !strings.ContainsRune(roomCodeAlphabet, ch) {
				t.Fatalf("room code %q contains %q outside [A-Z0-9]", room.RoomCode, ch)
			}
		}
		if seen[room.RoomCode] {
			t.Fatalf("room code %q issued twice", room.RoomCode)
		}
		seen[room.RoomCode] = true

		if !room.IsOpen {
			t.Error("new room should be open")
		}
	}
}

func TestGetRoomOwnerScoped(t *testing.T) {
	db := setupTestDB(t)
	s := NewRoomService(db)
	owner := createTestTeacher(t, db, "owner@school.edu")
	other := createTestTeacher(t, db, "other@school.edu")
	room := createTestRoom(t, db, owner.ID, "AAAAAA", true)

	got, err := s.GetRoom(owner.ID, room.ID)
	if err != nil {
		t.Fatalf("owner GetRoom failed: %v", err)
	}
	if got.ID != room.ID {
		t.Errorf("expected room %d, got %d", room.ID, got.ID)
	}

	if _, err := s.GetRoom(other.ID, room.ID); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("expected ErrRoomNotFound for non-owner, got %v", err)
	}
}

func TestJoinByCode(t *testing.T) {
	db := setupTestDB(t)
	s := NewRoomService(db)
	owner := createTestTeacher(t, db, "owner@school.edu")
	createTestRoom(t, db, owner.ID, "OPENRM", true)
	createTestRoom(t, db, owner.ID, "CLOSED", false)

	room, err := s.JoinByCode("OPENRM")
	if err != nil {
		t.Fatalf("JoinByCode failed: %v", err)
	}
	if room.RoomCode != "OPENRM" {
		t.Errorf("expected code OPENRM, got %q", room.RoomCode)
	}

	// Closed and nonexistent codes must be indistinguishable.
	_, closedErr := s.JoinByCode("CLOSED")
	_, missingErr := s.JoinByCode("NOSUCH")
	if !errors.Is(closedErr, ErrRoomNotFoundOrClosed) {
		t.Errorf("expected ErrRoomNotFoundOrClosed for closed room, got %v", closedErr)
	}
	if !errors.Is(missingErr, ErrRoomNotFoundOrClosed) {
		t.Errorf("expected ErrRoomNotFoundOrClosed for missing room, got %v", missingErr)
	}
}

func TestCloseRoomIdempotent(t *testing.T) {
	db := setupTestDB(t)
	s := NewRoomService(db)
	owner := createTestTeacher(t, db, "owner@school.edu")
	other := createTestTeacher(t, db, "other@school.edu")
	room := createTestRoom(t, db, owner.ID, "AAAAAA", true)

	if err := s.CloseRoom(other.ID, room.ID); !errors.Is(err, ErrRoomNotFound) {
		t.Errorf("expected ErrRoomNotFound for non-owner close, got %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := s.CloseRoom(owner.ID, room.ID); err != nil {
			t.Fatalf("close #%d failed: %v", i+1, err)
		}
		got, err := s.GetRoom(owner.ID, room.ID)
		if err != nil {
			t.Fatalf("GetRoom after close failed: %v", err)
		}
		if got.IsOpen {
			t.Fatalf("room still open after close #%d", i+1)
		}
	}
}

func TestListMyRooms(t *testing.T) {
	db := setupTestDB(t)
	s := NewRoomService(db)
	owner := createTestTeacher(t, db, "owner@school.edu")

	now := time.Now()
	older := createTestRoom(t, db, owner.ID, "AAAAAA", true)
	db.Model(older).Update("created_at", now.Add(-time.Hour))
	newer := createTestRoom(t, db, owner.ID, "BBBBBB", true)
	db.Model(newer).Update("created_at", now)

	// Three questions, two named by the same student, one anonymous.
	createTestQuestion(t, db, older.ID, "q1", strPtr("alice"), now)
	createTestQuestion(t, db, older.ID, "q2", strPtr("alice"), now)
	createTestQuestion(t, db, older.ID, "q3", nil, now)

	summaries, err := s.ListMyRooms(owner.ID)
	if err != nil {
		t.Fatalf("ListMyRooms failed: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}
	if summaries[0].ID != newer.ID {
		t.Errorf("expected newest room first, got room %d", summaries[0].ID)
	}

	var withQuestions RoomSummary
	for _, sum := range summaries {
		if sum.ID == older.ID {
			withQuestions = sum
		}
	}
	if withQuestions.QuestionCount != 3 {
		t.Errorf("expected question_count 3, got %d", withQuestions.QuestionCount)
	}
	if withQuestions.ParticipantCount != 1 {
		t.Errorf("expected participant_count 1 (distinct named students), got %d", withQuestions.ParticipantCount)
	}
}

func TestListMyRoomsCountError(t *testing.T) {
	db := setupTestDB(t)
	s := NewRoomService(db)
	owner := createTestTeacher(t, db, "owner@school.edu")
	createTestRoom(t, db, owner.ID, "AAAAAA", true)

	if err := db.Migrator().DropTable(&models.Question{}); err != nil {
		t.Fatalf("failed to drop questions table: %v", err)
	}

	// A failed question count must surface, not report empty rooms.
	if _, err := s.ListMyRooms(owner.ID); err == nil {
		t.Fatal("expected error when question counting fails")
	}
}

func TestCreateRoomStoreError(t *testing.T) {
	db := setupTestDB(t)
	s := NewRoomService(db)
	owner := createTestTeacher(t, db, "owner@school.edu")

	if err := db.Migrator().DropTable(&models.Room{}); err != nil {
		t.Fatalf("failed to drop rooms table: %v", err)
	}

	// A failed uniqueness check must surface instead of treating the code
	// as free.
	if _, err := s.CreateRoom(owner.ID, "Algebra"); err == nil {
		t.Fatal("expected error when the code uniqueness check fails")
	}
}
