package services

import (
	"sort"

	"questup-backend/internal/config"
	"questup-backend/internal/models"

	"gorm.io/gorm"
)

type QuestionService struct {
	db      *gorm.DB
	scoring string
}

func NewQuestionService(db *gorm.DB, scoring string) *QuestionService {
	if scoring != config.VoteScoringNet {
		scoring = config.VoteScoringUp
	}
	return &QuestionService{db: db, scoring: scoring}
}

type QuestionInput struct {
	Title       string
	Description *string
	StudentName *string
}

// PostQuestion requires an open room but no authentication; students post
// anonymously or under a free-form name.
func (s *QuestionService) PostQuestion(roomID uint, input QuestionInput) (*models.Question, error) {
	var room models.Room
	if err := s.db.Where("id = ? AND is_open = ?", roomID, true).First(&room).Error; err != nil {
		return nil, ErrRoomNotFoundOrClosed
	}

	q := models.Question{
		RoomID:      roomID,
		Title:       input.Title,
		Description: input.Description,
		StudentName: input.StudentName,
	}
	if err := s.db.Create(&q).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

type QuestionWithVotes struct {
	models.Question
	VoteCount int64 `json:"votes"`
}

// ListQuestions returns the room's questions with their scores. sortMode
// "votes" orders by descending score with newest-first ties; anything else
// means "recent", descending creation time.
func (s *QuestionService) ListQuestions(roomID uint, sortMode string) ([]QuestionWithVotes, error) {
	var room models.Room
	if err := s.db.First(&room, roomID).Error; err != nil {
		return nil, ErrRoomNotFound
	}

	var questions []models.Question
	if err := s.db.Where("room_id = ?", roomID).Find(&questions).Error; err != nil {
		return nil, err
	}

	results := make([]QuestionWithVotes, 0, len(questions))
	for _, q := range questions {
		score, err := s.scoreFor(q.ID)
		if err != nil {
			return nil, err
		}
		results = append(results, QuestionWithVotes{
			Question:  q,
			VoteCount: score,
		})
	}

	if sortMode == "votes" {
		sort.Slice(results, func(i, j int) bool {
			if results[i].VoteCount != results[j].VoteCount {
				return results[i].VoteCount > results[j].VoteCount
			}
			return results[i].CreatedAt.After(results[j].CreatedAt)
		})
	} else {
		sort.Slice(results, func(i, j int) bool {
			return results[i].CreatedAt.After(results[j].CreatedAt)
		})
	}
	return results, nil
}

func (s *QuestionService) scoreFor(questionID uint) (int64, error) {
	var up int64
	if err := s.db.Model(&models.QuestionVote{}).
		Where("question_id = ? AND vote_type = ?", questionID, models.VoteTypeUp).
		Count(&up).Error; err != nil {
		return 0, err
	}

	if s.scoring != config.VoteScoringNet {
		return up, nil
	}

	var down int64
	if err := s.db.Model(&models.QuestionVote{}).
		Where("question_id = ? AND vote_type = ?", questionID, models.VoteTypeDown).
		Count(&down).Error; err != nil {
		return 0, err
	}
	return up - down, nil
}

// MarkSolved flips is_solved for the room owner. Callers who do not own the
// question's room get ErrNotRoomOwner whether or not the question exists.
func (s *QuestionService) MarkSolved(questionID, teacherID uint) (*models.Question, error) {
	var q models.Question
	err := s.db.Joins("JOIN rooms ON rooms.id = questions.room_id").
		Where("questions.id = ? AND rooms.owner_id = ?", questionID, teacherID).
		First(&q).Error
	if err != nil {
		return nil, ErrNotRoomOwner
	}

	q.IsSolved = true
	if err := s.db.Save(&q).Error; err != nil {
		return nil, err
	}
	return &q, nil
}

// CastVote records an immutable vote. A voter token may vote once per
// question; tokenless votes are accepted without deduplication.
func (s *QuestionService) CastVote(questionID uint, voteType string, voterToken *string) (*models.QuestionVote, error) {
	if voteType != models.VoteTypeUp && voteType != models.VoteTypeDown {
		return nil, ErrInvalidVoteType
	}

	var q models.Question
	if err := s.db.First(&q, questionID).Error; err != nil {
		return nil, ErrQuestionNotFound
	}

	if voterToken != nil && *voterToken == "" {
		voterToken = nil
	}
	if voterToken != nil {
		var existing models.QuestionVote
		err := s.db.Where("question_id = ? AND voter_token = ?", questionID, *voterToken).
			First(&existing).Error
		if err == nil {
			return nil, ErrAlreadyVoted
		}
	}

	vote := models.QuestionVote{
		QuestionID: questionID,
		VoterToken: voterToken,
		VoteType:   voteType,
	}
	if err := s.db.Create(&vote).Error; err != nil {
		// The unique index backstops the check above under concurrent casts.
		if voterToken != nil {
			return nil, ErrAlreadyVoted
		}
		return nil, err
	}
	return &vote, nil
}
