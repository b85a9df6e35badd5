package handlers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wsulistia/kelasku/database"
	"github.com/wsulistia/kelasku/models"
	"github.com/wsulistia/kelasku/services"
)

type CreateTestRequest struct {
	Title     string `json:"title" validate:"required,max=255"`
	IsPretest bool   `json:"is_pretest"`
}

type AddQuestionRequest struct {
	Text          string `json:"text" validate:"required"`
	OptionA       string `json:"option_a"`
	OptionB       string `json:"option_b"`
	OptionC       string `json:"option_c"`
	OptionD       string `json:"option_d"`
	OptionE       string `json:"option_e"`
	CorrectOption string `json:"correct_option" validate:"required,oneof=A B C D E"`
}

type SubmitAttemptRequest struct {
	Answers map[string]string `json:"answers"`
}

// QuestionForStudent strips the answer key before a question leaves the
// server.
type QuestionForStudent struct {
	ID       uuid.UUID `json:"id"`
	Text     string    `json:"text"`
	OptionA  string    `json:"option_a"`
	OptionB  string    `json:"option_b"`
	OptionC  string    `json:"option_c"`
	OptionD  string    `json:"option_d"`
	OptionE  string    `json:"option_e"`
	Position int       `json:"position"`
}

// AttemptEntry is one row of the teacher's results table for a test.
type AttemptEntry struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	SubmittedAt time.Time `json:"submitted_at"`
	Score       float64   `json:"score"`
}

// MyAttemptEntry is one row of a student's own history, joined with the
// test title.
type MyAttemptEntry struct {
	ID          uuid.UUID `json:"id"`
	TestID      uuid.UUID `json:"test_id"`
	TestTitle   string    `json:"test_title"`
	SubmittedAt time.Time `json:"submitted_at"`
	Score       float64   `json:"score"`
}

func CreateTest(c *fiber.Ctx) error {
	var class models.Class
	if err := findByParam(c, &class, "classId"); err != nil {
		return lookupError(c, err, "Class not found")
	}

	var req CreateTestRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Test title cannot be empty"})
	}

	test := models.Test{
		ClassID:   class.ID,
		Title:     title,
		IsPretest: req.IsPretest,
		CreatedBy: currentUserID(c),
	}
	if err := database.DB.Create(&test).Error; err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Storage unavailable"})
	}

	return c.Status(fiber.StatusCreated).JSON(test)
}

func ListTests(c *fiber.Ctx) error {
	var class models.Class
	if err := findByParam(c, &class, "classId"); err != nil {
		return lookupError(c, err, "Class not found")
	}

	var tests []models.Test
	err := database.DB.Where("class_id = ?", class.ID).
		Order("created_at asc, id asc").
		Find(&tests).Error
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Storage unavailable"})
	}

	return c.JSON(tests)
}

// AddQuestion appends to the end of the test. The slot number comes from a
// count read in the same transaction; when two adds race, the unique index
// on (test_id, position) fails the losing insert instead of storing two
// questions in one slot.
func AddQuestion(c *fiber.Ctx) error {
	var test models.Test
	if err := findByParam(c, &test, "testId"); err != nil {
		return lookupError(c, err, "Test not found")
	}

	var req AddQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Question text cannot be empty"})
	}

	question := models.Question{
		TestID:        test.ID,
		Text:          text,
		OptionA:       req.OptionA,
		OptionB:       req.OptionB,
		OptionC:       req.OptionC,
		OptionD:       req.OptionD,
		OptionE:       req.OptionE,
		CorrectOption: req.CorrectOption,
	}
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Question{}).Where("test_id = ?", test.ID).Count(&count).Error; err != nil {
			return err
		}
		question.Position = int(count) + 1
		return tx.Create(&question).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Question position already taken"})
		}
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Storage unavailable"})
	}

	return c.Status(fiber.StatusCreated).JSON(question)
}

// ListQuestions is the authoring view and includes the answer key; the
// route gates it to teachers.
func ListQuestions(c *fiber.Ctx) error {
	var test models.Test
	if err := findByParam(c, &test, "testId"); err != nil {
		return lookupError(c, err, "Test not found")
	}

	var questions []models.Question
	err := database.DB.Where("test_id = ?", test.ID).
		Order("position asc").
		Find(&questions).Error
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Storage unavailable"})
	}

	return c.JSON(questions)
}

// StartTest hands a student the questions without correct options. Nothing
// is persisted; an attempt only exists once it is submitted.
func StartTest(c *fiber.Ctx) error {
	var test models.Test
	if err := findByParam(c, &test, "testId"); err != nil {
		return lookupError(c, err, "Test not found")
	}

	var questions []models.Question
	err := database.DB.Where("test_id = ?", test.ID).
		Order("position asc").
		Find(&questions).Error
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Storage unavailable"})
	}

	questionsForStudent := make([]QuestionForStudent, len(questions))
	for i, q := range questions {
		questionsForStudent[i] = QuestionForStudent{
			ID:       q.ID,
			Text:     q.Text,
			OptionA:  q.OptionA,
			OptionB:  q.OptionB,
			OptionC:  q.OptionC,
			OptionD:  q.OptionD,
			OptionE:  q.OptionE,
			Position: q.Position,
		}
	}

	return c.JSON(fiber.Map{
		"test":      test,
		"questions": questionsForStudent,
	})
}

// SubmitAttempt scores a submission against the question set as it stands
// right now and freezes the result. Answer keys in the request are question
// ids; unknown ids are ignored, options that match no key count as wrong.
func SubmitAttempt(c *fiber.Ctx) error {
	var test models.Test
	if err := findByParam(c, &test, "testId"); err != nil {
		return lookupError(c, err, "Test not found")
	}

	var req SubmitAttemptRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	var questions []models.Question
	err := database.DB.Where("test_id = ?", test.ID).
		Order("position asc").
		Find(&questions).Error
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Storage unavailable"})
	}
	if len(questions) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Test has no questions yet"})
	}

	chosen := make(map[uuid.UUID]string, len(req.Answers))
	for id, option := range req.Answers {
		questionID, err := uuid.Parse(id)
		if err != nil {
			continue
		}
		chosen[questionID] = option
	}

	answers, correctCount := evaluateAnswers(questions, chosen)

	attempt := models.Attempt{
		TestID:      test.ID,
		UserID:      currentUserID(c),
		SubmittedAt: time.Now(),
		Score:       (float64(correctCount) / float64(len(questions))) * 100,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&attempt).Error; err != nil {
			return err
		}
		for i := range answers {
			answers[i].AttemptID = attempt.ID
		}
		if err := tx.Create(&answers).Error; err != nil {
			return err
		}
		message := fmt.Sprintf("%s completed %s", currentDisplayName(c), test.Title)
		_, err := services.PostClassNotification(tx, test.ClassID, message)
		return err
	})
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Storage unavailable"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"attempt": attempt,
		"answers": answers,
	})
}

// evaluateAnswers walks the test's questions and grades the chosen options.
// Every question produces exactly one Answer row; a question the caller
// skipped keeps an empty ChosenOption and counts as wrong.
func evaluateAnswers(questions []models.Question, chosen map[uuid.UUID]string) ([]models.Answer, int) {
	answers := make([]models.Answer, 0, len(questions))
	correctCount := 0

	for _, q := range questions {
		option := chosen[q.ID]
		if option == q.CorrectOption {
			correctCount++
		}
		answers = append(answers, models.Answer{
			QuestionID:   q.ID,
			ChosenOption: option,
		})
	}
	return answers, correctCount
}

func ListTestAttempts(c *fiber.Ctx) error {
	var test models.Test
	if err := findByParam(c, &test, "testId"); err != nil {
		return lookupError(c, err, "Test not found")
	}

	var entries []AttemptEntry
	err := database.DB.Model(&models.Attempt{}).
		Select("attempts.id, attempts.submitted_at, attempts.score, users.username, users.display_name").
		Joins("JOIN users ON users.id = attempts.user_id").
		Where("attempts.test_id = ?", test.ID).
		Order("attempts.submitted_at desc").
		Scan(&entries).Error
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Storage unavailable"})
	}

	return c.JSON(entries)
}

func ListMyAttempts(c *fiber.Ctx) error {
	var entries []MyAttemptEntry
	err := database.DB.Model(&models.Attempt{}).
		Select("attempts.id, attempts.test_id, attempts.submitted_at, attempts.score, tests.title AS test_title").
		Joins("JOIN tests ON tests.id = attempts.test_id").
		Where("attempts.user_id = ?", currentUserID(c)).
		Order("attempts.submitted_at desc").
		Scan(&entries).Error
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "Storage unavailable"})
	}

	return c.JSON(entries)
}
