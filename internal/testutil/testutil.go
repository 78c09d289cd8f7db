package testutil

import (
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/lshigami/quickpoll/database"
	"github.com/lshigami/quickpoll/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Now is the fixed instant tests run at.
var Now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// SetupTestDB opens a fresh file-backed SQLite database with the poll schema.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "quickpoll_test.db")
	db, err := gorm.Open(sqlite.Open(database.SQLiteDSN(path)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get sql handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}
	return db
}

// DaysFrom offsets now by a fractional number of days: negative for the past,
// positive for the future.
func DaysFrom(now time.Time, days float64) time.Time {
	return now.Add(time.Duration(days * float64(24*time.Hour)))
}

// CreateQuestion inserts a question published days away from Now. Unless
// withoutChoice is set it also gets a default choice.
func CreateQuestion(t *testing.T, db *gorm.DB, text string, days float64, withoutChoice bool) *model.Question {
	t.Helper()

	q := &model.Question{QuestionText: text, PubDate: DaysFrom(Now, days)}
	if err := db.Create(q).Error; err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}
	if !withoutChoice {
		AddChoice(t, db, q.ID, "A default choice.")
	}
	return q
}

// AddChoice attaches a choice to an existing question.
func AddChoice(t *testing.T, db *gorm.DB, questionID uint, text string) *model.Choice {
	t.Helper()

	c := &model.Choice{QuestionID: questionID, ChoiceText: text}
	if err := db.Create(c).Error; err != nil {
		t.Fatalf("Failed to create test choice: %v", err)
	}
	return c
}

// Votes reads the persisted vote count of a choice.
func Votes(t *testing.T, db *gorm.DB, choiceID uint) uint {
	t.Helper()

	var c model.Choice
	if err := db.First(&c, choiceID).Error; err != nil {
		t.Fatalf("Failed to load choice %d: %v", choiceID, err)
	}
	return c.Votes
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertContains checks that the response body contains text.
func AssertContains(t *testing.T, w *httptest.ResponseRecorder, text string) {
	t.Helper()
	if !strings.Contains(w.Body.String(), text) {
		t.Errorf("Expected body to contain %q. Body: %s", text, w.Body.String())
	}
}
