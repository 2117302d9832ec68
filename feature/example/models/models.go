package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MergeStamp records who merged a suggestion and when. It lives on the
// suggestion document itself and is the authoritative "this suggestion has
// been merged" marker.
type MergeStamp struct {
	MergedBy string    `json:"mergedBy"`
	MergedAt time.Time `json:"mergedAt"`
}

// Example is a canonical example sentence. Examples may be shared across
// multiple words through AssociatedWords; a word references examples but
// does not own the documents.
type Example struct {
	ID              string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Igbo            string    `json:"igbo"`
	English         string    `json:"english"`
	AssociatedWords []string  `gorm:"serializer:json" json:"associatedWords"`
	Version         int       `gorm:"not null;default:0" json:"-"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (Example) TableName() string {
	return "examples"
}

func (e *Example) BeforeCreate(*gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// ExampleSuggestion is a user-submitted proposal for a new or edited
// Example. OriginalExampleID present means this edits an existing canonical
// record; absent means it proposes a new one. Until merge time, suggestions
// reference their parent word suggestion's id in AssociatedWords.
type ExampleSuggestion struct {
	ID                string      `gorm:"type:varchar(36);primaryKey" json:"id"`
	Igbo              string      `json:"igbo"`
	English           string      `json:"english"`
	AssociatedWords   []string    `gorm:"serializer:json" json:"associatedWords"`
	OriginalExampleID *string     `gorm:"type:varchar(36)" json:"originalExampleId,omitempty"`
	AuthorID          string      `gorm:"type:varchar(36);index" json:"authorId"`
	Merged            *MergeStamp `gorm:"serializer:json" json:"merged,omitempty"`
	Version           int         `gorm:"not null;default:0" json:"-"`
	CreatedAt         time.Time   `json:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt"`
}

func (ExampleSuggestion) TableName() string {
	return "example_suggestions"
}

func (s *ExampleSuggestion) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// IsMerged reports whether the suggestion already carries a merge stamp.
func (s *ExampleSuggestion) IsMerged() bool {
	return s.Merged != nil
}
