package models

import (
	"time"

	examplemodels "lexicon-manager/feature/example/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Word is a canonical dictionary record. Definitions, variations, and stems
// carry no duplicate values; ExampleIDs are unique identifiers of existing
// Example records.
type Word struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Word        string    `gorm:"index;not null" json:"word"`
	WordClass   string    `json:"wordClass"`
	Definitions []string  `gorm:"serializer:json" json:"definitions"`
	Variations  []string  `gorm:"serializer:json" json:"variations"`
	Stems       []string  `gorm:"serializer:json" json:"stems"`
	ExampleIDs  []string  `gorm:"serializer:json" json:"examples"`
	Version     int       `gorm:"not null;default:0" json:"-"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Word) TableName() string {
	return "words"
}

func (w *Word) BeforeCreate(*gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}

// PopulatedWord is a Word with its example references resolved.
type PopulatedWord struct {
	Word
	Examples []examplemodels.Example `json:"resolvedExamples"`
}

// ExampleDraft is an example sentence embedded in a word suggestion's
// create path. Drafts become canonical Examples when the word is merged.
type ExampleDraft struct {
	Igbo    string `json:"igbo"`
	English string `json:"english"`
}

// WordSuggestion is a user-submitted proposal for a new or edited Word.
// OriginalWordID present means this edits an existing canonical record;
// absent means it proposes a new one.
type WordSuggestion struct {
	ID             string                    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Word           string                    `gorm:"index;not null" json:"word"`
	WordClass      string                    `json:"wordClass"`
	Definitions    []string                  `gorm:"serializer:json" json:"definitions"`
	Variations     []string                  `gorm:"serializer:json" json:"variations"`
	Stems          []string                  `gorm:"serializer:json" json:"stems"`
	Examples       []ExampleDraft            `gorm:"serializer:json" json:"examples"`
	OriginalWordID *string                   `gorm:"type:varchar(36);index" json:"originalWordId,omitempty"`
	AuthorID       string                    `gorm:"type:varchar(36);index" json:"authorId"`
	Merged         *examplemodels.MergeStamp `gorm:"serializer:json" json:"merged,omitempty"`
	Version        int                       `gorm:"not null;default:0" json:"-"`
	CreatedAt      time.Time                 `json:"createdAt"`
	UpdatedAt      time.Time                 `json:"updatedAt"`
}

func (WordSuggestion) TableName() string {
	return "word_suggestions"
}

func (s *WordSuggestion) BeforeCreate(*gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// IsMerged reports whether the suggestion already carries a merge stamp.
func (s *WordSuggestion) IsMerged() bool {
	return s.Merged != nil
}

// MergeIntent is the durable record written before a word merge cascade
// starts. Each nested step is planned before its suggestion is retargeted
// and completed once its merge finishes, so a retried merge resumes where
// the previous attempt stopped instead of re-running (and re-creating)
// already-merged nested examples.
type MergeIntent struct {
	ID              string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	SuggestionID    string    `gorm:"type:varchar(36);uniqueIndex" json:"suggestionId"`
	CanonicalWordID string    `gorm:"type:varchar(36)" json:"canonicalWordId"`
	PlannedSteps    []string  `gorm:"serializer:json" json:"plannedSteps"`
	CompletedSteps  []string  `gorm:"serializer:json" json:"completedSteps"`
	Done            bool      `gorm:"not null;default:false" json:"done"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (MergeIntent) TableName() string {
	return "merge_intents"
}

func (m *MergeIntent) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// StepDone reports whether a nested suggestion id was already processed.
func (m *MergeIntent) StepDone(suggestionID string) bool {
	for _, s := range m.CompletedSteps {
		if s == suggestionID {
			return true
		}
	}
	return false
}

// StepPlanned reports whether a nested suggestion id was already recorded
// for retargeting.
func (m *MergeIntent) StepPlanned(suggestionID string) bool {
	for _, s := range m.PlannedSteps {
		if s == suggestionID {
			return true
		}
	}
	return false
}
