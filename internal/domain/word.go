package domain

import (
	"time"

	"github.com/google/uuid"
)

// Word is a surface form, unique by exact writing. A word owns no meaning;
// many senses may reference one word.
type Word struct {
	ID        uuid.UUID
	Writing   string
	CreatedAt time.Time
}

// Meaning is a language-independent definition shared across synonymous
// senses, with the embedding used for nearest-neighbour search.
type Meaning struct {
	ID            uuid.UUID
	DescriptionEn string
	DescriptionTr string
	Embedding     Vector
	CreatedAt     time.Time
}

// ExampleSentence is the EN/TR example pair attached to a sense.
type ExampleSentence struct {
	ID         uuid.UUID
	SentenceEn string
	SentenceTr string
}

// Sense is a (word, meaning, part of speech) triple with one example
// sentence pair — the atomic unit a learner studies and a question targets.
// At most one sense exists per triple; the resolver enforces this before
// insertion and the store backs it with a uniqueness constraint.
type Sense struct {
	ID           uuid.UUID
	WordID       uuid.UUID
	MeaningID    uuid.UUID
	PartOfSpeech PartOfSpeech
	CreatedAt    time.Time

	Word    *Word
	Meaning *Meaning
	Example *ExampleSentence
}

// WordList is a user-owned set of senses. A sense may belong to many lists.
type WordList struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	CreatedAt time.Time

	Senses []Sense
}
