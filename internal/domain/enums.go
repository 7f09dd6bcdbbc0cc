package domain

// PartOfSpeech is the grammatical category the analyzer assigned to a sense.
// Values are lowercase because that is what the lexical analyzer emits.
type PartOfSpeech string

const (
	PartOfSpeechNoun         PartOfSpeech = "noun"
	PartOfSpeechVerb         PartOfSpeech = "verb"
	PartOfSpeechAdjective    PartOfSpeech = "adjective"
	PartOfSpeechAdverb       PartOfSpeech = "adverb"
	PartOfSpeechPronoun      PartOfSpeech = "pronoun"
	PartOfSpeechPreposition  PartOfSpeech = "preposition"
	PartOfSpeechConjunction  PartOfSpeech = "conjunction"
	PartOfSpeechInterjection PartOfSpeech = "interjection"
	PartOfSpeechPhrase       PartOfSpeech = "phrase"
	PartOfSpeechOther        PartOfSpeech = "other"
)

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechAdjective, PartOfSpeechAdverb,
		PartOfSpeechPronoun, PartOfSpeechPreposition, PartOfSpeechConjunction,
		PartOfSpeechInterjection, PartOfSpeechPhrase, PartOfSpeechOther:
		return true
	}
	return false
}

// QuestionType identifies how a quiz question is presented and answered.
type QuestionType string

const (
	QuestionTypeMultipleChoice  QuestionType = "MULTIPLE_CHOICE"
	QuestionTypeFillInBlank     QuestionType = "FILL_IN_THE_BLANK"
	QuestionTypeSynonymMatching QuestionType = "SYNONYM_MATCHING"
)

func (t QuestionType) String() string { return string(t) }

func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionTypeMultipleChoice, QuestionTypeFillInBlank, QuestionTypeSynonymMatching:
		return true
	}
	return false
}
