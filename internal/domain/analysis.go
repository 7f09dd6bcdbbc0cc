package domain

// WordAnalysis is the structured result the lexical analyzer returns for a
// word-in-sentence query.
type WordAnalysis struct {
	Lemma        string
	PartOfSpeech PartOfSpeech
	MeaningEn    string
	MeaningTr    string
	ExampleEn    string
	ExampleTr    string
	Synonyms     []SynonymCandidate
}

// SynonymCandidate is one analyzer-suggested synonym together with a
// sentence demonstrating it, used as the input of recursive resolution.
type SynonymCandidate struct {
	Word            string
	ExampleSentence string
}

// CanonicalText is the text embedded and compared for meaning equivalence:
// lemma and English definition joined the way the catalog stores them.
func (a WordAnalysis) CanonicalText() string {
	return a.Lemma + " : " + a.MeaningEn
}
