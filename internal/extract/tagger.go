package extract

import (
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"
)

// Entity is a recognized named entity.
type Entity struct {
	Text  string
	Label string
}

// Token is a part-of-speech tagged token using Penn Treebank tags.
type Token struct {
	Text string
	Tag  string
}

// Tagger provides named entity recognition and part-of-speech tagging. The
// extractors degrade to pure pattern matching when tagging fails, so
// implementations may return empty results on malformed input.
type Tagger interface {
	Entities(text string) []Entity
	Tokens(text string) []Token
}

// ProseTagger tags text with the prose NLP library.
type ProseTagger struct{}

func NewProseTagger() *ProseTagger {
	return &ProseTagger{}
}

func (t *ProseTagger) Entities(text string) []Entity {
	doc, err := prose.NewDocument(text, prose.WithExtraction(true), prose.WithTagging(false), prose.WithSegmentation(false))
	if err != nil {
		return nil
	}
	ents := doc.Entities()
	out := make([]Entity, 0, len(ents))
	for _, e := range ents {
		out = append(out, Entity{Text: e.Text, Label: e.Label})
	}
	return out
}

func (t *ProseTagger) Tokens(text string) []Token {
	doc, err := prose.NewDocument(text, prose.WithExtraction(false), prose.WithTagging(true))
	if err != nil {
		return nil
	}
	toks := doc.Tokens()
	out := make([]Token, 0, len(toks))
	for _, tok := range toks {
		out = append(out, Token{Text: tok.Text, Tag: tok.Tag})
	}
	return out
}

// HeuristicTagger approximates tagging without a trained model. Capitalized
// multi-word runs become PERSON entities and capitalized words are tagged as
// proper nouns. It keeps the extractors deterministic under test.
type HeuristicTagger struct{}

func NewHeuristicTagger() *HeuristicTagger {
	return &HeuristicTagger{}
}

func (t *HeuristicTagger) Entities(text string) []Entity {
	var out []Entity
	for _, line := range strings.Split(text, "\n") {
		words := strings.Fields(line)
		var run []string
		flush := func() {
			if len(run) >= 2 {
				out = append(out, Entity{Text: strings.Join(run, " "), Label: "PERSON"})
			}
			run = nil
		}
		for _, w := range words {
			if isCapitalizedWord(w) {
				run = append(run, w)
			} else {
				flush()
			}
		}
		flush()
	}
	return out
}

func (t *HeuristicTagger) Tokens(text string) []Token {
	var out []Token
	for _, w := range strings.Fields(text) {
		tag := "NN"
		if isCapitalizedWord(w) {
			tag = "NNP"
		}
		out = append(out, Token{Text: w, Tag: tag})
	}
	return out
}

func isCapitalizedWord(w string) bool {
	r := []rune(w)
	if len(r) == 0 || !unicode.IsUpper(r[0]) {
		return false
	}
	for _, c := range r[1:] {
		if !unicode.IsLetter(c) && c != '.' && c != '\'' && c != '-' {
			return false
		}
	}
	return true
}
