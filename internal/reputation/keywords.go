package reputation

import (
	ahocorasick "github.com/petar-dambovaliev/aho-corasick"
)

// matcher answers "does this text contain any of my keywords" via a small
// case-insensitive Aho-Corasick automaton, one per vocabulary.
type matcher struct {
	ac ahocorasick.AhoCorasick
}

func newMatcher(keywords ...string) *matcher {
	builder := ahocorasick.NewAhoCorasickBuilder(ahocorasick.Opts{
		AsciiCaseInsensitive: true,
		MatchOnlyWholeWords:  false,
		MatchKind:            ahocorasick.LeftMostLongestMatch,
	})
	return &matcher{ac: builder.Build(keywords)}
}

func (m *matcher) matches(text string) bool {
	if text == "" {
		return false
	}
	return len(m.ac.FindAll(text)) > 0
}

// The fixed keyword vocabularies. Matching is substring containment, so a
// label like "okay, sure" trips the stay vocabulary twice but counts once.
var (
	earlyExitWords   = newMatcher("leave", "go", "escape", "run", "ghost", "bathroom")
	stayWords        = newMatcher("stay", "wait", "listen", "okay", "sure", "fine")
	boundaryWords    = newMatcher("no", "stop", "boundary", "refuse", "won't", "don't")
	humorWords       = newMatcher("joke", "laugh", "funny", "kidding", "ironic")
	spreadsheetWords = newMatcher("spreadsheet", "algorithm", "data", "analyze", "system")
	chaosWords       = newMatcher("scene", "yell", "throw", "flip", "chaos")

	// Node-id vocabularies, matched against the id of the node the choice
	// was made on.
	leaveNodeIDs    = newMatcher("leave", "exit")
	stayNodeIDs     = newMatcher("stay")
	analyticNodeIDs = newMatcher("algorithm", "spreadsheet")
)
