package data

import (
	"errors"
	"math/rand/v2"
)

// ErrNoPhrases is returned when a PhraseSet is built from an empty list
var ErrNoPhrases = errors.New("phrase set must not be empty")

// StatusOK is the status value reported by the health endpoint
const StatusOK = "ok"

// DefaultPhrases returns the fixed phrases served by the API
func DefaultPhrases() []string {
	return []string{
		"I Love Sabich",
		"Kama Lasim Bapita?",
		"Ein al falafel",
		"And Also Tchina!",
	}
}

// PhraseSet holds an immutable, ordered list of phrases and the picker used to draw from it
type PhraseSet struct {
	phrases []string
	pick    func(n int) int
}

// NewPhraseSet copies phrases into a new set. A nil pick draws uniformly with math/rand/v2
func NewPhraseSet(phrases []string, pick func(n int) int) (PhraseSet, error) {
	if len(phrases) == 0 {
		return PhraseSet{}, ErrNoPhrases
	}

	if pick == nil {
		pick = rand.IntN
	}

	return PhraseSet{
		phrases: append([]string(nil), phrases...),
		pick:    pick,
	}, nil
}

func (s PhraseSet) contains(phrase string) bool {
	for _, p := range s.phrases {
		if p == phrase {
			return true
		}
	}

	return false
}

// Random returns one phrase, drawn independently on every call. The zero PhraseSet
// has no phrases and returns ""
func (s PhraseSet) Random() string {
	if len(s.phrases) == 0 {
		return ""
	}

	pick := s.pick
	if pick == nil {
		pick = rand.IntN
	}

	return s.phrases[pick(len(s.phrases))]
}

// Payload is the JSON body written by the phrase endpoints. Field order is the wire order
type Payload struct {
	Status  string `json:"status,omitempty"`
	Message string `json:"message"`
	Version string `json:"version"`
}

// NewPayload builds a response body with a freshly drawn phrase
func (s PhraseSet) NewPayload(version string) Payload {
	return Payload{
		Message: s.Random(),
		Version: version,
	}
}

// NewHealthPayload is NewPayload with the status field set
func (s PhraseSet) NewHealthPayload(version string) Payload {
	p := s.NewPayload(version)
	p.Status = StatusOK

	return p
}
