package questions

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/mathmentor/mathmentor/internal/answer"
)

// Store is a read-only, in-memory question catalog with random sampling.
// All sampling is without replacement within a single call: a returned
// set never contains the same question ID twice. No ordering or
// repeat-avoidance is guaranteed across calls.
type Store struct {
	catalog []Question
	rng     *rand.Rand
}

// New creates a Store over the built-in catalog with a time-seeded
// random source.
func New() (*Store, error) {
	return NewWithCatalog(Catalog(), rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// NewWithCatalog creates a Store over the given catalog and random
// source. Tests pass a seeded rng for deterministic sampling.
//
// Load-time validation rejects duplicate IDs and questions whose
// normalized correct answer is empty; a blank submission must never be
// gradeable as correct.
func NewWithCatalog(catalog []Question, rng *rand.Rand) (*Store, error) {
	seen := make(map[string]bool, len(catalog))
	for _, q := range catalog {
		if q.ID == "" {
			return nil, fmt.Errorf("question with empty id (prompt %q)", q.Prompt)
		}
		if seen[q.ID] {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		seen[q.ID] = true
		if answer.Normalize(q.CorrectAnswer) == "" {
			return nil, fmt.Errorf("question %q has a blank correct answer", q.ID)
		}
	}
	return &Store{catalog: slices.Clone(catalog), rng: rng}, nil
}

// Len returns the catalog size.
func (s *Store) Len() int {
	return len(s.catalog)
}

// ByTopicAndDifficulty returns up to count questions matching both topic
// and difficulty exactly, sampled uniformly without replacement. An
// empty result is not an error; callers surface it as "no questions
// available".
func (s *Store) ByTopicAndDifficulty(topic string, difficulty, count int) []Question {
	return s.sample(count, func(q Question) bool {
		return q.Topic == topic && q.Difficulty == difficulty
	})
}

// Random returns up to count questions sampled uniformly from the whole
// catalog.
func (s *Store) Random(count int) []Question {
	return s.sample(count, func(Question) bool { return true })
}

// WeakAreas returns up to count questions whose topic is in topics,
// sampled uniformly without replacement.
func (s *Store) WeakAreas(topics []string, count int) []Question {
	return s.sample(count, func(q Question) bool {
		return slices.Contains(topics, q.Topic)
	})
}

// sample filters the catalog, shuffles the matches, and slices off the
// first count entries.
func (s *Store) sample(count int, match func(Question) bool) []Question {
	if count <= 0 {
		return []Question{}
	}

	matched := make([]Question, 0, len(s.catalog))
	for _, q := range s.catalog {
		if match(q) {
			matched = append(matched, q)
		}
	}

	s.rng.Shuffle(len(matched), func(i, j int) {
		matched[i], matched[j] = matched[j], matched[i]
	})

	if count < len(matched) {
		matched = matched[:count]
	}
	return matched
}
