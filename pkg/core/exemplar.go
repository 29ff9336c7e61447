package core

import "errors"

var (
	// ErrEmptyExemplarSet is returned when an operation needs at least
	// one exemplar to determine the question and answer keys.
	ErrEmptyExemplarSet = errors.New("core: exemplar set is empty")

	// ErrTooFewFields is returned when an exemplar does not carry the
	// two leading fields that hold its question and answer.
	ErrTooFewFields = errors.New("core: exemplar needs a question field and an answer field")

	// ErrInconsistentKeys is returned when exemplars in one set disagree
	// on their question or answer key.
	ErrInconsistentKeys = errors.New("core: exemplars use inconsistent question/answer keys")
)

// Field is one key/value pair of an exemplar record. Order matters:
// records are stored and rendered with their fields in document order.
type Field struct {
	Key   string
	Value string
}

// Exemplar is an ordered question/answer record. The first field holds
// the question, the second the answer; any further fields are metadata
// (for example added_at) and are carried along untouched.
type Exemplar struct {
	Fields []Field
}

// NewExemplar builds a two-field record under the default question and
// answer keys.
func NewExemplar(question, answer string) Exemplar {
	return Exemplar{Fields: []Field{
		{Key: "question", Value: question},
		{Key: "answer", Value: answer},
	}}
}

// Get returns the value of the first field with the given key.
func (e Exemplar) Get(key string) (string, bool) {
	for _, f := range e.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// WithValue returns a copy of the exemplar with the first field matching
// key set to value. The receiver is never modified; a missing key leaves
// the copy identical to the original.
func (e Exemplar) WithValue(key, value string) Exemplar {
	out := e.Clone()
	for i, f := range out.Fields {
		if f.Key == key {
			out.Fields[i].Value = value
			break
		}
	}
	return out
}

// Clone returns a deep copy with its own field slice.
func (e Exemplar) Clone() Exemplar {
	fields := make([]Field, len(e.Fields))
	copy(fields, e.Fields)
	return Exemplar{Fields: fields}
}

// KeyPair names the fields that hold an exemplar's question and answer.
type KeyPair struct {
	Question string
	Answer   string
}

// ExtractKeys reads the question and answer keys off the first exemplar:
// its first field is the question, its second the answer. Whatever the
// records actually call those fields is respected.
func ExtractKeys(exemplars []Exemplar) (KeyPair, error) {
	if len(exemplars) == 0 {
		return KeyPair{}, ErrEmptyExemplarSet
	}
	first := exemplars[0]
	if len(first.Fields) < 2 {
		return KeyPair{}, ErrTooFewFields
	}
	return KeyPair{
		Question: first.Fields[0].Key,
		Answer:   first.Fields[1].Key,
	}, nil
}

// Set is a validated exemplar collection: every member carries at least
// two fields and they all agree on the question and answer keys. The
// members are deep-copied in, so later mutation of the input slice
// cannot reach the set.
type Set struct {
	keys  KeyPair
	items []Exemplar
}

// NewSet validates and copies the given exemplars.
func NewSet(exemplars []Exemplar) (Set, error) {
	keys, err := ExtractKeys(exemplars)
	if err != nil {
		return Set{}, err
	}
	items := make([]Exemplar, len(exemplars))
	for i, ex := range exemplars {
		if len(ex.Fields) < 2 {
			return Set{}, ErrTooFewFields
		}
		if ex.Fields[0].Key != keys.Question || ex.Fields[1].Key != keys.Answer {
			return Set{}, ErrInconsistentKeys
		}
		items[i] = ex.Clone()
	}
	return Set{keys: keys, items: items}, nil
}

// Keys returns the set's question/answer key pair.
func (s Set) Keys() KeyPair {
	return s.keys
}

// Len returns the number of exemplars in the set.
func (s Set) Len() int {
	return len(s.items)
}

// Items returns a fresh snapshot of the set's exemplars.
func (s Set) Items() []Exemplar {
	out := make([]Exemplar, len(s.items))
	for i, ex := range s.items {
		out[i] = ex.Clone()
	}
	return out
}
