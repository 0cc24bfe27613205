package challenge

import (
	_ "embed"
	"errors"
	"io"
	"iter"
	"maps"
	"slices"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed challenges.yaml
var builtinYaml string

// Catalog is a set of challenges indexed by id.
type Catalog struct {
	challenge map[int]*Challenge
}

var builtin = sync.OnceValue(func() *Catalog {
	cat, err := Load(strings.NewReader(builtinYaml))
	if err != nil {
		panic(err)
	}
	return cat
})

// Builtin returns the catalog of the standard challenges.
func Builtin() *Catalog {
	return builtin()
}

// Load reads a catalog from a YAML list of challenges.
func Load(input io.Reader) (cat *Catalog, err error) {
	var list []*Challenge

	err = yaml.NewDecoder(input).Decode(&list)
	if errors.Is(err, io.EOF) {
		err = nil
	}
	if err != nil {
		return
	}

	cat, err = Merge(slices.Values(list))

	return
}

// Merge combines challenges into a single catalog.
func Merge(seqs ...iter.Seq[*Challenge]) (cat *Catalog, err error) {
	cat = &Catalog{challenge: map[int]*Challenge{}}

	for _, seq := range seqs {
		for ch := range seq {
			if ch == nil {
				continue
			}
			_, ok := cat.challenge[ch.Id]
			if ok {
				err = &ErrChallenge{Id: ch.Id, Err: ErrDuplicate}
				return
			}
			err = ch.compile()
			if err != nil {
				err = &ErrChallenge{Id: ch.Id, Err: err}
				return
			}
			cat.challenge[ch.Id] = ch
		}
	}

	return
}

// Len returns the number of challenges.
func (cat *Catalog) Len() int {
	return len(cat.challenge)
}

// Get returns a challenge by id.
func (cat *Catalog) Get(id int) (ch *Challenge, err error) {
	ch, ok := cat.challenge[id]
	if !ok {
		err = &ErrChallenge{Id: id, Err: ErrUnknown}
	}

	return
}

// All returns an iterator over the challenges, in id order.
func (cat *Catalog) All() iter.Seq[*Challenge] {
	return func(yield func(*Challenge) bool) {
		for _, id := range slices.Sorted(maps.Keys(cat.challenge)) {
			if !yield(cat.challenge[id]) {
				return
			}
		}
	}
}
