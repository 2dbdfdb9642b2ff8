// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

// Package protint implements a tamper evident integer container.
//
// A Cell never stores its value in a single memory word.  Instead the value
// is kept twice, each copy XORed with one half of a secret pair, so scanning
// process memory for a known value finds nothing, and overwriting one of the
// two words is detected on the next read and collapses the value to 0.
//
// This is an obstacle to automated memory editors, not cryptography.  Anyone
// that can read the process memory and think for a minute can update both
// words consistently.
package protint

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"sync/atomic"

	"gitlab.com/yawning/protint.git/internal/api"
	"gitlab.com/yawning/protint.git/internal/getrandom"
)

const (
	// SecretBound is the exclusive upper bound of each secret mask.
	SecretBound = api.SecretBound

	unsetSecret = -1
)

var (
	// ErrNoEntropy is the error returned when there is no entropy source
	// to draw the secrets from.
	ErrNoEntropy = errors.New("protint: no working entropy source")

	// ErrInvalidSecret is the error returned when a fixed secret is outside
	// of [0, SecretBound).
	ErrInvalidSecret = errors.New("protint: invalid secret")

	// ErrInvalidComparison is the error returned when a Cell is compared
	// to something that is neither a *Cell nor an int.
	ErrInvalidComparison = errors.New("protint: invalid comparison target")

	// ErrInvalidEncoding is the error returned when unmarshaling malformed
	// text or binary data.
	ErrInvalidEncoding = errors.New("protint: invalid encoding")

	// Default is the process wide secret pair used by New, NewFromText
	// and the zero Cell.
	Default = NewSecrets()

	chosenSource     api.Source
	supportedSources []api.Source

	unsetPair = &secretPair{left: unsetSecret, right: unsetSecret}
)

type secretPair struct {
	left, right int
}

// TamperEvent describes a detected disagreement between the two halves of
// a Cell.
type TamperEvent struct {
	// Left is the value decoded from the left word.
	Left int

	// Right is the value decoded from the right word.
	Right int
}

// Option is a Secrets construction option.
type Option func(*Secrets)

// WithEntropy sets the reader the secret masks are drawn from.
func WithEntropy(r io.Reader) Option {
	return func(s *Secrets) {
		s.source = &readerSource{r: r}
	}
}

// WithTamperHook sets a function called synchronously, from Cell.Get, every
// time a Cell bound to the Secrets detects tampering.
func WithTamperHook(fn func(TamperEvent)) Option {
	return func(s *Secrets) {
		s.onTamper = fn
	}
}

// Secrets is a secret mask pair that Cells are encoded against.
//
// Secrets is safe for concurrent use.  Re-initializing a Secrets that Cells
// have already been encoded against invalidates all of them: their next
// read is treated as tampering.
type Secrets struct {
	pair     atomic.Pointer[secretPair]
	tampered atomic.Uint64

	source   api.Source
	onTamper func(TamperEvent)
}

// NewSecrets returns a new uninitialized secret pair.
func NewSecrets(opts ...Option) *Secrets {
	s := &Secrets{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// NewFixedSecrets returns a new secret pair initialized to the provided
// masks.  It is intended for tests and deterministic replay.
func NewFixedSecrets(left, right int, opts ...Option) (*Secrets, error) {
	if !validSecret(left) || !validSecret(right) {
		return nil, ErrInvalidSecret
	}

	s := NewSecrets(opts...)
	s.pair.Store(&secretPair{left: left, right: right})

	return s, nil
}

// Init draws a new secret pair.  It should be called exactly once, before
// any Cell value is relied upon.  On failure the previous pair is retained.
func (s *Secrets) Init() error {
	src := s.entropy()
	if src == nil {
		return ErrNoEntropy
	}

	left, err := uniform(src, SecretBound)
	if err != nil {
		return fmt.Errorf("protint: failed to draw secret from %s: %w", src.Name(), err)
	}
	right, err := uniform(src, SecretBound)
	if err != nil {
		return fmt.Errorf("protint: failed to draw secret from %s: %w", src.Name(), err)
	}

	s.pair.Store(&secretPair{left: left, right: right})

	return nil
}

// IsInitialized returns true iff both secret masks have been set.
func (s *Secrets) IsInitialized() bool {
	p := s.load()
	return p.left >= 0 && p.right >= 0
}

// Source returns the name of the entropy source Init draws from.
func (s *Secrets) Source() string {
	if src := s.entropy(); src != nil {
		return src.Name()
	}
	return "none"
}

// Tampered returns the number of times a Cell bound to s detected
// tampering.
func (s *Secrets) Tampered() uint64 {
	return s.tampered.Load()
}

// New returns a new Cell encoded against s, holding v.
func (s *Secrets) New(v int) *Cell {
	c := &Cell{secrets: s}
	c.Set(v)

	return c
}

// NewFromText returns a new Cell encoded against s, holding the base 10
// integer in text, or 0 if text does not parse.
func (s *Secrets) NewFromText(text string) *Cell {
	v, err := strconv.Atoi(text)
	if err != nil {
		v = 0
	}

	return s.New(v)
}

func (s *Secrets) load() *secretPair {
	if p := s.pair.Load(); p != nil {
		return p
	}
	return unsetPair
}

func (s *Secrets) entropy() api.Source {
	if s.source != nil {
		return s.source
	}
	return chosenSource
}

func (s *Secrets) report(left, right int) {
	s.tampered.Add(1)
	if s.onTamper != nil {
		s.onTamper(TamperEvent{Left: left, Right: right})
	}
}

// Init draws the Default secret pair.
func Init() error {
	return Default.Init()
}

// IsInitialized returns true iff the Default secret pair has been set.
func IsInitialized() bool {
	return Default.IsInitialized()
}

// New returns a new Cell encoded against Default, holding v.
func New(v int) *Cell {
	return Default.New(v)
}

// NewFromText returns a new Cell encoded against Default, holding the base
// 10 integer in text, or 0 if text does not parse.
func NewFromText(text string) *Cell {
	return Default.NewFromText(text)
}

func validSecret(v int) bool {
	return v >= 0 && v < SecretBound
}

// uniform returns a value uniformly distributed over [0, bound).
func uniform(src api.Source, bound uint32) (int, error) {
	limit := math.MaxUint32 - math.MaxUint32%bound

	var b [4]byte
	for {
		if err := src.Read(b[:]); err != nil {
			return 0, err
		}
		if v := binary.LittleEndian.Uint32(b[:]); v < limit {
			return int(v % bound), nil
		}
	}
}

type cryptoRandSource struct{}

func (s *cryptoRandSource) Name() string {
	return "crypto/rand"
}

func (s *cryptoRandSource) Read(b []byte) error {
	_, err := io.ReadFull(rand.Reader, b)
	return err
}

type readerSource struct {
	r io.Reader
}

func (s *readerSource) Name() string {
	return "reader"
}

func (s *readerSource) Read(b []byte) error {
	_, err := io.ReadFull(s.r, b)
	return err
}

func init() {
	if getrandom.Source != nil {
		supportedSources = append(supportedSources, getrandom.Source)
	}
	supportedSources = append(supportedSources, &cryptoRandSource{})

	chosenSource = supportedSources[0]
}
