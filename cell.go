// Copryright (C) 2019 Yawning Angel
//
// This work is licensed under the Creative Commons Attribution-NonCommercial-
// NoDerivatives 4.0 International License. To view a copy of this license,
// visit http://creativecommons.org/licenses/by-nc-nd/4.0/ or send a letter to
// Creative Commons, PO Box 1866, Mountain View, CA 94042, USA.

package protint

import (
	"cmp"
	"fmt"
)

// Cell is a tamper evident int.
//
// The zero Cell is bound to Default and holds two zero words, which decode
// to a tampered value once Default is initialized.  Use New.
//
// A Cell is not safe for concurrent use.  Set writes the two words one after
// another, and a concurrent Get that observes only one of them will treat
// the Cell as tampered and collapse it to 0.
type Cell struct {
	// left and right must remain the first two fields, memory editors
	// (and cmd/protint's simulation of one) see a Cell as two words.
	left, right int

	secrets *Secrets
}

// Set encodes v into the Cell, and returns v.
//
// If the secrets are not initialized yet the encoding is still self
// consistent, but trivially predictable, and will be treated as tampered
// once they are.
func (c *Cell) Set(v int) int {
	p := c.owner().load()
	c.left = v ^ p.left
	c.right = v ^ p.right

	return v
}

// Get decodes and returns the Cell's value.
//
// If the two words disagree, the Cell is reset to 0 and the value decoded
// from the left word is returned, this call only.  Every subsequent Get
// returns 0 until the next Set.
func (c *Cell) Get() int {
	s := c.owner()
	p := s.load()

	leftV, rightV := c.left^p.left, c.right^p.right
	if leftV != rightV {
		c.left, c.right = p.left, p.right
		s.report(leftV, rightV)
	}

	return leftV
}

// Increment adds 1 to the Cell, and returns the new value.
func (c *Cell) Increment() int {
	return c.Set(c.Get() + 1)
}

// Decrement subtracts 1 from the Cell, and returns the new value.
func (c *Cell) Decrement() int {
	return c.Set(c.Get() - 1)
}

// Add adds v to the Cell, and returns the new value.
func (c *Cell) Add(v int) int {
	return c.Set(c.Get() + v)
}

// Subtract subtracts v from the Cell, and returns the new value.
func (c *Cell) Subtract(v int) int {
	return c.Set(c.Get() - v)
}

// Multiply multiplies the Cell by v, and returns the new value.
func (c *Cell) Multiply(v int) int {
	return c.Set(c.Get() * v)
}

// Divide divides the Cell by v, truncating toward zero, and returns the new
// value.  Like the / operator it panics if v is 0.
func (c *Cell) Divide(v int) int {
	return c.Set(c.Get() / v)
}

// Modulo replaces the Cell with the remainder of dividing it by v, and
// returns the new value.  Like the % operator it panics if v is 0.
func (c *Cell) Modulo(v int) int {
	return c.Set(c.Get() % v)
}

// Compare compares the Cell with other, which must be a non-nil *Cell or an
// int, and returns -1, 0 or +1.
func (c *Cell) Compare(other any) (int, error) {
	switch o := other.(type) {
	case *Cell:
		if o == nil {
			return 0, fmt.Errorf("%w: nil *Cell", ErrInvalidComparison)
		}
		return c.CompareCell(o), nil
	case int:
		return c.CompareInt(o), nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrInvalidComparison, other)
	}
}

// CompareInt compares the Cell with v, and returns -1, 0 or +1.
func (c *Cell) CompareInt(v int) int {
	return cmp.Compare(c.Get(), v)
}

// CompareCell compares the Cell with other, and returns -1, 0 or +1.
func (c *Cell) CompareCell(other *Cell) int {
	return cmp.Compare(c.Get(), other.Get())
}

// Words returns the two encoded words backing the Cell.
func (c *Cell) Words() (left, right int) {
	return c.left, c.right
}

func (c *Cell) owner() *Secrets {
	if c.secrets != nil {
		return c.secrets
	}
	return Default
}
