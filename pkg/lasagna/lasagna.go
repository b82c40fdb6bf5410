// Package lasagna assembles lasagnas step by step.
package lasagna

import "fmt"

const (
	DefaultSize   = "Large"
	DefaultCheese = "mozzarella"
)

// Lasagna is immutable once built.
type Lasagna struct {
	size   string
	cheese string
}

func (l Lasagna) Size() string   { return l.size }
func (l Lasagna) Cheese() string { return l.cheese }

func (l Lasagna) Describe() string {
	return fmt.Sprintf("%s lasagna with %s cheese", l.size, l.cheese)
}

// Builder collects options for a Lasagna. Unset options keep their
// defaults.
type Builder struct {
	size   string
	cheese string
}

func NewBuilder() *Builder {
	return &Builder{size: DefaultSize, cheese: DefaultCheese}
}

func (b *Builder) Size(size string) *Builder {
	b.size = size
	return b
}

func (b *Builder) Cheese(cheese string) *Builder {
	b.cheese = cheese
	return b
}

// Build snapshots the current options; later setter calls do not change
// lasagnas already built.
func (b *Builder) Build() Lasagna {
	return Lasagna{size: b.size, cheese: b.cheese}
}
