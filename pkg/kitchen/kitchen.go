// Package kitchen creates dishes, either one at a time from a type tag or
// as a regional family from a factory.
package kitchen

import (
	"context"
	"errors"
	"fmt"

	"foodie/pkg/logger"
)

var (
	ErrUnknownType   = errors.New("kitchen: unknown food type")
	ErrUnknownRegion = errors.New("kitchen: unknown region")
)

// UnknownTypeError names the tag NewFood could not build.
type UnknownTypeError struct {
	Type Type
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("%v %q", ErrUnknownType, string(e.Type))
}

func (e *UnknownTypeError) Unwrap() error {
	return ErrUnknownType
}

// Food is a dish the kitchen can prepare.
type Food interface {
	Name() string
	Prepare(ctx context.Context)
}

type Type string

const (
	TypePizza    Type = "pizza"
	TypeEmpanada Type = "empanada"
)

// Pizza is prepared in a regional style; an empty Style is the house pizza.
type Pizza struct {
	Style string
	log   *logger.Logger
}

func (p *Pizza) Name() string { return styled(p.Style, "pizza") }

func (p *Pizza) Prepare(ctx context.Context) {
	p.log.Info(ctx, "preparing "+p.Name())
}

type Empanada struct {
	Style string
	log   *logger.Logger
}

func (e *Empanada) Name() string { return styled(e.Style, "empanada") }

func (e *Empanada) Prepare(ctx context.Context) {
	e.log.Info(ctx, "preparing "+e.Name())
}

func styled(style, dish string) string {
	if style == "" {
		return dish
	}
	return style + " " + dish
}

var constructors = map[Type]func(log *logger.Logger) Food{
	TypePizza:    func(log *logger.Logger) Food { return &Pizza{log: log} },
	TypeEmpanada: func(log *logger.Logger) Food { return &Empanada{log: log} },
}

// NewFood builds the dish for t.
func NewFood(t Type, log *logger.Logger) (Food, error) {
	mk, ok := constructors[t]
	if !ok {
		return nil, &UnknownTypeError{Type: t}
	}
	return mk(log), nil
}
