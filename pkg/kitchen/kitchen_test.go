package kitchen

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"foodie/pkg/logger"
)

func TestNewFood(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	log := logger.FromZap(zap.New(core))

	pizza, err := NewFood(TypePizza, log)
	require.NoError(t, err)
	assert.IsType(t, &Pizza{}, pizza)
	assert.Equal(t, "pizza", pizza.Name())

	empanada, err := NewFood(TypeEmpanada, log)
	require.NoError(t, err)
	assert.IsType(t, &Empanada{}, empanada)

	pizza.Prepare(context.Background())
	assert.Equal(t, 1, logs.FilterMessage("preparing pizza").Len())
}

func TestNewFoodUnknownType(t *testing.T) {
	food, err := NewFood("sushi", logger.NewNop())
	assert.Nil(t, food)
	assert.ErrorIs(t, err, ErrUnknownType)

	var typed *UnknownTypeError
	require.True(t, errors.As(err, &typed))
	assert.Equal(t, Type("sushi"), typed.Type)
	assert.Contains(t, err.Error(), `"sushi"`)
}

func TestFactoriesAreConsistent(t *testing.T) {
	tests := []struct {
		region   string
		pizza    string
		empanada string
	}{
		{RegionArgentinian, "argentinian pizza", "argentinian empanada"},
		{RegionJapanese, "japanese pizza", "japanese empanada"},
	}
	for _, tt := range tests {
		t.Run(tt.region, func(t *testing.T) {
			f, err := FactoryFor(tt.region, logger.NewNop())
			require.NoError(t, err)

			p, e := f.CreatePizza(), f.CreateEmpanada()
			assert.Equal(t, tt.pizza, p.Name())
			assert.Equal(t, tt.empanada, e.Name())
			assert.Equal(t, p.Style, e.Style)
		})
	}
}

func TestFactoryForUnknownRegion(t *testing.T) {
	_, err := FactoryFor("martian", logger.NewNop())
	assert.ErrorIs(t, err, ErrUnknownRegion)
}
