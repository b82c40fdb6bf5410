package orderstate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"foodie/pkg/logger"
)

func TestLifecycle(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	tr := NewTracker(logger.FromZap(zap.New(core)))
	ctx := context.Background()

	got := []string{tr.Status()}
	for i := 0; i < 4; i++ {
		tr.Next(ctx)
		got = append(got, tr.Status())
	}

	assert.Equal(t, []string{"nuevo", "En cocina", "En entrega", "Entregado", "Entregado"}, got)
	assert.True(t, tr.Delivered())
	assert.Equal(t, 1, logs.FilterMessage("order already delivered").Len())
}

func TestDeliveredIsAbsorbing(t *testing.T) {
	tr := NewTracker(logger.NewNop())
	ctx := context.Background()
	for i := 0; i < 10; i++ {
		tr.Next(ctx)
	}
	assert.Equal(t, StatusDelivered, tr.Status())
}

func TestNotDeliveredBeforeEnd(t *testing.T) {
	tr := NewTracker(logger.NewNop())
	ctx := context.Background()
	for i := 0; i < 2; i++ {
		assert.False(t, tr.Delivered())
		tr.Next(ctx)
	}
	assert.Equal(t, StatusDelivery, tr.Status())
}
