package demo

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"foodie/pkg/kitchen"
	"foodie/pkg/lasagna"
	"foodie/pkg/order"
	"foodie/pkg/settings"
)

func runFactory(ctx context.Context, d Deps) error {
	food, err := kitchen.NewFood(kitchen.TypePizza, d.Log)
	if err != nil {
		return err
	}
	food.Prepare(ctx)

	if _, err := kitchen.NewFood("sushi", d.Log); !errors.Is(err, kitchen.ErrUnknownType) {
		return fmt.Errorf("expected unknown type error, got %v", err)
	}
	return nil
}

func runAbstractFactory(ctx context.Context, d Deps) error {
	for _, region := range []string{kitchen.RegionArgentinian, kitchen.RegionJapanese} {
		f, err := kitchen.FactoryFor(region, d.Log)
		if err != nil {
			return err
		}
		f.CreatePizza().Prepare(ctx)
		f.CreateEmpanada().Prepare(ctx)
	}
	return nil
}

func runBuilder(ctx context.Context, d Deps) error {
	big := lasagna.NewBuilder().Size("big").Cheese("cheddar").Build()
	small := lasagna.NewBuilder().Size("small").Build()
	d.Log.Info(ctx, big.Describe())
	d.Log.Info(ctx, small.Describe())
	return nil
}

func runSingleton(ctx context.Context, d Deps) error {
	config1 := settings.Instance()
	config2 := settings.Instance()

	config1.Set("apiUrl", "https://api.foodieapp.com")
	d.Log.Info(ctx, "singleton", "apiUrl", config2.GetString("apiUrl"), "same_instance", config1 == config2)
	if config1 != config2 {
		return errors.New("settings.Instance returned two managers")
	}
	return nil
}

func runPrototype(ctx context.Context, d Deps) error {
	original := order.New("calle la mentira", "pizza", "empanada")
	cloned := original.Clone()
	cloned.Items = append(cloned.Items, "sushi")

	d.Log.Info(ctx, "original order", "items", original.Items)
	d.Log.Info(ctx, "cloned order", "items", cloned.Items)
	if slices.Contains(original.Items, "sushi") {
		return errors.New("editing the clone changed the original")
	}
	return nil
}
