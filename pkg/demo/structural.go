package demo

import (
	"context"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"foodie/pkg/checkout"
	"foodie/pkg/history"
	"foodie/pkg/menu"
	"foodie/pkg/order"
	"foodie/pkg/order/memory"
	"foodie/pkg/payment"
)

func runAdapter(ctx context.Context, d Deps) error {
	var p payment.Payment = payment.NewStripeAdapter(&payment.StripeService{Log: d.Log})
	return p.Pay(ctx, decimal.NewFromInt(100))
}

func runDecorator(ctx context.Context, d Deps) error {
	var pizza menu.Food = menu.BasicFood{}
	pizza = menu.WithCheese(pizza)
	pizza = menu.WithBacon(pizza)
	d.Log.Info(ctx, "decorated food", "description", pizza.Description(), "cost", pizza.Cost().String())
	return nil
}

func runFacade(ctx context.Context, d Deps) error {
	return checkout.NewDefaultFacade(d.Log).PlaceOrder(ctx)
}

func runComposite(ctx context.Context, d Deps) error {
	combo := &menu.Combo{}
	combo.Add(
		menu.NewSimpleFood("Pizza", decimal.NewFromInt(100)),
		menu.NewSimpleFood("Empanada", decimal.NewFromInt(50)),
	)
	d.Log.Info(ctx, "combo", "name", combo.Name(), "price", combo.Price().String())
	return nil
}

func runProxy(ctx context.Context, d Deps) error {
	repo := memory.New()
	for _, id := range []string{"pedido1", "pedido2"} {
		if err := repo.Create(ctx, "user1", order.Order{ID: id}); err != nil {
			return err
		}
	}

	opts := []history.Option{history.WithMaxEntries(d.Config.History.CacheSize)}
	if d.Registry != nil {
		opts = append(opts, history.WithRegisterer(d.Registry))
	}
	orders, err := history.NewCachingProxy(history.NewStore(repo, d.Log), opts...)
	if err != nil {
		return err
	}

	first, err := orders.Orders(ctx, "user1")
	if err != nil {
		return err
	}
	d.Log.Info(ctx, "order history", "user_id", "user1", "orders", first)
	second, err := orders.Orders(ctx, "user1")
	if err != nil {
		return err
	}
	d.Log.Info(ctx, "order history (cached)", "user_id", "user1", "orders", second)
	if !slices.Equal(first, second) {
		return fmt.Errorf("cached history %v differs from %v", second, first)
	}
	return nil
}
