package demo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"foodie/pkg/command"
	"foodie/pkg/notify"
	"foodie/pkg/orderstate"
	"foodie/pkg/shipping"
	"foodie/pkg/validation"
)

func runObserver(ctx context.Context, d Deps) error {
	var subject notify.Subject
	subject.AddObserver(notify.Kitchen{Log: d.Log})
	subject.AddObserver(notify.Delivery{Log: d.Log})
	return subject.Notify(ctx, uuid.NewString())
}

func runStrategy(ctx context.Context, d Deps) error {
	rate, err := d.Config.Rate()
	if err != nil {
		return err
	}
	amount := decimal.NewFromInt(100)
	strategies := []struct {
		name     string
		strategy shipping.Strategy
	}{
		{"distance", shipping.DistanceShipping{Rate: rate}},
		{"free", shipping.FreeShipping{}},
	}
	for _, s := range strategies {
		cost, err := shipping.NewContext(s.strategy).ShippingCost(amount)
		if err != nil {
			return err
		}
		d.Log.Info(ctx, "shipping cost", "strategy", s.name, "amount", amount.String(), "cost", cost.String())
	}
	return nil
}

func runCommand(ctx context.Context, d Deps) error {
	var order, logs []string
	addPizza := command.NewAddItemCommand(&order, "Pizza", &logs)

	if err := addPizza.Execute(); err != nil {
		return err
	}
	d.Log.Info(ctx, "order after execute", "items", order)
	if err := addPizza.Undo(); err != nil {
		return err
	}
	d.Log.Info(ctx, "order after undo", "items", order, "log", logs)
	if len(order) != 0 {
		return fmt.Errorf("undo left %v in the order", order)
	}
	return nil
}

func runState(ctx context.Context, d Deps) error {
	tracker := orderstate.NewTracker(d.Log)
	d.Log.Info(ctx, "order status", "status", tracker.Status())
	for i := 0; i < 3; i++ {
		tracker.Next(ctx)
		d.Log.Info(ctx, "order status", "status", tracker.Status())
	}
	tracker.Next(ctx)
	if !tracker.Delivered() {
		return fmt.Errorf("order ended in %q", tracker.Status())
	}
	return nil
}

func runChain(ctx context.Context, d Deps) error {
	stock := validation.NewStockValidator(d.Log)
	stock.SetNext(validation.NewPaymentValidator(d.Log))

	record := validation.Record{InStock: true, Paid: false}
	ok := stock.Handle(ctx, record)
	d.Log.Info(ctx, "order validated", "in_stock", record.InStock, "paid", record.Paid, "valid", ok)
	if ok {
		return errors.New("unpaid order passed validation")
	}
	return nil
}
