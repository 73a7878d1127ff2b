package main

import (
	"context"
	"flag"
	"log"
	"time"

	"ordernest-be/internal/config"
	"ordernest-be/internal/db"
	"ordernest-be/internal/order"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

// Seeds the orders table with fake records for local development.
func main() {
	count := flag.Int("count", 20, "number of orders to insert")
	flag.Parse()

	cfg := config.LoadConfig()
	database := db.InitDB(cfg)
	defer database.Close()

	store := order.NewStore(database)
	gofakeit.Seed(time.Now().UnixNano())

	ctx := context.Background()
	for i := 0; i < *count; i++ {
		o := fakeOrder()
		if err := store.Create(ctx, o); err != nil {
			log.Fatalf("failed to insert order %s: %v", o.ID, err)
		}
	}

	log.Printf("Inserted %d orders", *count)
}

func fakeOrder() *order.Order {
	price := gofakeit.Price(5, 500)
	createdAt := gofakeit.DateRange(time.Now().Add(-30*24*time.Hour), time.Now()).UTC()

	paymentStatus := order.PaymentPending
	if gofakeit.Bool() {
		paymentStatus = order.PaymentPaid
	}

	return &order.Order{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		ProductID:     uuid.New(),
		ProductName:   gofakeit.ProductName(),
		Quantity:      gofakeit.Number(1, 10),
		UnitPrice:     &price,
		Currency:      gofakeit.CurrencyShort(),
		Status:        order.StatusPending,
		PaymentStatus: paymentStatus,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
}
