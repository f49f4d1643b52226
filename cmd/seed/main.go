// Command seed fills a running backend with demo products and customers.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"mbg-project/internal/client"
	"mbg-project/internal/config"
	"mbg-project/internal/models"

	"github.com/brianvoe/gofakeit"
)

func main() {
	products := flag.Int("produk", 10, "number of demo products")
	customers := flag.Int("pelanggan", 5, "number of demo customers")
	flag.Parse()

	cfg := config.LoadConfig()
	api := client.New(cfg.Client)
	ctx := context.Background()

	for i := 0; i < *products; i++ {
		created, err := api.CreateProduct(ctx, fakeProduct())
		if err != nil {
			log.Fatalf("seeding produk: %v", err)
		}
		fmt.Printf("produk %s (%s)\n", created.Name, created.ID)
	}

	for i := 0; i < *customers; i++ {
		created, err := api.CreateCustomer(ctx, fakeCustomer())
		if err != nil {
			log.Fatalf("seeding pelanggan: %v", err)
		}
		fmt.Printf("pelanggan %s (%s)\n", created.Name, created.ID)
	}
}

func fakeProduct() models.Product {
	return models.Product{
		Name:        gofakeit.BeerName(),
		Category:    gofakeit.BuzzWord(),
		Price:       gofakeit.Number(1000, 100000),
		Stock:       gofakeit.Number(1, 50),
		Description: gofakeit.Sentence(6),
	}
}

func fakeCustomer() models.Customer {
	name := gofakeit.Name()
	local := strings.ToLower(strings.ReplaceAll(name, " ", "."))
	return models.Customer{
		Name:    name,
		Email:   local + "@gmail.com", // validation wants the gmail domain
		Phone:   gofakeit.Numerify("08##########"),
		Address: gofakeit.Address().Address,
	}
}
