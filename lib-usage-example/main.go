package main

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/sw33tLie/svcbook/pkg/collection"
	"github.com/sw33tLie/svcbook/pkg/kv"
	"github.com/sw33tLie/svcbook/pkg/validate"
)

type product struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

func main() {
	// Usage: go run *.go -db products.sqlite -name "Shampoo" -price 25

	dbFlag := flag.String("db", "products.sqlite", "SQLite file to store products in")
	nameFlag := flag.String("name", "", "Product name")
	priceFlag := flag.String("price", "", "Product price")

	// Parse the command-line flags
	flag.Parse()

	ctx := context.Background()

	db, err := kv.OpenSQLite(*dbFlag, kv.DefaultDBTimeout)
	if err != nil {
		fmt.Println("Could not open store:", err)
		return
	}
	defer db.Close()

	// Any kv.Store works here: kv.NewMemory, kv.OpenFile, kv.NewRedis, kv.OpenNATS
	products := collection.New[product](collection.NewStore(db, nil), "products")

	rules := validate.Rules[product]{
		validate.Field("name", func(p product) string { return p.Name }, validate.NotEmpty(), "Name is required."),
		validate.Field("price", func(p product) string { return p.Price }, validate.NonNegativeNumber(), "Price must be a positive number."),
	}

	if *nameFlag != "" {
		_, err := products.Append(ctx, product{Name: *nameFlag, Price: *priceFlag}, rules)
		var verr *validate.ValidationError
		if errors.As(err, &verr) {
			fmt.Println(verr.Message)
			return
		} else if err != nil {
			fmt.Println("Could not save product:", err)
			return
		}
	}

	all, err := products.Load(ctx, nil)
	if err != nil {
		fmt.Println("Could not load products:", err)
		return
	}
	for _, p := range all {
		fmt.Println(p.Name, p.Price)
	}
}
