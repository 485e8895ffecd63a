package main

import (
	"flag"
	"os"

	"go.uber.org/zap"

	"storefront/internal/auth"
	"storefront/internal/catalog"
	"storefront/internal/ledger"
	"storefront/internal/seed"
)

var logger *zap.Logger

func main() {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	seedPath := flag.String("seed", "", "path to a YAML seed file (built-in fixtures when empty)")
	flag.Parse()

	data := seed.Default()
	if *seedPath != "" {
		data, err = seed.Load(*seedPath)
		if err != nil {
			logger.Fatal("failed to load seed file", zap.String("path", *seedPath), zap.Error(err))
		}
	}

	users := auth.New()
	products := catalog.New()
	orders := ledger.New(products)

	if err := seed.Apply(data, users, products); err != nil {
		logger.Fatal("failed to seed store", zap.Error(err))
	}
	logger.Info("store ready",
		zap.Int("users", len(data.Users)),
		zap.Int("products", len(data.Products)))

	c := &console{users: users, catalog: products, ledger: orders}
	if err := c.run(os.Stdin, os.Stdout); err != nil {
		logger.Fatal("console failed", zap.Error(err))
	}
}
