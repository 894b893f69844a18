// Command maemanee prints a MaeManee QR payload and optionally writes it as
// a PNG image.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/Xausdorf/maemanee-qr/internal/domain/maemanee"
	"github.com/Xausdorf/maemanee-qr/internal/infrastructure/qrgenerator"
)

const defaultSize = 256

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	shopID := flag.String("id", "", "shop id")
	shopName := flag.String("name", "", "shop name")
	amount := flag.String("amount", "", "amount in baht, e.g. 14.53")
	ref := flag.String("ref", "", "bill reference, replaces the shop name in the merchant account")
	pngPath := flag.String("png", "", "write the QR image to this file")
	size := flag.Int("size", defaultSize, "image size in pixels")
	flag.Parse()

	payload, err := build(*shopID, *shopName, *amount, *ref)
	if err != nil {
		logger.Error("build payload", zap.Error(err))
		os.Exit(2)
	}
	fmt.Println(payload)

	if *pngPath == "" {
		return
	}
	img, err := qrgenerator.NewGenerator(*size).Generate(payload)
	if err != nil {
		logger.Error("render qr", zap.Error(err))
		os.Exit(1)
	}
	if err := os.WriteFile(*pngPath, img, 0o644); err != nil {
		logger.Error("write png", zap.String("path", *pngPath), zap.Error(err))
		os.Exit(1)
	}
}

func build(shopID, shopName, amount, ref string) (string, error) {
	p, err := maemanee.New(shopID, shopName)
	if err != nil {
		return "", err
	}
	if amount != "" {
		d, err := decimal.NewFromString(amount)
		if err != nil {
			return "", fmt.Errorf("%w: amount %q: %w", maemanee.ErrInvalidArgument, amount, err)
		}
		if err := p.SetAmount(d); err != nil {
			return "", err
		}
	}
	if ref != "" {
		if err := p.SetBillPayment(ref); err != nil {
			return "", err
		}
	}
	return p.String(), nil
}
