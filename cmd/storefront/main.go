package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"sidomulyo-storefront/internal/auth"
	"sidomulyo-storefront/internal/catalog"
	"sidomulyo-storefront/internal/config"
	"sidomulyo-storefront/internal/logger"
	"sidomulyo-storefront/internal/orders"
	"sidomulyo-storefront/internal/pubsub"
	"sidomulyo-storefront/internal/tracker"
	"sidomulyo-storefront/internal/transport"
	"sidomulyo-storefront/internal/utils"

	"github.com/redis/go-redis/v9"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: storefront track <number> | storefront product <id>")
		os.Exit(2)
	}

	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	api := transport.New(cfg.APIBaseURL, auth.StaticToken(cfg.AuthToken))

	switch os.Args[1] {
	case "product":
		runProduct(cfg, api, os.Args[2])
	case "track":
		runTrack(cfg, api, os.Args[2])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		os.Exit(2)
	}
}

func runProduct(cfg *config.Config, api *transport.Client, rawID string) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		log.Fatalf("invalid product id %q", rawID)
	}

	products := catalog.NewClient(api, cfg.BackendURL)
	p, err := products.Product(context.Background(), id)
	if err != nil {
		log.Fatalf("failed to load product: %v", err)
	}

	fmt.Printf("%s\n", p.Name)
	fmt.Printf("Harga per meter: %s\n", utils.FormatRupiah(p.UnitPrice))
	for _, v := range p.Variants {
		fmt.Printf("  + %s (%s)\n", v.Name, utils.FormatRupiah(v.Surcharge))
	}
}

func runTrack(cfg *config.Config, api *transport.Client, number string) {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	tr := tracker.New(orders.NewClient(api), newSubscriber(cfg))
	tr.OnChange = func(s tracker.Snapshot) {
		fmt.Printf("%s %s", s.Step.Icon, s.Step.Label)
		if s.Status == orders.StatusProcessing && s.CountdownSet {
			fmt.Printf("  (estimasi selesai %s)", tracker.FormatCountdown(s.Remaining))
		}
		fmt.Println()
	}

	ord, err := tr.Start(ctx, number)
	if err != nil {
		log.Fatalf("failed to track order: %v", err)
	}
	defer tr.Stop()

	fmt.Printf("Pesanan %s, total %s\n", ord.Number, utils.FormatRupiah(ord.Total))
	for _, item := range ord.Items {
		fmt.Printf("  %s %dx: %s\n", item.Name, item.Qty, utils.FormatRupiah(item.Price))
	}
	fmt.Println("Bagikan:", tracker.ShareLink(cfg.FrontendURL, number))

	<-ctx.Done()
}

// newSubscriber picks the configured live-update transport; redis wins when
// both are set.
func newSubscriber(cfg *config.Config) pubsub.Subscriber {
	if cfg.RedisAddr != "" {
		return pubsub.NewRedisSubscriber(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	}
	if cfg.WSHost != "" {
		return pubsub.NewWSSubscriber(cfg.WSHost, cfg.WSPort, cfg.WSAppKey)
	}
	return pubsub.NewBus()
}
