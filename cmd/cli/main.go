package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/Greenrenge/cf-webhook-fanout/config"
	"github.com/Greenrenge/cf-webhook-fanout/endpoint"
	endpointpostgres "github.com/Greenrenge/cf-webhook-fanout/endpoint/postgres"
)

// Small admin helper to register a forwarding endpoint without going
// through the HTTP API.
func main() {
	url := flag.String("url", "", "endpoint URL to register")
	primary := flag.Bool("primary", false, "mark the endpoint as primary")
	headers := flag.String("headers", "", "custom headers as comma separated key=value pairs")
	flag.Parse()

	if *url == "" {
		fmt.Println("usage: cli -url <endpoint-url> [-primary] [-headers k=v,k=v]")
		return
	}

	cfg, err := config.GetConfig()
	if err != nil {
		fmt.Println(err)
		return
	}
	ctx := context.Background()
	repo, err := endpointpostgres.NewRepository(cfg.DatabaseURL)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer repo.Close(ctx)
	if err := repo.CreateTable(ctx); err != nil {
		fmt.Println(err)
		return
	}

	s := endpoint.NewService(repo)
	created, err := s.Create(ctx, *url, parseHeaders(*headers), *primary)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("registered endpoint %d: %s (primary=%t)\n", created.ID, created.URL, created.IsPrimary)
}

func parseHeaders(raw string) map[string]string {
	if raw == "" {
		return nil
	}
	out := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		key, value, found := strings.Cut(pair, "=")
		if !found {
			continue
		}
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out
}
