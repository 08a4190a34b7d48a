// Package bootstrap assembles the routing engine from configuration. Every
// component it builds is immutable except the session store.
package bootstrap

import (
	"context"
	"fmt"
	"io"

	"restaurant-bot/config"
	"restaurant-bot/internal/catalog"
	"restaurant-bot/internal/catalog/loader"
	"restaurant-bot/internal/classifier"
	"restaurant-bot/internal/conversation"
	"restaurant-bot/internal/matcher"
	"restaurant-bot/internal/reply"
	"restaurant-bot/internal/router"
	"restaurant-bot/internal/rules"
	"restaurant-bot/internal/session"
	"restaurant-bot/pkg/log"
)

// Engine holds the assembled components.
type Engine struct {
	Catalog     *catalog.Index
	Matcher     *matcher.Matcher
	Classifiers *classifier.Registry
	Store       session.Store
	Router      *router.Router
}

// Build loads the catalog and classifier artifacts named in cfg, opens the
// session store and wires the router. It fails when no classifier loads.
func Build(ctx context.Context, cfg *config.Config, l log.Logger) (*Engine, error) {
	in, err := loader.New(l).Load(ctx, loader.Options{
		Menu:          cfg.Catalog.Menu,
		Supplementary: cfg.Catalog.Supplementary,
		PriceSources:  cfg.Catalog.PriceSources,
		Lexicon:       cfg.Catalog.Lexicon,
	})
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	ix := catalog.Build(in)
	l.Infof(ctx, "%s: catalog has %d entries, %d prices", logPrefixBuild, ix.Len(), ix.Prices().Len())

	reg, err := classifier.Load(ctx, classifier.LoadOptions{
		Dir:         cfg.Classifier.ModelDir,
		DefaultAlgo: cfg.Classifier.DefaultAlgo,
	}, l)
	if err != nil {
		return nil, fmt.Errorf("load classifiers: %w", err)
	}

	store, err := session.New(ctx, session.Options{
		Driver: cfg.Session.Driver,
		Size:   cfg.Session.Size,
		TTL:    cfg.Session.TTL,
		Redis: session.RedisConfig{
			Addr:     cfg.Session.Redis.Addr,
			Password: cfg.Session.Redis.Password,
			DB:       cfg.Session.Redis.DB,
			Prefix:   cfg.Session.Redis.Prefix,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	m := matcher.New(ix)
	r := router.New(router.Config{
		Rules:       rules.New(ix),
		Classifiers: reg,
		Replies:     reply.New(ix, m, Info(cfg.Restaurant)),
		Machine:     conversation.New(),
		Store:       store,
		Threshold:   cfg.Classifier.Threshold,
	}, l)

	return &Engine{
		Catalog:     ix,
		Matcher:     m,
		Classifiers: reg,
		Store:       store,
		Router:      r,
	}, nil
}

// Info converts the restaurant section into reply data. Blank fields keep
// their defaults.
func Info(rc config.RestaurantConfig) reply.Info {
	info := reply.DefaultInfo()
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&info.OpenDays, rc.OpenDays)
	set(&info.OpenTime, rc.OpenTime)
	set(&info.CloseTime, rc.CloseTime)
	set(&info.LastOrder, rc.LastOrder)
	set(&info.Location, rc.Location)
	set(&info.Payment, rc.Payment)
	set(&info.Delivery, rc.Delivery)
	set(&info.Takeaway, rc.Takeaway)
	if len(rc.ChefPicks) > 0 {
		info.ChefPicks = rc.ChefPicks
	}
	return info
}

type pinger interface {
	Ping(ctx context.Context) error
}

// Ready reports the loaded components and pings the session store when it
// supports it.
func (e *Engine) Ready(ctx context.Context) (map[string]any, error) {
	if p, ok := e.Store.(pinger); ok {
		if err := p.Ping(ctx); err != nil {
			return nil, fmt.Errorf("session store: %w", err)
		}
	}
	return map[string]any{
		"catalog_entries": e.Catalog.Len(),
		"classifiers":     e.Classifiers.IDs(),
		"default_algo":    e.Classifiers.DefaultID(),
	}, nil
}

// Close releases the session store.
func (e *Engine) Close() error {
	if c, ok := e.Store.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
