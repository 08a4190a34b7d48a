// Package loader reads catalog, price and lexicon sources from disk and turns
// them into a catalog.BuildInput.
package loader

import (
	"context"
	"errors"
	"io/fs"

	"restaurant-bot/internal/catalog"
	"restaurant-bot/pkg/log"
)

// Options names the source files. Only Menu is expected to exist; every
// other path is optional.
type Options struct {
	Menu          string
	Supplementary []string
	PriceSources  []string
	Lexicon       string
}

type implLoader struct {
	l log.Logger
}

// New creates a source loader.
func New(l log.Logger) *implLoader {
	return &implLoader{l: l}
}

// Load reads every configured source. Missing or malformed optional sources
// are logged and skipped; a missing menu yields an empty primary source.
func (ld *implLoader) Load(ctx context.Context, opt Options) (catalog.BuildInput, error) {
	in := catalog.BuildInput{Lexicon: catalog.DefaultLexicon()}

	menu, err := ReadMenu(opt.Menu)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		ld.l.Warnf(ctx, "%s: menu %q not found, starting with an empty menu", logPrefixLoad, opt.Menu)
	default:
		return catalog.BuildInput{}, err
	}
	in.Sources = append(in.Sources, menu)

	for _, p := range opt.Supplementary {
		recs, err := ReadSupplementary(p)
		if err != nil {
			ld.logSkip(ctx, p, err)
			continue
		}
		in.Sources = append(in.Sources, recs)
	}

	for _, p := range opt.PriceSources {
		rows, err := ReadPriceRows(p)
		if err != nil {
			ld.logSkip(ctx, p, err)
			continue
		}
		in.PriceRows = append(in.PriceRows, rows...)
	}

	if opt.Lexicon != "" {
		lx, err := ReadLexicon(opt.Lexicon)
		if err != nil {
			ld.logSkip(ctx, opt.Lexicon, err)
		} else {
			in.Lexicon = lx
		}
	}

	return in, nil
}

func (ld *implLoader) logSkip(ctx context.Context, path string, err error) {
	if errors.Is(err, fs.ErrNotExist) {
		ld.l.Debugf(ctx, "%s: %s not present", logPrefixLoad, path)
		return
	}
	ld.l.Warnf(ctx, "%s: skipping %s: %v", logPrefixLoad, path, err)
}
