package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"restaurant-bot/internal/catalog"
	"restaurant-bot/pkg/textnorm"
)

type menuItem struct {
	Name       string    `json:"name"`
	Price      flexPrice `json:"price"`
	Tags       flexTags  `json:"tags"`
	Popularity float64   `json:"popularity"`
}

// flexPrice accepts 12.5, "12.50", "RM12.50" and treats "", "nan" and null as absent.
type flexPrice struct {
	v *float64
}

func (p *flexPrice) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		p.v = &n
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("price: %w", err)
	}
	p.v = parsePrice(s)
	return nil
}

// flexTags accepts a JSON list or a single string split on "," and ";".
type flexTags []string

func (t *flexTags) UnmarshalJSON(b []byte) error {
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		*t = list
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("tags: %w", err)
	}
	*t = []string{s}
	return nil
}

func parsePrice(s string) *float64 {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "nan", "none", "null":
		return nil
	}
	n, ok := textnorm.FirstNumber(s)
	if !ok {
		return nil
	}
	v, err := strconv.ParseFloat(n, 64)
	if err != nil {
		return nil
	}
	return &v
}

// ReadMenu reads the primary menu, a JSON array of items.
func ReadMenu(path string) ([]catalog.Record, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadMenu, err)
	}
	return ParseMenu(b)
}

// ParseMenu decodes menu JSON into records.
func ParseMenu(b []byte) ([]catalog.Record, error) {
	var items []menuItem
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadMenu, err)
	}

	out := make([]catalog.Record, 0, len(items))
	for _, it := range items {
		out = append(out, catalog.Record{
			Name:       it.Name,
			Price:      it.Price.v,
			Tags:       it.Tags,
			Popularity: int(it.Popularity),
		})
	}
	return out, nil
}
