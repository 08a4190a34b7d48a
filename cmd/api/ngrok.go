package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const (
	webhookPath = "/webhook/telegram"

	ngrokAttempts = 10
	ngrokBackoff  = 3 * time.Second
)

// ngrokTunnelsResponse matches the /api/tunnels response from the ngrok local API.
type ngrokTunnelsResponse struct {
	Tunnels []ngrokTunnel `json:"tunnels"`
}

type ngrokTunnel struct {
	PublicURL string `json:"public_url"`
	Proto     string `json:"proto"`
}

// detectNgrokURL queries the ngrok local API and returns the first HTTPS tunnel URL.
// ngrok may still be starting, so the lookup is retried.
func detectNgrokURL(ctx context.Context, ngrokAPIBase string) (string, error) {
	url := ngrokAPIBase + "/api/tunnels"
	client := &http.Client{Timeout: 5 * time.Second}

	for attempt := 1; attempt <= ngrokAttempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return "", fmt.Errorf("failed to create ngrok API request: %w", err)
		}

		tunnels, err := fetchTunnels(client, req)
		if err != nil {
			if attempt == ngrokAttempts {
				return "", fmt.Errorf("ngrok API not reachable after %d attempts: %w", ngrokAttempts, err)
			}
			if werr := wait(ctx); werr != nil {
				return "", werr
			}
			continue
		}

		// Prefer HTTPS tunnels
		for _, t := range tunnels.Tunnels {
			if t.Proto == "https" {
				return t.PublicURL, nil
			}
		}

		// Fallback: any tunnel
		if len(tunnels.Tunnels) > 0 {
			return tunnels.Tunnels[0].PublicURL, nil
		}

		if attempt < ngrokAttempts {
			if werr := wait(ctx); werr != nil {
				return "", werr
			}
		}
	}

	return "", fmt.Errorf("ngrok has no active tunnels after %d attempts", ngrokAttempts)
}

func fetchTunnels(client *http.Client, req *http.Request) (ngrokTunnelsResponse, error) {
	var tunnels ngrokTunnelsResponse
	resp, err := client.Do(req)
	if err != nil {
		return tunnels, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return tunnels, fmt.Errorf("ngrok API returned %s", resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(&tunnels); err != nil {
		return tunnels, fmt.Errorf("failed to decode ngrok API response: %w", err)
	}
	return tunnels, nil
}

func wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(ngrokBackoff):
		return nil
	}
}
