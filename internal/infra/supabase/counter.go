package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const incrementCounterFn = "increment_counter"

// CounterStore calls the increment_counter database function through the
// PostgREST RPC endpoint. The function body is a single UPDATE ... RETURNING.
type CounterStore struct {
	BaseURL        string
	ServiceRoleKey string
	HTTP           *http.Client
}

func NewCounterStore(baseURL, serviceRoleKey string, client *http.Client) *CounterStore {
	if client == nil {
		client = http.DefaultClient
	}
	return &CounterStore{BaseURL: baseURL, ServiceRoleKey: serviceRoleKey, HTTP: client}
}

func (s *CounterStore) NextValue(ctx context.Context, name string) (int64, error) {
	var v int64
	if err := s.callRPC(ctx, incrementCounterFn, map[string]string{"counter_name": name}, &v); err != nil {
		return 0, fmt.Errorf("rpc %s(%s): %w", incrementCounterFn, name, err)
	}
	return v, nil
}

func (s *CounterStore) callRPC(ctx context.Context, fn string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	urlStr := strings.TrimRight(s.BaseURL, "/") + "/rest/v1/rpc/" + fn
	if !strings.HasPrefix(urlStr, "http://") && !strings.HasPrefix(urlStr, "https://") {
		return fmt.Errorf("invalid supabase url")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, urlStr, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", s.ServiceRoleKey)
	req.Header.Set("Authorization", "Bearer "+s.ServiceRoleKey)

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("supabase status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
