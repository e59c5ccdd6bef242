package utils

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
)

func GET[T any](ctx context.Context, client *http.Client, api string, header map[string]string) (T, int, error) {
	var result T

	if client == nil {
		client = &http.Client{}
	}

	req, err := http.NewRequestWithContext(ctx, "GET", api, nil)
	if err != nil {
		return result, 0, err
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return result, 0, err
	}
	defer resp.Body.Close()

	statusCode := resp.StatusCode

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return result, statusCode, err
	}
	return result, statusCode, nil
}

func POST[T any](ctx context.Context, client *http.Client, api string, header map[string]string, body any) (T, int, error) {
	var result T

	status, raw, err := POSTRaw(ctx, client, api, header, body)
	if err != nil {
		return result, status, err
	}

	if err := json.Unmarshal(raw, &result); err != nil {
		return result, status, err
	}
	return result, status, nil
}

// POSTRaw is the variant the provider layer uses: non-2xx responses must keep
// their body verbatim, so decoding is left to the caller.
func POSTRaw(ctx context.Context, client *http.Client, api string, header map[string]string, body any) (int, []byte, error) {
	if client == nil {
		client = &http.Client{}
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return 0, nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", api, bytes.NewReader(jsonBody))
	if err != nil {
		return 0, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	for k, v := range header {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, raw, nil
}
