package capture

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxFrameBytes caps how much of a response body a single frame may occupy.
const maxFrameBytes = 16 << 20 // 16 MiB

var jpegSOI = []byte{0xFF, 0xD8}

// fetchSnapshot issues one GET against a snapshot-style camera endpoint and
// returns the image bytes. Non-2xx statuses and non-image payloads are
// failures; the client's timeout bounds the whole call.
func fetchSnapshot(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid camera url: %w", err)
	}
	req.Header.Set("Connection", "close")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("camera fetch failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("camera returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFrameBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read camera response: %w", err)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("camera returned empty body")
	}

	if !looksLikeImage(resp.Header.Get("Content-Type"), body) {
		return nil, fmt.Errorf("camera returned non-image content type %q", resp.Header.Get("Content-Type"))
	}

	return body, nil
}

// looksLikeImage accepts an image/* content type, or a JPEG magic number when
// the camera doesn't set a useful header.
func looksLikeImage(contentType string, body []byte) bool {
	ct := strings.ToLower(contentType)
	if strings.HasPrefix(ct, "image/") {
		return true
	}
	if strings.Contains(ct, "html") {
		return false
	}
	return bytes.HasPrefix(body, jpegSOI)
}
