package capture

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"
	"sync"
	"time"
)

// streamReader maintains a persistent MJPEG connection and continuously
// drains frames, keeping only the latest. Without draining, the server-side
// buffer fills up and reads return frames that are seconds old; this mirrors
// the bufferless-capture approach used by IP camera clients. The poller pulls
// Latest() once per tick.
type streamReader struct {
	cancel context.CancelFunc
	done   chan struct{}

	mu    sync.Mutex
	frame []byte
	ts    time.Time
	err   error
}

// streamClient bounds connection setup without capping the lifetime of the
// stream itself (http.Client.Timeout would kill a healthy stream).
func streamClient(headerTimeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			ResponseHeaderTimeout: headerTimeout,
		},
	}
}

// openStream connects to an MJPEG endpoint and starts the drain goroutine.
// The returned reader stays valid until Close or until the stream breaks,
// which surfaces through Err.
func openStream(ctx context.Context, url string, headerTimeout time.Duration) (*streamReader, error) {
	streamCtx, cancel := context.WithCancel(ctx)

	req, err := http.NewRequestWithContext(streamCtx, http.MethodGet, url, nil)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("invalid stream url: %w", err)
	}

	resp, err := streamClient(headerTimeout).Do(req)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("stream connect failed: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		cancel()
		return nil, fmt.Errorf("stream returned status %d", resp.StatusCode)
	}

	sr := &streamReader{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	boundary := multipartBoundary(resp.Header.Get("Content-Type"))
	go sr.drain(resp.Body, boundary)

	return sr, nil
}

// Latest returns a copy of the most recently drained frame, or nil when
// nothing has arrived yet.
func (sr *streamReader) Latest() ([]byte, time.Time) {
	sr.mu.Lock()
	defer sr.mu.Unlock()
	if sr.frame == nil {
		return nil, time.Time{}
	}
	out := make([]byte, len(sr.frame))
	copy(out, sr.frame)
	return out, sr.ts
}

// Err reports why the drain goroutine stopped, nil while it is healthy.
func (sr *streamReader) Err() error {
	sr.mu.Lock()
	defer sr.mu.Unlock()
	return sr.err
}

// Close tears down the connection and waits for the drain goroutine.
func (sr *streamReader) Close() {
	sr.cancel()
	<-sr.done
}

func (sr *streamReader) drain(body io.ReadCloser, boundary string) {
	defer close(sr.done)
	defer body.Close()

	var err error
	if boundary != "" {
		err = sr.drainMultipart(body, boundary)
	} else {
		err = sr.drainRaw(body)
	}

	sr.mu.Lock()
	if err == nil {
		err = io.EOF
	}
	sr.err = err
	sr.mu.Unlock()
}

// drainMultipart reads multipart/x-mixed-replace parts, each one JPEG frame.
func (sr *streamReader) drainMultipart(body io.Reader, boundary string) error {
	mr := multipart.NewReader(body, boundary)
	for {
		part, err := mr.NextPart()
		if err != nil {
			return err
		}
		frame, err := io.ReadAll(io.LimitReader(part, maxFrameBytes))
		part.Close()
		if err != nil {
			return err
		}
		if len(frame) > 0 {
			sr.publish(frame)
		}
	}
}

// drainRaw scans a bare JPEG byte stream for SOI/EOI markers, for cameras
// that stream concatenated JPEGs without multipart framing.
func (sr *streamReader) drainRaw(body io.Reader) error {
	eoi := []byte{0xFF, 0xD9}
	buf := make([]byte, 32*1024)
	var pending []byte

	for {
		n, err := body.Read(buf)
		if n > 0 {
			pending = append(pending, buf[:n]...)
			for {
				start := bytes.Index(pending, jpegSOI)
				if start < 0 {
					pending = pending[:0]
					break
				}
				end := bytes.Index(pending[start:], eoi)
				if end < 0 {
					// Keep the partial frame, drop junk before it.
					pending = pending[start:]
					break
				}
				frame := make([]byte, end+2)
				copy(frame, pending[start:start+end+2])
				sr.publish(frame)
				pending = pending[start+end+2:]
			}
			if len(pending) > maxFrameBytes {
				pending = pending[:0]
			}
		}
		if err != nil {
			return err
		}
	}
}

func (sr *streamReader) publish(frame []byte) {
	sr.mu.Lock()
	sr.frame = frame
	sr.ts = time.Now()
	sr.mu.Unlock()
}

// multipartBoundary extracts the boundary from an MJPEG content type, empty
// when the stream is not multipart-framed.
func multipartBoundary(contentType string) string {
	mediaType, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	if !strings.HasPrefix(mediaType, "multipart/") {
		return ""
	}
	return params["boundary"]
}
