// Package loki is a small push client for the Loki HTTP API. Entries
// buffer in memory and go out as one gzipped request when the batch
// fills or the flush interval elapses.
package loki

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {

	// URL of the push endpoint, e.g. https://loki.example.com/loki/api/v1/push
	URL string `validate:"required,url"`

	// Labels attached to every shipped entry.
	Labels map[string]string

	// Username and Password enable basic auth when both are set.
	Username string
	Password string

	// BatchSize is the number of entries that triggers an immediate flush.
	BatchSize int `validate:"gte=1"`

	// FlushInterval bounds how long an entry may sit in the buffer.
	FlushInterval time.Duration `validate:"gte=1"`
}

func (cfg *Config) setDefaults() {
	if cfg.BatchSize == 0 {
		cfg.BatchSize = 500
	}
	if cfg.FlushInterval == 0 {
		cfg.FlushInterval = 5 * time.Second
	}
	if cfg.Labels == nil {
		cfg.Labels = map[string]string{}
	}
}

type Entry struct {
	Level   string `json:"level"`
	Message string `json:"msg"`
	Caller  string `json:"caller,omitempty"`
}

// Shipper accepts entries from any goroutine and ships them from a
// single background worker. Flush failures are reported through the
// onError callback rather than logged, so the owning logger can decide
// how to surface them without feeding Loki errors back into Loki.
type Shipper struct {
	cfg       Config
	client    *http.Client
	entries   chan Entry
	quit      chan struct{}
	closeOnce sync.Once
	done      sync.WaitGroup
	onError   func(error)
}

func NewShipper(ctx context.Context, cfg Config, onError func(error)) (*Shipper, error) {

	cfg.setDefaults()
	if err := validator.New().Struct(cfg); err != nil {
		return nil, err
	}
	if onError == nil {
		onError = func(error) {}
	}

	s := &Shipper{
		cfg:     cfg,
		client:  &http.Client{Timeout: 10 * time.Second},
		entries: make(chan Entry, cfg.BatchSize),
		quit:    make(chan struct{}),
		onError: onError,
	}

	s.done.Add(1)
	go s.run(ctx)
	return s, nil
}

// Ship queues an entry for delivery. It never blocks: when the buffer
// is full the entry is dropped and reported through onError.
func (s *Shipper) Ship(e Entry) {
	select {
	case s.entries <- e:
	default:
		s.onError(fmt.Errorf("loki buffer full, dropping entry"))
	}
}

// Close flushes buffered entries and stops the worker.
func (s *Shipper) Close() {
	s.closeOnce.Do(func() { close(s.quit) })
	s.done.Wait()
}

func (s *Shipper) run(ctx context.Context) {
	defer s.done.Done()

	ticker := time.NewTicker(s.cfg.FlushInterval)
	defer ticker.Stop()

	batch := make([]Entry, 0, s.cfg.BatchSize)

	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := s.push(batch); err != nil {
			s.onError(err)
		}
		batch = batch[:0]
	}

	for {
		select {
		case <-ctx.Done():
			flush()
			return
		case <-s.quit:
			s.drain(&batch)
			flush()
			return
		case e := <-s.entries:
			batch = append(batch, e)
			if len(batch) >= s.cfg.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}

func (s *Shipper) drain(batch *[]Entry) {
	for {
		select {
		case e := <-s.entries:
			*batch = append(*batch, e)
		default:
			return
		}
	}
}

type pushRequest struct {
	Streams []stream `json:"streams"`
}

type stream struct {
	Stream map[string]string `json:"stream"`
	Values [][2]string       `json:"values"`
}

func (s *Shipper) push(batch []Entry) error {

	values := make([][2]string, 0, len(batch))
	now := strconv.FormatInt(time.Now().UnixNano(), 10)
	for _, e := range batch {
		line, err := json.Marshal(e)
		if err != nil {
			continue
		}
		values = append(values, [2]string{now, string(line)})
	}

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if err := json.NewEncoder(gz).Encode(pushRequest{Streams: []stream{{
		Stream: s.cfg.Labels,
		Values: values,
	}}}); err != nil {
		return err
	}
	if err := gz.Close(); err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, s.cfg.URL, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Encoding", "gzip")
	if s.cfg.Username != "" && s.cfg.Password != "" {
		req.SetBasicAuth(s.cfg.Username, s.cfg.Password)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected response from Loki: %s, body: %s", resp.Status, string(body))
	}
	return nil
}
