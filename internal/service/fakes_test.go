package service

import (
	"context"
	"errors"
	"io"
	"sync"

	"ai-docqa-client/pkg/events"
	"ai-docqa-client/pkg/ragapi"
)

type recordedEvent struct {
	Topic string
	Event events.Event
}

type fakePublisher struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (p *fakePublisher) Publish(_ context.Context, topic string, evt events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recordedEvent{Topic: topic, Event: evt})
	return nil
}

func (p *fakePublisher) count(eventType string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, e := range p.events {
		if e.Event.EventType() == eventType {
			n++
		}
	}
	return n
}

type fakeUploadBackend struct {
	calls int
	res   *ragapi.UploadResponse
	err   error
	got   []byte
}

func (b *fakeUploadBackend) Upload(_ context.Context, _, _ string, content io.Reader) (*ragapi.UploadResponse, error) {
	b.calls++
	b.got, _ = io.ReadAll(content)
	return b.res, b.err
}

type fakeChatBackend struct {
	mu        sync.Mutex
	histories [][]ragapi.HistoryMessage
	queries   []string
	reply     func(query string) (*ragapi.ChatResponse, error)

	// block, when set, holds the call until it is closed.
	block   chan struct{}
	entered chan struct{}
}

func (b *fakeChatBackend) Chat(_ context.Context, query string, history []ragapi.HistoryMessage) (*ragapi.ChatResponse, error) {
	b.mu.Lock()
	b.queries = append(b.queries, query)
	b.histories = append(b.histories, history)
	b.mu.Unlock()

	if b.entered != nil {
		b.entered <- struct{}{}
	}
	if b.block != nil {
		<-b.block
	}
	if b.reply == nil {
		return &ragapi.ChatResponse{Response: "ok", Contexts: []ragapi.Context{}}, nil
	}
	return b.reply(query)
}

type fakeCorpusBackend struct {
	mu        sync.Mutex
	listCalls int
	list      func() (*ragapi.ListDocumentsResponse, error)
	reindex   func() (*ragapi.ReindexAllResponse, error)
}

func (b *fakeCorpusBackend) ListDocuments(_ context.Context) (*ragapi.ListDocumentsResponse, error) {
	b.mu.Lock()
	b.listCalls++
	b.mu.Unlock()
	return b.list()
}

func (b *fakeCorpusBackend) ReindexAll(_ context.Context) (*ragapi.ReindexAllResponse, error) {
	return b.reindex()
}

func (b *fakeCorpusBackend) lists() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.listCalls
}

var errBackendDown = errors.New("connection refused")
