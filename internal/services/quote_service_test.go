package services

import (
	"context"
	"errors"
	"testing"

	"github.com/terraincognita07/habitual/internal/models"
)

type quoteRepositoryStub struct {
	quotes    map[string]models.DailyQuote
	findErr   error
	createErr error
	cutoff    string
}

func newQuoteRepositoryStub() *quoteRepositoryStub {
	return &quoteRepositoryStub{quotes: make(map[string]models.DailyQuote)}
}

func (stub *quoteRepositoryStub) FindByOwnerAndDate(_ context.Context, ownerID string, date string) (models.DailyQuote, bool, error) {
	if stub.findErr != nil {
		return models.DailyQuote{}, false, stub.findErr
	}
	quote, ok := stub.quotes[ownerID+"|"+date]
	return quote, ok, nil
}

func (stub *quoteRepositoryStub) Create(_ context.Context, quote *models.DailyQuote) error {
	if stub.createErr != nil {
		return stub.createErr
	}
	stub.quotes[quote.OwnerID+"|"+quote.Date] = *quote
	return nil
}

func (stub *quoteRepositoryStub) DeleteBefore(_ context.Context, cutoff string) (int64, error) {
	stub.cutoff = cutoff
	var removed int64
	for key, quote := range stub.quotes {
		if quote.Date < cutoff {
			delete(stub.quotes, key)
			removed++
		}
	}
	return removed, nil
}

func TestQuoteServiceGeneratesOncePerDay(t *testing.T) {
	quotes := newQuoteRepositoryStub()
	generator := &insightGeneratorStub{quote: "Small steps compound."}
	service := NewQuoteService(quotes, generator)
	today := mustDay("2026-02-20")

	first := service.Today(context.Background(), "owner-1", today)
	second := service.Today(context.Background(), "owner-1", today)
	if first.Content != "Small steps compound." || second.ID != first.ID {
		t.Fatalf("expected the stored quote to be reused, got %+v and %+v", first, second)
	}
	if generator.quoteCalls != 1 {
		t.Fatalf("expected one generator call, got %d", generator.quoteCalls)
	}

	service.Today(context.Background(), "owner-1", mustDay("2026-02-21"))
	if generator.quoteCalls != 2 {
		t.Fatalf("expected a new quote for a new day, got %d calls", generator.quoteCalls)
	}
}

func TestQuoteServiceFallsBackWithoutStoring(t *testing.T) {
	quotes := newQuoteRepositoryStub()
	service := NewQuoteService(quotes, &insightGeneratorStub{err: errors.New("offline")})

	quote := service.Today(context.Background(), "owner-1", mustDay("2026-02-20"))
	if quote.Content != DailyQuoteFallbackText {
		t.Fatalf("expected fallback text, got %q", quote.Content)
	}
	if len(quotes.quotes) != 0 {
		t.Fatal("expected fallback text not to be stored")
	}
}

func TestQuoteServiceReturnsQuoteWhenSaveFails(t *testing.T) {
	quotes := newQuoteRepositoryStub()
	quotes.createErr = errors.New("read-only")
	service := NewQuoteService(quotes, &insightGeneratorStub{quote: "Rest is part of the work."})

	quote := service.Today(context.Background(), "owner-1", mustDay("2026-02-20"))
	if quote.Content != "Rest is part of the work." {
		t.Fatalf("expected generated quote despite save failure, got %q", quote.Content)
	}
}

func TestQuoteServicePruneBefore(t *testing.T) {
	quotes := newQuoteRepositoryStub()
	quotes.quotes["owner-1|2026-01-01"] = models.DailyQuote{Date: "2026-01-01"}
	quotes.quotes["owner-1|2026-02-20"] = models.DailyQuote{Date: "2026-02-20"}
	service := NewQuoteService(quotes, nil)

	removed, err := service.PruneBefore(context.Background(), mustDay("2026-01-21"))
	if err != nil || removed != 1 {
		t.Fatalf("expected 1 removed, got %d err=%v", removed, err)
	}
	if quotes.cutoff != "2026-01-21" {
		t.Fatalf("unexpected cutoff %q", quotes.cutoff)
	}
}
