package gofpdf

import (
	"bytes"
	"compress/zlib"
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cbl-crm/go_backend/internal/domain/quote"
)

func TestGenerate(t *testing.T) {
	q := quote.Quote{
		Number:    "CBL-20240516-0007",
		CreatedAt: time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC),
		Customer:  quote.Customer{Name: "R. Iyer", Company: "Iyer Traders", GSTIN: "29ABCDE1234F1Z5"},
		Comment:   "Valid for 30 days.",
	}
	q.AddItem(quote.NewLineItem("Cable tray with a rather long description that will be trimmed",
		decimal.NewFromInt(2), decimal.NewFromInt(100), decimal.NewFromInt(10), decimal.NewFromInt(18)))

	out, err := New("CBL Electricals").Generate(q)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestGenerateEmptyQuote(t *testing.T) {
	out, err := New("").Generate(quote.Quote{Number: "QUO-1715855400000-042"})
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestTrim(t *testing.T) {
	assert.Equal(t, "short", trim("short", 10))
	assert.Equal(t, "abcdefg...", trim("abcdefghijklmnop", 10))
}

func TestGenerateNonASCIIText(t *testing.T) {
	q := quote.Quote{
		Number:   "QUO-20240516-0003",
		Customer: quote.Customer{Name: "Café Müller", Company: "Crème Ltd"},
		Comment:  "Prix spécial",
	}
	q.AddItem(quote.NewLineItem("Café table",
		decimal.NewFromInt(1), decimal.NewFromInt(500), decimal.Zero, decimal.NewFromInt(18)))

	out, err := New("Société Générale Électrique").Generate(q)
	require.NoError(t, err)

	text := contentStreams(t, out)
	assert.Contains(t, text, "Caf\xe9 M\xfcller")
	assert.Contains(t, text, "Caf\xe9 table")
	assert.Contains(t, text, "Prix sp\xe9cial")
	assert.Contains(t, text, "Soci\xe9t\xe9")
	assert.NotContains(t, text, "Caf\xc3\xa9")
}

// contentStreams inflates every flate stream in a rendered document.
func contentStreams(t *testing.T, doc []byte) string {
	t.Helper()
	var out bytes.Buffer
	rest := doc
	for {
		start := bytes.Index(rest, []byte("stream\n"))
		if start < 0 {
			break
		}
		rest = rest[start+len("stream\n"):]
		end := bytes.Index(rest, []byte("endstream"))
		if end < 0 {
			break
		}
		zr, err := zlib.NewReader(bytes.NewReader(rest[:end]))
		if err == nil {
			data, _ := io.ReadAll(zr)
			out.Write(data)
			zr.Close()
		}
		rest = rest[end+len("endstream"):]
	}
	return out.String()
}
