package postgres

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motordesk/internal/domain/records"
)

func decodeCustomer(row docRow) (records.CustomerProfile, error) {
	var raw records.RawCustomer
	if err := json.Unmarshal(row.Doc, &raw); err != nil {
		return records.CustomerProfile{}, err
	}
	raw.ID = row.ID
	return raw.Canonical(), nil
}

func TestDecodeDocsSkipsMalformedRows(t *testing.T) {
	rows := []docRow{
		{ID: "c1", Doc: json.RawMessage(`{"nome": "Maria"}`)},
		// A numeric telefone does not fit any variant shape.
		{ID: "c2", Doc: json.RawMessage(`{"nome": "Pedro", "telefone": 11987654321}`)},
		{ID: "c3", Doc: json.RawMessage(`{"nome": "José"}`)},
	}

	got := decodeDocs(context.Background(), tableCustomers, rows, decodeCustomer)

	require.Len(t, got, 2)
	assert.Equal(t, "Maria", got[0].Name)
	assert.Equal(t, "José", got[1].Name)
}

func TestDecodeDocsPreservesOrder(t *testing.T) {
	rows := []docRow{
		{ID: "c1", Doc: json.RawMessage(`{"nome": "Ana"}`)},
		{ID: "c2", Doc: json.RawMessage(`{"nome": "Bia"}`)},
	}

	got := decodeDocs(context.Background(), tableCustomers, rows, decodeCustomer)

	require.Len(t, got, 2)
	assert.Equal(t, "c1", got[0].ID)
	assert.Equal(t, "c2", got[1].ID)
}
