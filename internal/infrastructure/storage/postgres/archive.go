package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/klauspost/compress/zstd"

	"motordesk/internal/core/apperror"
	"motordesk/internal/core/id"
	"motordesk/internal/domain/reports"
)

// CompressionAlgo specifies the compression algorithm of a stored snapshot.
type CompressionAlgo string

const (
	CompressionNone CompressionAlgo = "none"
	CompressionZstd CompressionAlgo = "zstd"
)

// archiveRow is one stored dashboard snapshot.
type archiveRow struct {
	ID              id.ID           `db:"id"`
	Filter          json.RawMessage `db:"filter"`
	Payload         []byte          `db:"payload"`
	CompressionAlgo CompressionAlgo `db:"compression_algo"`
	CreatedAt       time.Time       `db:"created_at"`
}

// ArchivedDashboard is a retrieved snapshot with its metadata.
type ArchivedDashboard struct {
	ID        id.ID             `json:"id"`
	Dashboard reports.Dashboard `json:"dashboard"`
	CreatedAt time.Time         `json:"createdAt"`
}

// ReportArchive persists generated dashboard snapshots for later retrieval.
// Payloads above the threshold are stored zstd-compressed.
type ReportArchive struct {
	tx                *TxManager
	builder           squirrel.StatementBuilderType
	encoder           *zstd.Encoder
	decoder           *zstd.Decoder
	compressThreshold int
}

// NewReportArchive creates the archive service.
func NewReportArchive(tx *TxManager) (*ReportArchive, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	return &ReportArchive{
		tx:                tx,
		builder:           squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
		encoder:           encoder,
		decoder:           decoder,
		compressThreshold: 4 * 1024,
	}, nil
}

// Save stores a dashboard snapshot and returns its id.
func (a *ReportArchive) Save(ctx context.Context, d reports.Dashboard) (id.ID, error) {
	payload, err := json.Marshal(d)
	if err != nil {
		return id.Nil(), fmt.Errorf("marshal dashboard: %w", err)
	}
	filterJSON, err := json.Marshal(d.Filter)
	if err != nil {
		return id.Nil(), fmt.Errorf("marshal filter: %w", err)
	}

	algo := CompressionNone
	if len(payload) > a.compressThreshold {
		payload = a.encoder.EncodeAll(payload, nil)
		algo = CompressionZstd
	}

	entryID := id.New()
	q := a.builder.
		Insert("sys_report_archive").
		Columns("id", "filter", "payload", "compression_algo", "created_at").
		Values(entryID, filterJSON, payload, algo, time.Now().UTC())

	sql, args, err := q.ToSql()
	if err != nil {
		return id.Nil(), fmt.Errorf("build insert: %w", err)
	}

	if _, err := a.tx.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return id.Nil(), apperror.NewDatabase(fmt.Errorf("insert snapshot: %w", err))
	}
	return entryID, nil
}

// Get retrieves a stored snapshot by id.
func (a *ReportArchive) Get(ctx context.Context, entryID id.ID) (ArchivedDashboard, error) {
	q := a.builder.
		Select("id", "filter", "payload", "compression_algo", "created_at").
		From("sys_report_archive").
		Where(squirrel.Eq{"id": entryID}).
		Limit(1)

	sql, args, err := q.ToSql()
	if err != nil {
		return ArchivedDashboard{}, fmt.Errorf("build query: %w", err)
	}

	var row archiveRow
	if err := pgxscan.Get(ctx, a.tx.GetQuerier(ctx), &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return ArchivedDashboard{}, apperror.NewNotFound("report snapshot", entryID.String())
		}
		return ArchivedDashboard{}, apperror.NewDatabase(fmt.Errorf("get snapshot: %w", err))
	}

	payload := row.Payload
	if row.CompressionAlgo == CompressionZstd {
		payload, err = a.decoder.DecodeAll(row.Payload, nil)
		if err != nil {
			return ArchivedDashboard{}, fmt.Errorf("decompress snapshot: %w", err)
		}
	}

	var d reports.Dashboard
	if err := json.Unmarshal(payload, &d); err != nil {
		return ArchivedDashboard{}, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	return ArchivedDashboard{ID: row.ID, Dashboard: d, CreatedAt: row.CreatedAt}, nil
}
