package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"motordesk/internal/core/apperror"
	"motordesk/internal/domain/records"
	"motordesk/pkg/logger"
)

// Collection tables hold the migrated documents: one row per document, the
// original payload in a jsonb column, insertion order preserved by seq.
// Listing in seq order matters: the reconciler's fuzzy scan resolves ties by
// collection order.
const (
	tableSales     = "doc_sales"
	tableExpenses  = "doc_expenses"
	tableCustomers = "doc_customers"
	tableContracts = "doc_contracts"
	tableVehicles  = "doc_vehicles"
)

// CollectionRepo reads the five document collections and writes expenses.
type CollectionRepo struct {
	tx      *TxManager
	builder squirrel.StatementBuilderType
}

// NewCollectionRepo creates a repository over the document tables.
func NewCollectionRepo(tx *TxManager) *CollectionRepo {
	return &CollectionRepo{
		tx:      tx,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// docRow is one stored document.
type docRow struct {
	ID  string          `db:"id"`
	Doc json.RawMessage `db:"doc"`
}

// listDocs fetches a whole collection in insertion order and maps each row
// through decode.
func listDocs[T any](ctx context.Context, r *CollectionRepo, table string, decode func(row docRow) (T, error)) ([]T, error) {
	q := r.builder.
		Select("id", "doc").
		From(table).
		OrderBy("seq ASC")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []docRow
	querier := r.tx.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &rows, sql, args...); err != nil {
		return nil, apperror.NewDatabase(fmt.Errorf("list %s: %w", table, err))
	}

	return decodeDocs(ctx, table, rows, decode), nil
}

// decodeDocs maps rows through decode, preserving order. The migrated
// documents are where type drift lives, so a row no variant shape covers is
// skipped with a warning rather than failing the whole collection.
func decodeDocs[T any](ctx context.Context, table string, rows []docRow, decode func(row docRow) (T, error)) []T {
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		item, err := decode(row)
		if err != nil {
			logger.Warn(ctx, "skipping undecodable document",
				"table", table,
				"id", row.ID,
				"error", err,
			)
			continue
		}
		out = append(out, item)
	}
	return out
}

// ListSales returns all sales in insertion order.
func (r *CollectionRepo) ListSales(ctx context.Context) ([]records.SaleRecord, error) {
	return listDocs(ctx, r, tableSales, func(row docRow) (records.SaleRecord, error) {
		var raw records.RawSale
		if err := json.Unmarshal(row.Doc, &raw); err != nil {
			return records.SaleRecord{}, err
		}
		raw.ID = row.ID
		return raw.Canonical(), nil
	})
}

// ListExpenses returns all expenses in insertion order.
func (r *CollectionRepo) ListExpenses(ctx context.Context) ([]records.ExpenseRecord, error) {
	return listDocs(ctx, r, tableExpenses, func(row docRow) (records.ExpenseRecord, error) {
		var raw records.RawExpense
		if err := json.Unmarshal(row.Doc, &raw); err != nil {
			return records.ExpenseRecord{}, err
		}
		raw.ID = row.ID
		return raw.Canonical(), nil
	})
}

// ListCustomers returns all customers in insertion order.
func (r *CollectionRepo) ListCustomers(ctx context.Context) ([]records.CustomerProfile, error) {
	return listDocs(ctx, r, tableCustomers, func(row docRow) (records.CustomerProfile, error) {
		var raw records.RawCustomer
		if err := json.Unmarshal(row.Doc, &raw); err != nil {
			return records.CustomerProfile{}, err
		}
		raw.ID = row.ID
		return raw.Canonical(), nil
	})
}

// ListContracts returns all legacy contracts in insertion order.
func (r *CollectionRepo) ListContracts(ctx context.Context) ([]records.LegacyContractProfile, error) {
	return listDocs(ctx, r, tableContracts, func(row docRow) (records.LegacyContractProfile, error) {
		var raw records.RawContract
		if err := json.Unmarshal(row.Doc, &raw); err != nil {
			return records.LegacyContractProfile{}, err
		}
		raw.ID = row.ID
		return raw.Canonical(), nil
	})
}

// ListVehicles returns all vehicles in insertion order.
func (r *CollectionRepo) ListVehicles(ctx context.Context) ([]records.VehicleProfile, error) {
	return listDocs(ctx, r, tableVehicles, func(row docRow) (records.VehicleProfile, error) {
		var raw records.RawVehicle
		if err := json.Unmarshal(row.Doc, &raw); err != nil {
			return records.VehicleProfile{}, err
		}
		raw.ID = row.ID
		return raw.Canonical(), nil
	})
}

// CreateExpense inserts a new expense in the stored document shape.
func (r *CollectionRepo) CreateExpense(ctx context.Context, e records.ExpenseRecord) error {
	doc, err := json.Marshal(records.NewRawExpense(e))
	if err != nil {
		return fmt.Errorf("marshal expense: %w", err)
	}

	q := r.builder.
		Insert(tableExpenses).
		Columns("id", "doc").
		Values(e.ID, doc)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	if _, err := r.tx.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return apperror.NewDatabase(fmt.Errorf("insert expense: %w", err))
	}
	return nil
}
