// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/transaction-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/transaction-dashboard-api/internal/domain"
)

const (
	insertBatchSize = 500
)

type TransactionRepository interface {
	List(ctx context.Context, filters *domain.TransactionFilters) ([]*domain.Transaction, error)
	Count(ctx context.Context, filters *domain.TransactionFilters) (int64, error)
	GetStatistics(ctx context.Context, month domain.Month) (*domain.Statistics, error)
	CountByPriceRange(ctx context.Context, month domain.Month) (map[int]int64, error)
	CountByCategory(ctx context.Context, month domain.Month) ([]domain.CategoryCount, error)
	ReplaceAll(ctx context.Context, transactions []*domain.Transaction) error
	CountAll(ctx context.Context) (int64, error)
}

type transactionRepository struct {
	conn postgres.Conn
}

func NewTransactionRepository(conn postgres.Conn) TransactionRepository {
	return &transactionRepository{
		conn: conn,
	}
}

func (r *transactionRepository) List(ctx context.Context, filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	query, args, err := listTransactionsQuery(filters).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	transactions := make([]*domain.Transaction, 0, filters.PerPage)
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear transação: %w", err)
		}
		transactions = append(transactions, transaction)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return transactions, nil
}

func (r *transactionRepository) Count(ctx context.Context, filters *domain.TransactionFilters) (int64, error) {
	query, args, err := countTransactionsQuery(filters).ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar transações: %w", err)
	}

	return total, nil
}

func (r *transactionRepository) GetStatistics(ctx context.Context, month domain.Month) (*domain.Statistics, error) {
	query, args, err := statisticsQuery(month).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	statistics := &domain.Statistics{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&statistics.TotalSale,
		&statistics.SoldItems,
		&statistics.NotSoldItems,
	)
	if err != nil {
		return nil, fmt.Errorf("erro ao calcular estatísticas: %w", err)
	}

	return statistics, nil
}

func (r *transactionRepository) CountByPriceRange(ctx context.Context, month domain.Month) (map[int]int64, error) {
	query, args, err := priceRangeQuery(month).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	counts := make(map[int]int64, len(domain.PriceRanges))
	for rows.Next() {
		var bucket int
		var count int64
		if err := rows.Scan(&bucket, &count); err != nil {
			return nil, fmt.Errorf("erro ao escanear faixa de preço: %w", err)
		}
		counts[bucket] = count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return counts, nil
}

func (r *transactionRepository) CountByCategory(ctx context.Context, month domain.Month) ([]domain.CategoryCount, error) {
	query, args, err := categoryQuery(month).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.CategoryCount, 0)
	for rows.Next() {
		var item domain.CategoryCount
		if err := rows.Scan(&item.Category, &item.Count); err != nil {
			return nil, fmt.Errorf("erro ao escanear categoria: %w", err)
		}
		categories = append(categories, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return categories, nil
}

// ReplaceAll apaga todas as transações e insere as novas na mesma transação
func (r *transactionRepository) ReplaceAll(ctx context.Context, transactions []*domain.Transaction) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return replaceTransactions(ctx, tx, transactions)
	})
}

func replaceTransactions(ctx context.Context, q postgres.Queryer, transactions []*domain.Transaction) error {
	deleteQuery, _, err := squirrel.Delete(transactionsTableName).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query de limpeza: %w", err)
	}

	if _, err := q.ExecContext(ctx, deleteQuery); err != nil {
		return fmt.Errorf("erro ao limpar transações: %w", err)
	}

	for start := 0; start < len(transactions); start += insertBatchSize {
		end := min(start+insertBatchSize, len(transactions))

		query, args, err := insertTransactionsQuery(transactions[start:end]).ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de inserção: %w", err)
		}

		if _, err := q.ExecContext(ctx, query, args...); err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
			}
			return fmt.Errorf("erro ao executar query de inserção: %w", err)
		}
	}

	return nil
}

func (r *transactionRepository) CountAll(ctx context.Context) (int64, error) {
	query, args, err := squirrel.Select("COUNT(*)").From(transactionsTable).ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int64
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar transações: %w", err)
	}

	return total, nil
}

func scanTransaction(rows *sql.Rows) (*domain.Transaction, error) {
	transaction := &domain.Transaction{}

	err := rows.Scan(
		&transaction.ID,
		&transaction.ProductID,
		&transaction.Title,
		&transaction.Description,
		&transaction.Price,
		&transaction.Category,
		&transaction.Sold,
		&transaction.DateOfSale,
	)
	if err != nil {
		return nil, err
	}

	transaction.DateOfSale = transaction.DateOfSale.UTC()

	return transaction, nil
}
