package repository

import (
	"strconv"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/transaction-dashboard-api/internal/domain"
)

const (
	transactionsTableName = "transactions"
	transactionsTable     = "transactions t"

	// O mês é sempre extraído em UTC, independente do timezone da sessão
	saleMonthExpr = "EXTRACT(MONTH FROM t.date_of_sale AT TIME ZONE 'UTC')"
)

var transactionColumns = []string{
	"t.id",
	"t.product_id",
	"t.title",
	"t.description",
	"t.price",
	"t.category",
	"t.sold",
	"t.date_of_sale",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func monthFilter(month domain.Month) squirrel.Sqlizer {
	return squirrel.Expr(saleMonthExpr+" = ?", int(month))
}

// transactionFilter combina o filtro de mês com a busca textual/numérica
func transactionFilter(filters *domain.TransactionFilters) squirrel.And {
	conditions := squirrel.And{monthFilter(filters.Month)}

	search := strings.TrimSpace(filters.Search)
	if search == "" {
		return conditions
	}

	pattern := "%" + likeEscaper.Replace(search) + "%"
	searchConditions := squirrel.Or{
		squirrel.ILike{"t.title": pattern},
		squirrel.ILike{"t.description": pattern},
	}

	if price, ok := filters.SearchPrice(); ok {
		searchConditions = append(searchConditions, squirrel.Eq{"t.price": price.String()})
	}

	return append(conditions, searchConditions)
}

func listTransactionsQuery(filters *domain.TransactionFilters) squirrel.SelectBuilder {
	return squirrel.
		Select(transactionColumns...).
		From(transactionsTable).
		Where(transactionFilter(filters)).
		OrderBy("t.product_id ASC", "t.id ASC").
		Limit(uint64(filters.PerPage)).
		Offset(uint64(filters.Offset())).
		PlaceholderFormat(squirrel.Dollar)
}

func countTransactionsQuery(filters *domain.TransactionFilters) squirrel.SelectBuilder {
	return squirrel.
		Select("COUNT(*)").
		From(transactionsTable).
		Where(transactionFilter(filters)).
		PlaceholderFormat(squirrel.Dollar)
}

func statisticsQuery(month domain.Month) squirrel.SelectBuilder {
	return squirrel.
		Select(
			"COALESCE(SUM(t.price), 0)",
			"COUNT(*) FILTER (WHERE t.sold)",
			"COUNT(*) FILTER (WHERE NOT t.sold)",
		).
		From(transactionsTable).
		Where(monthFilter(month)).
		PlaceholderFormat(squirrel.Dollar)
}

// priceBucketCase traduz domain.PriceRanges em um CASE que devolve o índice da faixa
func priceBucketCase() squirrel.CaseBuilder {
	bucketCase := squirrel.Case()
	for i, r := range domain.PriceRanges {
		upper, bounded := r.UpperBound()
		if !bounded {
			continue
		}
		bucketCase = bucketCase.When(squirrel.Expr("t.price <= ?", upper), strconv.Itoa(i))
	}
	return bucketCase.Else(strconv.Itoa(domain.LastBucket))
}

func priceRangeQuery(month domain.Month) squirrel.SelectBuilder {
	return squirrel.
		Select().
		Column(squirrel.Alias(priceBucketCase(), "bucket")).
		Column("COUNT(*)").
		From(transactionsTable).
		Where(monthFilter(month)).
		GroupBy("bucket").
		PlaceholderFormat(squirrel.Dollar)
}

func categoryQuery(month domain.Month) squirrel.SelectBuilder {
	return squirrel.
		Select("t.category", "COUNT(*)").
		From(transactionsTable).
		Where(monthFilter(month)).
		GroupBy("t.category").
		OrderBy("t.category ASC").
		PlaceholderFormat(squirrel.Dollar)
}

func insertTransactionsQuery(transactions []*domain.Transaction) squirrel.InsertBuilder {
	query := squirrel.StatementBuilder.
		Insert(transactionsTableName).
		Columns(
			"id",
			"product_id",
			"title",
			"description",
			"price",
			"category",
			"sold",
			"date_of_sale",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, transaction := range transactions {
		query = query.Values(
			transaction.ID,
			transaction.ProductID,
			transaction.Title,
			transaction.Description,
			transaction.Price.String(),
			transaction.Category,
			transaction.Sold,
			transaction.DateOfSale.UTC(),
		)
	}

	return query
}
