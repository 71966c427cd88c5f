package repository

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/transaction-dashboard-api/infrastructure/database/mongodb"
	"github.com/vfg2006/transaction-dashboard-api/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// transactionDocument é a representação de uma transação na collection
type transactionDocument struct {
	ID          string             `bson:"_id"`
	ProductID   int64              `bson:"productId"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
	Category    string             `bson:"category"`
	Sold        bool               `bson:"sold"`
	DateOfSale  primitive.DateTime `bson:"dateOfSale"`
}

type mongoTransactionRepository struct {
	collection *mongo.Collection
}

func NewMongoTransactionRepository(conn *mongodb.Connection) TransactionRepository {
	return &mongoTransactionRepository{
		collection: conn.DB.Collection(mongodb.TransactionsCollection),
	}
}

func (r *mongoTransactionRepository) List(ctx context.Context, filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	cursor, err := r.collection.Find(ctx, transactionMatch(filters), listFindOptions(filters))
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar transações: %w", err)
	}
	defer cursor.Close(ctx)

	var documents []transactionDocument
	if err := cursor.All(ctx, &documents); err != nil {
		return nil, fmt.Errorf("erro ao decodificar transações: %w", err)
	}

	transactions := make([]*domain.Transaction, 0, len(documents))
	for _, document := range documents {
		transactions = append(transactions, document.toDomain())
	}

	return transactions, nil
}

func (r *mongoTransactionRepository) Count(ctx context.Context, filters *domain.TransactionFilters) (int64, error) {
	total, err := r.collection.CountDocuments(ctx, transactionMatch(filters))
	if err != nil {
		return 0, fmt.Errorf("erro ao contar transações: %w", err)
	}
	return total, nil
}

func (r *mongoTransactionRepository) GetStatistics(ctx context.Context, month domain.Month) (*domain.Statistics, error) {
	var results []struct {
		TotalSale    float64 `bson:"totalSale"`
		SoldItems    int64   `bson:"soldItems"`
		NotSoldItems int64   `bson:"notSoldItems"`
	}
	if err := r.aggregate(ctx, statisticsPipeline(month), &results); err != nil {
		return nil, fmt.Errorf("erro ao calcular estatísticas: %w", err)
	}

	statistics := &domain.Statistics{TotalSale: decimal.Zero}
	if len(results) == 0 {
		return statistics, nil
	}

	statistics.TotalSale = decimal.NewFromFloat(results[0].TotalSale).Round(2)
	statistics.SoldItems = results[0].SoldItems
	statistics.NotSoldItems = results[0].NotSoldItems

	return statistics, nil
}

func (r *mongoTransactionRepository) CountByPriceRange(ctx context.Context, month domain.Month) (map[int]int64, error) {
	var results []struct {
		Bucket int   `bson:"_id"`
		Count  int64 `bson:"count"`
	}
	if err := r.aggregate(ctx, priceRangePipeline(month), &results); err != nil {
		return nil, fmt.Errorf("erro ao agrupar faixas de preço: %w", err)
	}

	counts := make(map[int]int64, len(domain.PriceRanges))
	for _, result := range results {
		counts[result.Bucket] = result.Count
	}

	return counts, nil
}

func (r *mongoTransactionRepository) CountByCategory(ctx context.Context, month domain.Month) ([]domain.CategoryCount, error) {
	var results []struct {
		Category string `bson:"_id"`
		Count    int64  `bson:"count"`
	}
	if err := r.aggregate(ctx, categoryPipeline(month), &results); err != nil {
		return nil, fmt.Errorf("erro ao agrupar categorias: %w", err)
	}

	categories := make([]domain.CategoryCount, 0, len(results))
	for _, result := range results {
		categories = append(categories, domain.CategoryCount{
			Category: result.Category,
			Count:    result.Count,
		})
	}

	return categories, nil
}

func (r *mongoTransactionRepository) ReplaceAll(ctx context.Context, transactions []*domain.Transaction) error {
	if _, err := r.collection.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("erro ao limpar transações: %w", err)
	}

	if len(transactions) == 0 {
		return nil
	}

	documents := make([]interface{}, 0, len(transactions))
	for _, transaction := range transactions {
		documents = append(documents, newTransactionDocument(transaction))
	}

	if _, err := r.collection.InsertMany(ctx, documents); err != nil {
		return fmt.Errorf("erro ao inserir transações: %w", err)
	}

	return nil
}

func (r *mongoTransactionRepository) CountAll(ctx context.Context) (int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("erro ao contar transações: %w", err)
	}
	return total, nil
}

func (r *mongoTransactionRepository) aggregate(ctx context.Context, pipeline mongo.Pipeline, results interface{}) error {
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	return cursor.All(ctx, results)
}

func newTransactionDocument(transaction *domain.Transaction) transactionDocument {
	return transactionDocument{
		ID:          transaction.ID,
		ProductID:   transaction.ProductID,
		Title:       transaction.Title,
		Description: transaction.Description,
		Price:       transaction.Price.InexactFloat64(),
		Category:    transaction.Category,
		Sold:        transaction.Sold,
		DateOfSale:  primitive.NewDateTimeFromTime(transaction.DateOfSale),
	}
}

func (d transactionDocument) toDomain() *domain.Transaction {
	return &domain.Transaction{
		ID:          d.ID,
		ProductID:   d.ProductID,
		Title:       d.Title,
		Description: d.Description,
		Price:       decimal.NewFromFloat(d.Price),
		Category:    d.Category,
		Sold:        d.Sold,
		DateOfSale:  d.DateOfSale.Time().In(time.UTC),
	}
}

// monthMatch compara o mês de dateOfSale; $month usa UTC quando não há timezone
func monthMatch(month domain.Month) bson.M {
	return bson.M{
		"$expr": bson.M{
			"$eq": bson.A{bson.M{"$month": "$dateOfSale"}, int(month)},
		},
	}
}

func transactionMatch(filters *domain.TransactionFilters) bson.M {
	match := monthMatch(filters.Month)

	search := strings.TrimSpace(filters.Search)
	if search == "" {
		return match
	}

	pattern := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
	searchConditions := bson.A{
		bson.M{"title": pattern},
		bson.M{"description": pattern},
	}

	if price, ok := filters.SearchPrice(); ok {
		searchConditions = append(searchConditions, bson.M{"price": price.InexactFloat64()})
	}

	return bson.M{
		"$and": bson.A{match, bson.M{"$or": searchConditions}},
	}
}

func listFindOptions(filters *domain.TransactionFilters) *options.FindOptions {
	return options.Find().
		SetSort(bson.D{{Key: "productId", Value: 1}, {Key: "_id", Value: 1}}).
		SetSkip(int64(filters.Offset())).
		SetLimit(int64(filters.PerPage))
}

func statisticsPipeline(month domain.Month) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: monthMatch(month)}},
		{{Key: "$group", Value: bson.M{
			"_id":          nil,
			"totalSale":    bson.M{"$sum": "$price"},
			"soldItems":    bson.M{"$sum": bson.M{"$cond": bson.A{"$sold", 1, 0}}},
			"notSoldItems": bson.M{"$sum": bson.M{"$cond": bson.A{"$sold", 0, 1}}},
		}}},
	}
}

// priceBucketSwitch traduz domain.PriceRanges em um $switch que devolve o índice da faixa
func priceBucketSwitch() bson.M {
	branches := bson.A{}
	for i, r := range domain.PriceRanges {
		upper, bounded := r.UpperBound()
		if !bounded {
			continue
		}
		branches = append(branches, bson.M{
			"case": bson.M{"$lte": bson.A{"$price", upper}},
			"then": i,
		})
	}

	return bson.M{
		"$switch": bson.M{
			"branches": branches,
			"default":  domain.LastBucket,
		},
	}
}

func priceRangePipeline(month domain.Month) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: monthMatch(month)}},
		{{Key: "$group", Value: bson.M{
			"_id":   priceBucketSwitch(),
			"count": bson.M{"$sum": 1},
		}}},
	}
}

func categoryPipeline(month domain.Month) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: monthMatch(month)}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$category",
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
}
