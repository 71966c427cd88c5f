package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/transaction-dashboard-api/internal/domain"
	"github.com/vfg2006/transaction-dashboard-api/pkg/utils"
)

const (
	defaultPage = 1

	// Zero delega ao serviço o valor padrão configurado
	defaultPerPage = 0
)

// monthParam lê o mês da query; meses desconhecidos viram 0 e não casam com nenhum registro
func monthParam(r *http.Request) domain.Month {
	return domain.ParseMonth(r.URL.Query().Get("month"))
}

func transactionFilters(r *http.Request) (*domain.TransactionFilters, error) {
	const op = "handler.transactionFilters"

	query := r.URL.Query()

	page, err := utils.ParsePositiveInt(query.Get("page"), defaultPage)
	if err != nil {
		return nil, domain.NewError(domain.ErrKindBadParameter, op, errors.Wrap(err, "page"))
	}

	perPage, err := utils.ParsePositiveInt(query.Get("perPage"), defaultPerPage)
	if err != nil {
		return nil, domain.NewError(domain.ErrKindBadParameter, op, errors.Wrap(err, "perPage"))
	}

	return &domain.TransactionFilters{
		Month:   monthParam(r),
		Search:  query.Get("search"),
		Page:    page,
		PerPage: perPage,
	}, nil
}
