package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

const (
	salesTable = "sales"

	// Limite de valores aceitos pelo filtro de pertinência de datas.
	// Quem precisar de mais de 30 datas deve fatiar a janela em
	// consultas menores.
	MaxDatesPerQuery = 30
)

var (
	// ErrSaleNotFound indica que a venda não existe mais no banco
	ErrSaleNotFound = errors.New("venda não encontrada")
	// ErrTooManyDates indica que o filtro de datas excede MaxDatesPerQuery
	ErrTooManyDates = errors.New("filtro de datas excede o limite permitido")
)

type SaleRepository interface {
	CreateSale(itemName string, price int64, saleDate string) (*domain.Sale, error)
	UpdateSale(id string, itemName string, price int64) error
	DeleteSale(id string) error
	GetSaleByID(id string) (*domain.Sale, error)
	ListSalesByDate(date string) ([]*domain.Sale, error)
	ListSalesByDates(dates []string) ([]*domain.Sale, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

// CreateSale insere uma nova venda com ID opaco gerado pelo servidor e
// created_at atribuído pelo banco. A data da venda nunca é recalculada
// depois da criação.
func (r *saleRepository) CreateSale(itemName string, price int64, saleDate string) (*domain.Sale, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id da venda: %w", err)
	}

	queryBuilder := squirrel.
		Insert(salesTable).
		Columns("id", "item_name", "price", "sale_date").
		Values(id, itemName, price, saleDate).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar)

	saleSQL, saleArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	sale := &domain.Sale{
		ID:       id,
		ItemName: itemName,
		Price:    price,
		SaleDate: saleDate,
	}

	err = r.conn.QueryRow(saleSQL, saleArgs...).Scan(&sale.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return sale, nil
}

// UpdateSale altera apenas item_name e price; id, sale_date e created_at
// permanecem intocados.
func (r *saleRepository) UpdateSale(id string, itemName string, price int64) error {
	queryBuilder := squirrel.
		Update(salesTable).
		Set("item_name", itemName).
		Set("price", price).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	saleSQL, saleArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(saleSQL, saleArgs...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return ErrSaleNotFound
	}

	return nil
}

func (r *saleRepository) DeleteSale(id string) error {
	queryBuilder := squirrel.
		Delete(salesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	saleSQL, saleArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(saleSQL, saleArgs...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return ErrSaleNotFound
	}

	return nil
}

func (r *saleRepository) GetSaleByID(id string) (*domain.Sale, error) {
	query, args, err := squirrel.
		Select("id", "item_name", "price", "created_at", "sale_date").
		From(salesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	sale, err := r.scanSale(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("erro ao escanear venda: %w", err)
	}

	return sale, nil
}

// ListSalesByDate retorna o snapshot completo das vendas de uma data,
// ordenado por created_at decrescente (mais recente primeiro). Ausência
// de vendas resulta em uma lista vazia, não em erro.
func (r *saleRepository) ListSalesByDate(date string) ([]*domain.Sale, error) {
	query, args, err := squirrel.
		Select("id", "item_name", "price", "created_at", "sale_date").
		From(salesTable).
		Where(squirrel.Eq{"sale_date": date}).
		OrderBy("created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.querySales(query, args)
}

// ListSalesByDates busca todas as vendas cuja data pertence ao conjunto
// informado. O chamador é responsável por manter o conjunto dentro de
// MaxDatesPerQuery; acima disso a busca falha com ErrTooManyDates.
func (r *saleRepository) ListSalesByDates(dates []string) ([]*domain.Sale, error) {
	if len(dates) > MaxDatesPerQuery {
		return nil, ErrTooManyDates
	}

	query, args, err := squirrel.
		Select("id", "item_name", "price", "created_at", "sale_date").
		From(salesTable).
		Where(squirrel.Eq{"sale_date": dates}).
		OrderBy("sale_date ASC", "created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.querySales(query, args)
}

func (r *saleRepository) querySales(query string, args []interface{}) ([]*domain.Sale, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	sales := make([]*domain.Sale, 0)
	for rows.Next() {
		var sale domain.Sale
		if err := rows.Scan(
			&sale.ID,
			&sale.ItemName,
			&sale.Price,
			&sale.CreatedAt,
			&sale.SaleDate,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear venda: %w", err)
		}
		sales = append(sales, &sale)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return sales, nil
}

func (r *saleRepository) scanSale(row *sql.Row) (*domain.Sale, error) {
	sale := &domain.Sale{}

	err := row.Scan(
		&sale.ID,
		&sale.ItemName,
		&sale.Price,
		&sale.CreatedAt,
		&sale.SaleDate,
	)
	if err != nil {
		return nil, err
	}

	return sale, nil
}
