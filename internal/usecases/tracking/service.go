package tracking

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

// SalesTracker é o contrato de lançamento e acompanhamento de vendas.
// Toda mutação reflete nos assinantes da data correspondente via hub;
// nenhum eco otimista é feito — o snapshot pós-escrita é a verdade.
type SalesTracker interface {
	AddSale(itemName string, price int64, saleDate string) (*domain.Sale, error)
	UpdateSale(req *domain.UpdateSaleRequest) (*domain.Sale, error)
	DeleteSale(id string) error
	ListSalesByDate(date string) ([]*domain.Sale, error)
	SubscribeByDate(date string) (*Subscription, error)
}

type Service struct {
	saleRepo repository.SaleRepository
	hub      *Hub
}

func NewService(saleRepo repository.SaleRepository, hub *Hub) SalesTracker {
	return &Service{
		saleRepo: saleRepo,
		hub:      hub,
	}
}

// AddSale registra uma venda na data informada. A data nunca é
// recalculada depois disso.
func (s *Service) AddSale(itemName string, price int64, saleDate string) (*domain.Sale, error) {
	if itemName == "" {
		return nil, ErrMissingRequiredData
	}

	if price < 0 {
		return nil, ErrInvalidPrice
	}

	if _, err := utils.ParseDate(saleDate); err != nil || saleDate == "" {
		return nil, ErrInvalidDate
	}

	sale, err := s.saleRepo.CreateSale(itemName, price, saleDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	s.publishSnapshot(saleDate)

	return sale, nil
}

// UpdateSale altera apenas o nome do item e o preço da venda. A venda é
// carregada antes para garantir que sale_date e created_at não mudam.
func (s *Service) UpdateSale(req *domain.UpdateSaleRequest) (*domain.Sale, error) {
	if req.ItemName == "" {
		return nil, ErrMissingRequiredData
	}

	if req.Price < 0 {
		return nil, ErrInvalidPrice
	}

	sale, err := s.saleRepo.GetSaleByID(req.ID)
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	if err := s.saleRepo.UpdateSale(req.ID, req.ItemName, req.Price); err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			return nil, ErrSaleNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	sale.ItemName = req.ItemName
	sale.Price = req.Price

	s.publishSnapshot(sale.SaleDate)

	return sale, nil
}

// DeleteSale remove a venda. Excluir um id já removido responde como
// não encontrado, sem corromper o estado dos assinantes.
func (s *Service) DeleteSale(id string) error {
	sale, err := s.saleRepo.GetSaleByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			return ErrSaleNotFound
		}
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	if err := s.saleRepo.DeleteSale(id); err != nil {
		if errors.Is(err, repository.ErrSaleNotFound) {
			return ErrSaleNotFound
		}
		return fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}

	s.publishSnapshot(sale.SaleDate)

	return nil
}

func (s *Service) ListSalesByDate(date string) ([]*domain.Sale, error) {
	if _, err := utils.ParseDate(date); err != nil || date == "" {
		return nil, ErrInvalidDate
	}

	return s.saleRepo.ListSalesByDate(date)
}

// SubscribeByDate abre a assinatura viva de uma data. O snapshot atual é
// entregue imediatamente no canal; cada mutação posterior entrega o
// snapshot completo recalculado. O chamador deve fechar a assinatura ao
// desmontar, senão o canal vaza.
func (s *Service) SubscribeByDate(date string) (*Subscription, error) {
	if _, err := utils.ParseDate(date); err != nil || date == "" {
		return nil, ErrInvalidDate
	}

	sub := s.hub.Subscribe(date)

	snapshot, err := s.saleRepo.ListSalesByDate(date)
	if err != nil {
		sub.Close()
		return nil, err
	}

	sub.C <- snapshot

	return sub, nil
}

// publishSnapshot recarrega o snapshot da data e entrega aos assinantes.
// Falha aqui não desfaz a mutação que a originou, apenas é registrada —
// o próximo evento da data entrega o estado correto.
func (s *Service) publishSnapshot(date string) {
	if !s.hub.HasSubscribers(date) {
		return
	}

	snapshot, err := s.saleRepo.ListSalesByDate(date)
	if err != nil {
		logrus.WithError(err).WithField("sale_date", date).Error("Erro ao recarregar snapshot para os assinantes")
		return
	}

	s.hub.Publish(date, snapshot)
}
