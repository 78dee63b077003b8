package tracking

import (
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// snapshotBuffer é o tamanho do canal de cada assinante. Snapshots são
// estado completo, então descartar um intermediário não perde informação —
// vale sempre o último.
const snapshotBuffer = 8

// Hub distribui snapshots de vendas para os assinantes de cada data.
// Toda mutação em uma data com assinantes dispara a republicação do
// snapshot completo daquela data.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[*Subscription]struct{}
}

// Subscription é o canal vivo de um assinante para uma única data.
// Close é obrigatório quando o assinante deixa de escutar, senão o
// canal fica registrado no hub indefinidamente.
type Subscription struct {
	C chan []*domain.Sale

	date      string
	hub       *Hub
	closeOnce sync.Once
}

func NewHub() *Hub {
	return &Hub{
		subs: make(map[string]map[*Subscription]struct{}),
	}
}

// Subscribe registra um novo assinante para a data informada
func (h *Hub) Subscribe(date string) *Subscription {
	sub := &Subscription{
		C:    make(chan []*domain.Sale, snapshotBuffer),
		date: date,
		hub:  h,
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subs[date] == nil {
		h.subs[date] = make(map[*Subscription]struct{})
	}
	h.subs[date][sub] = struct{}{}

	return sub
}

// Close remove o assinante do hub e fecha o canal. Idempotente.
func (s *Subscription) Close() {
	s.closeOnce.Do(func() {
		s.hub.mu.Lock()
		defer s.hub.mu.Unlock()

		if subs, ok := s.hub.subs[s.date]; ok {
			delete(subs, s)
			if len(subs) == 0 {
				delete(s.hub.subs, s.date)
			}
		}

		close(s.C)
	})
}

// Date retorna a data assinada
func (s *Subscription) Date() string {
	return s.date
}

// HasSubscribers indica se alguém escuta a data, para evitar buscar o
// snapshot no banco à toa após uma mutação.
func (h *Hub) HasSubscribers(date string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subs[date]) > 0
}

// Publish entrega o snapshot a todos os assinantes da data, sem bloquear.
// Assinante com canal cheio perde o snapshot mais antigo, nunca o último.
func (h *Hub) Publish(date string, snapshot []*domain.Sale) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs[date] {
		select {
		case sub.C <- snapshot:
		default:
			select {
			case <-sub.C:
			default:
			}

			select {
			case sub.C <- snapshot:
			default:
				logrus.WithField("sale_date", date).Warn("Assinante lento, snapshot descartado")
			}
		}
	}
}
