package reporting

import (
	"fmt"
	"time"

	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

// WindowDays é o tamanho da janela deslizante do resumo semanal
const WindowDays = 7

// WindowDates devolve as 7 datas [selectedDate-6, selectedDate] em ordem
// crescente, no formato YYYY-MM-DD.
func WindowDates(selectedDate string) ([]string, error) {
	end, err := time.Parse(time.DateOnly, selectedDate)
	if err != nil {
		return nil, fmt.Errorf("data selecionada inválida: %w", err)
	}

	dates := make([]string, 0, WindowDays)
	for i := WindowDays - 1; i >= 0; i-- {
		dates = append(dates, end.AddDate(0, 0, -i).Format(time.DateOnly))
	}

	return dates, nil
}

// Aggregate totaliza as vendas por dia na janela de 7 dias que termina em
// selectedDate. É uma função pura: não importa se os registros vieram da
// assinatura viva ou de uma busca avulsa, o resultado é o mesmo.
//
// O retorno tem sempre 7 entradas em ordem crescente de data, com rótulo
// dia/mês sem zeros à esquerda e total zero para dias sem vendas.
// Registros fora da janela são ignorados.
func Aggregate(selectedDate string, sales []*domain.Sale) ([]*domain.WeeklySummary, error) {
	dates, err := WindowDates(selectedDate)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int64, WindowDays)
	for _, date := range dates {
		totals[date] = 0
	}

	for _, sale := range sales {
		if _, ok := totals[sale.SaleDate]; ok {
			totals[sale.SaleDate] += sale.Price
		}
	}

	summaries := make([]*domain.WeeklySummary, 0, WindowDays)
	for _, date := range dates {
		summaries = append(summaries, &domain.WeeklySummary{
			Date:  dayMonthLabel(date),
			Total: totals[date],
		})
	}

	return summaries, nil
}

// dayMonthLabel formata YYYY-MM-DD como "d/m", igual ao eixo do gráfico
// do dashboard (ex.: 2024-06-09 → "9/6").
func dayMonthLabel(date string) string {
	parsed, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%d/%d", parsed.Day(), int(parsed.Month()))
}
