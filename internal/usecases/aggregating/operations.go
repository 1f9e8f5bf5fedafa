package aggregating

import "github.com/duarte550/crmCRIback/internal/domain"

// FoldOperations agrupa as linhas do LEFT JOIN operação x título em uma
// Operation por id, na ordem em que cada operação aparece pela primeira vez.
// Os títulos mantêm a ordem das linhas; uma operação sem títulos fica com
// lista vazia.
func FoldOperations(rows []domain.OperationRow) []domain.Operation {
	operations := make([]domain.Operation, 0)
	positions := make(map[int64]int)

	for _, row := range rows {
		pos, seen := positions[row.ID]
		if !seen {
			operations = append(operations, domain.Operation{
				ID:          row.ID,
				GroupID:     row.GroupID,
				Description: row.Description,
				Volume:      row.Volume,
				Rating:      row.Rating,
				DueDate:     row.DueDate,
				NextPmt:     row.NextPmt,
				Guarantees:  row.Guarantees,
				Titulos:     make([]domain.Titulo, 0),
			})
			pos = len(operations) - 1
			positions[row.ID] = pos
		}

		if row.TituloID == nil {
			continue
		}

		titulo := domain.Titulo{
			ID:               *row.TituloID,
			OperationID:      row.ID,
			CodigoCetip:      row.TituloCodigoCetip,
			Indexador:        row.TituloIndexador,
			Taxa:             row.TituloTaxa,
			Rating:           row.TituloRating,
			Vencimento:       row.TituloVencimento,
			NextPmt:          row.TituloNextPmt,
			Securitizadora:   row.TituloSecuritizadora,
			AgenteFiduciario: row.TituloAgenteFiduciario,
			VolumeTotal:      row.TituloVolumeTotal,
		}
		if row.TituloOperationID != nil {
			titulo.OperationID = *row.TituloOperationID
		}

		operations[pos].Titulos = append(operations[pos].Titulos, titulo)
	}

	return operations
}
