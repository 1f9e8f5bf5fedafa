package aggregating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/duarte550/crmCRIback/internal/domain"
)

func TestFoldOperations(t *testing.T) {
	tests := []struct {
		name        string
		rows        []domain.OperationRow
		wantIDs     []int64
		wantTitulos [][]int64
	}{
		{
			name:        "sem linhas",
			rows:        nil,
			wantIDs:     []int64{},
			wantTitulos: [][]int64{},
		},
		{
			name: "operação sem títulos fica com lista vazia",
			rows: []domain.OperationRow{
				{ID: 1, GroupID: 7},
			},
			wantIDs:     []int64{1},
			wantTitulos: [][]int64{{}},
		},
		{
			name: "preserva a ordem da primeira ocorrência e das linhas de título",
			rows: []domain.OperationRow{
				{ID: 2, TituloID: ptr(int64(20))},
				{ID: 1},
				{ID: 2, TituloID: ptr(int64(21))},
				{ID: 3, TituloID: ptr(int64(30))},
				{ID: 2, TituloID: ptr(int64(19))},
			},
			wantIDs:     []int64{2, 1, 3},
			wantTitulos: [][]int64{{20, 21, 19}, {}, {30}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			operations := FoldOperations(tt.rows)
			require.NotNil(t, operations)
			require.Len(t, operations, len(tt.wantIDs))

			for i, operation := range operations {
				assert.Equal(t, tt.wantIDs[i], operation.ID)
				require.NotNil(t, operation.Titulos)

				ids := make([]int64, 0, len(operation.Titulos))
				for _, titulo := range operation.Titulos {
					ids = append(ids, titulo.ID)
					assert.Equal(t, operation.ID, titulo.OperationID)
				}
				assert.Equal(t, tt.wantTitulos[i], ids)
			}
		})
	}
}
