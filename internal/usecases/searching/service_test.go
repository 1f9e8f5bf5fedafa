package searching

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/duarte550/crmCRIback/infrastructure/repository/mocks"
	"github.com/duarte550/crmCRIback/internal/domain"
)

func TestService_SearchBlankTermSkipsBackend(t *testing.T) {
	for _, term := range []string{"", "   ", "\t\n"} {
		t.Run("termo "+term, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			// Nenhuma expectativa: qualquer chamada ao repositório falha o teste
			searchRepo := mocks.NewMockSearchRepository(ctrl)

			result, err := NewService(searchRepo).Search(context.Background(), term)
			require.NoError(t, err)

			assert.NotNil(t, result.Groups)
			assert.NotNil(t, result.Events)
			assert.Empty(t, result.Groups)
			assert.Empty(t, result.Events)
		})
	}
}

func TestService_SearchEscapesWildcards(t *testing.T) {
	tests := []struct {
		name        string
		term        string
		wantPattern string
	}{
		{name: "termo simples", term: "alfa", wantPattern: "%alfa%"},
		{name: "espaços nas pontas", term: "  Alfa Beta ", wantPattern: "%Alfa Beta%"},
		{name: "percentual", term: "15%", wantPattern: `%15\%%`},
		{name: "sublinhado", term: "cri_01", wantPattern: `%cri\_01%`},
		{name: "barra invertida", term: `a\b`, wantPattern: `%a\\b%`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			searchRepo := mocks.NewMockSearchRepository(ctrl)

			searchRepo.EXPECT().SearchGroups(gomock.Any(), tt.wantPattern).Return([]domain.SearchHit{{ID: 1, Title: "Grupo Alfa"}}, nil)
			searchRepo.EXPECT().SearchEvents(gomock.Any(), tt.wantPattern).Return(nil, nil)

			result, err := NewService(searchRepo).Search(context.Background(), tt.term)
			require.NoError(t, err)

			assert.Len(t, result.Groups, 1)
			assert.NotNil(t, result.Events)
		})
	}
}

func TestService_SearchFailsWhenOneSourceFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	searchRepo := mocks.NewMockSearchRepository(ctrl)

	queryErr := &domain.QueryError{Op: "busca.eventos", Err: errors.New("syntax error")}

	searchRepo.EXPECT().SearchGroups(gomock.Any(), "%alfa%").Return([]domain.SearchHit{{ID: 1}}, nil)
	searchRepo.EXPECT().SearchEvents(gomock.Any(), "%alfa%").Return(nil, queryErr)

	result, err := NewService(searchRepo).Search(context.Background(), "alfa")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, queryErr)
}
