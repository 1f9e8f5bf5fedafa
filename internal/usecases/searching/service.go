package searching

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/duarte550/crmCRIback/infrastructure/repository"
	"github.com/duarte550/crmCRIback/internal/domain"
)

// likeEscaper escapa os curingas do LIKE para que o termo seja buscado literalmente
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type Searcher interface {
	// Search procura o termo em grupos econômicos e eventos da timeline, sem
	// diferenciar maiúsculas. Um termo vazio não consulta o banco.
	Search(ctx context.Context, term string) (*domain.SearchResult, error)
}

type Service struct {
	searchRepository repository.SearchRepository
}

func NewService(searchRepository repository.SearchRepository) Searcher {
	return &Service{
		searchRepository: searchRepository,
	}
}

func (s *Service) Search(ctx context.Context, term string) (*domain.SearchResult, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return &domain.SearchResult{
			Groups: make([]domain.SearchHit, 0),
			Events: make([]domain.SearchHit, 0),
		}, nil
	}

	pattern := "%" + likeEscaper.Replace(term) + "%"

	var groups, events []domain.SearchHit

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		groups, err = s.searchRepository.SearchGroups(gctx, pattern)
		return err
	})
	g.Go(func() (err error) {
		events, err = s.searchRepository.SearchEvents(gctx, pattern)
		return err
	})

	if err := g.Wait(); err != nil {
		logrus.WithError(err).WithField("term", term).Error("Erro ao realizar busca")
		return nil, err
	}

	if groups == nil {
		groups = make([]domain.SearchHit, 0)
	}
	if events == nil {
		events = make([]domain.SearchHit, 0)
	}

	return &domain.SearchResult{
		Groups: groups,
		Events: events,
	}, nil
}
