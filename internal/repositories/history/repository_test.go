package history

import (
	"context"
	"fmt"
	"time"

	"github.com/KirkDiggler/dicesim/internal/models"
	"github.com/stretchr/testify/suite"
)

// RepositoryTestSuite holds the behaviour every history backend must share.
// Backend suites embed it and set newRepo in their SetupTest.
type RepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	newRepo func(capacity int) Repository
	testNow time.Time
}

func (s *RepositoryTestSuite) setup() {
	s.ctx = context.Background()
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
}

func (s *RepositoryTestSuite) newRoll(id string, sides int, results ...int) *models.Roll {
	total := 0
	for _, r := range results {
		total += r
	}

	return &models.Roll{
		ID:       id,
		Dice:     len(results),
		Sides:    sides,
		Results:  results,
		Total:    total,
		RolledAt: s.testNow,
	}
}

func (s *RepositoryTestSuite) appendRolls(repo Repository, count int) []*models.Roll {
	rolls := make([]*models.Roll, 0, count)
	for i := 0; i < count; i++ {
		roll := s.newRoll(fmt.Sprintf("roll-%02d", i), 6, i%6+1)
		s.Require().NoError(repo.AppendRoll(s.ctx, &AppendRollInput{Roll: roll}))
		rolls = append(rolls, roll)
	}
	return rolls
}

func (s *RepositoryTestSuite) allRolls(repo Repository) []*models.Roll {
	output, err := repo.GetAllRolls(s.ctx, &GetAllRollsInput{})
	s.Require().NoError(err)
	return output.Rolls
}

func (s *RepositoryTestSuite) TestAppendAndGetAll() {
	repo := s.newRepo(DefaultCapacity)

	first := s.newRoll("roll-1", 6, 3, 5)
	second := s.newRoll("roll-2", 4, 2, 2, 2)

	s.Require().NoError(repo.AppendRoll(s.ctx, &AppendRollInput{Roll: first}))
	s.Require().NoError(repo.AppendRoll(s.ctx, &AppendRollInput{Roll: second}))

	rolls := s.allRolls(repo)
	s.Require().Len(rolls, 2)
	s.Equal(first, rolls[0])
	s.Equal(second, rolls[1])
}

func (s *RepositoryTestSuite) TestEmptyHistory() {
	repo := s.newRepo(DefaultCapacity)

	s.Empty(s.allRolls(repo))

	recent, err := repo.GetRecentRolls(s.ctx, &GetRecentRollsInput{Limit: 10})
	s.Require().NoError(err)
	s.NotNil(recent.Rolls)
	s.Empty(recent.Rolls)
}

func (s *RepositoryTestSuite) TestEvictsOldestPastCapacity() {
	repo := s.newRepo(DefaultCapacity)

	appended := s.appendRolls(repo, DefaultCapacity+1)

	rolls := s.allRolls(repo)
	s.Require().Len(rolls, DefaultCapacity)
	s.Equal(appended[1:], rolls)
	for _, roll := range rolls {
		s.NotEqual("roll-00", roll.ID)
	}
}

func (s *RepositoryTestSuite) TestEvictsWithSmallCapacity() {
	repo := s.newRepo(3)

	appended := s.appendRolls(repo, 10)

	rolls := s.allRolls(repo)
	s.Require().Len(rolls, 3)
	s.Equal(appended[7:], rolls)
}

func (s *RepositoryTestSuite) TestGetRecentRolls() {
	repo := s.newRepo(DefaultCapacity)
	appended := s.appendRolls(repo, 15)

	recent, err := repo.GetRecentRolls(s.ctx, &GetRecentRollsInput{Limit: 10})
	s.Require().NoError(err)
	s.Equal(appended[5:], recent.Rolls)

	recent, err = repo.GetRecentRolls(s.ctx, &GetRecentRollsInput{Limit: 50})
	s.Require().NoError(err)
	s.Equal(appended, recent.Rolls)

	recent, err = repo.GetRecentRolls(s.ctx, &GetRecentRollsInput{Limit: 0})
	s.Require().NoError(err)
	s.Empty(recent.Rolls)

	recent, err = repo.GetRecentRolls(s.ctx, &GetRecentRollsInput{Limit: -3})
	s.Require().NoError(err)
	s.Empty(recent.Rolls)
}

func (s *RepositoryTestSuite) TestGetRecentRollsDoesNotMutate() {
	repo := s.newRepo(DefaultCapacity)
	s.appendRolls(repo, 5)

	_, err := repo.GetRecentRolls(s.ctx, &GetRecentRollsInput{Limit: 2})
	s.Require().NoError(err)

	s.Len(s.allRolls(repo), 5)
}

func (s *RepositoryTestSuite) TestClearRolls() {
	repo := s.newRepo(DefaultCapacity)
	s.appendRolls(repo, 5)

	s.Require().NoError(repo.ClearRolls(s.ctx, &ClearRollsInput{}))
	s.Empty(s.allRolls(repo))

	// Clearing an empty history is fine
	s.Require().NoError(repo.ClearRolls(s.ctx, &ClearRollsInput{}))

	// And the history is usable afterwards
	s.appendRolls(repo, 1)
	s.Len(s.allRolls(repo), 1)
}

func (s *RepositoryTestSuite) TestAppendNilRoll() {
	repo := s.newRepo(DefaultCapacity)

	s.Error(repo.AppendRoll(s.ctx, nil))
	s.Error(repo.AppendRoll(s.ctx, &AppendRollInput{}))
	s.Empty(s.allRolls(repo))
}
