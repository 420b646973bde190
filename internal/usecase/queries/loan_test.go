//go:build unit

package queries_test

import (
	"context"
	"testing"

	"udhaarbook/internal/infra"
	"udhaarbook/internal/pkg/errs"
	"udhaarbook/internal/usecase/queries"
	"udhaarbook/tests/common/builder"
	queriesmock "udhaarbook/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LoanQueriesTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockReadStore *queriesmock.MockLoanReadStore
	queries       queries.LoanQueries
}

func (s *LoanQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockReadStore = queriesmock.NewMockLoanReadStore(s.mockCtrl)
	s.queries = queries.NewLoanQueries(s.mockReadStore)
}

func (s *LoanQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLoanQueriesSuite(t *testing.T) {
	suite.Run(t, new(LoanQueriesTestSuite))
}

func (s *LoanQueriesTestSuite) TestGetByID() {
	ctx := context.Background()

	s.Run("success: accessible loan is returned", func() {
		loanB := builder.NewLoanBuilder()
		view := loanB.BuildReadModel()
		s.mockReadStore.EXPECT().IsAccessibleBy(gomock.Any(), loanB.ID, loanB.RecorderID).Return(true, nil)
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), loanB.ID).Return(view, nil)

		got, err := s.queries.GetByID(ctx, loanB.ID, loanB.RecorderID)
		s.Require().NoError(err)
		s.Equal(view, got)
	})

	s.Run("error: inaccessible loan is indistinguishable from missing", func() {
		loanID, stranger := uuid.New(), uuid.New()
		s.mockReadStore.EXPECT().IsAccessibleBy(gomock.Any(), loanID, stranger).Return(false, nil)
		// FindByID must not run for an inaccessible loan.

		_, err := s.queries.GetByID(ctx, loanID, stranger)
		s.ErrorIs(err, queries.ErrLoanNotFound)
	})

	s.Run("error: missing loan", func() {
		loanB := builder.NewLoanBuilder()
		notFound := infra.WrapRepoErr("no loan", errs.New("no rows"), infra.KindNotFound)
		s.mockReadStore.EXPECT().IsAccessibleBy(gomock.Any(), loanB.ID, loanB.RecorderID).Return(true, nil)
		s.mockReadStore.EXPECT().FindByID(gomock.Any(), loanB.ID).Return(nil, notFound)

		_, err := s.queries.GetByID(ctx, loanB.ID, loanB.RecorderID)
		s.ErrorIs(err, queries.ErrLoanNotFound)
	})
}
