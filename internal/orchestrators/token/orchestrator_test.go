package token_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/ipc-metadata/internal/clients/labels"
	enginemock "github.com/KirkDiggler/ipc-metadata/internal/engine/mock"
	"github.com/KirkDiggler/ipc-metadata/internal/entities/ipc"
	"github.com/KirkDiggler/ipc-metadata/internal/errors"
	"github.com/KirkDiggler/ipc-metadata/internal/orchestrators/token"
	"github.com/KirkDiggler/ipc-metadata/internal/pkg/metrics"
	tokenrepo "github.com/KirkDiggler/ipc-metadata/internal/repositories/token"
	tokenrepomock "github.com/KirkDiggler/ipc-metadata/internal/repositories/token/mock"
	"github.com/KirkDiggler/ipc-metadata/internal/services/metadata"
	"github.com/KirkDiggler/ipc-metadata/internal/testutils"
)

type stubRoller struct {
	result int
	sizes  []int
}

func (s *stubRoller) Roll(size int) (int, error) {
	s.sizes = append(s.sizes, size)
	return s.result, nil
}

func (s *stubRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i], _ = s.Roll(size)
	}
	return out, nil
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockRepo    *tokenrepomock.MockRepository
	mockDecoder *enginemock.MockDecoder
	roller      *stubRoller
	metrics     *metrics.Metrics
	service     token.Service
	ctx         context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = tokenrepomock.NewMockRepository(s.ctrl)
	s.mockDecoder = enginemock.NewMockDecoder(s.ctrl)
	s.roller = &stubRoller{result: 7}
	s.ctx = context.Background()

	m, err := metrics.New(prometheus.NewRegistry())
	s.Require().NoError(err)
	s.metrics = m

	lookup, err := labels.New(nil)
	s.Require().NoError(err)

	svc, err := token.NewOrchestrator(&token.Config{
		TokenRepo: s.mockRepo,
		Decoder:   s.mockDecoder,
		Labels:    lookup,
		Roller:    s.roller,
		Metrics:   s.metrics,
	})
	s.Require().NoError(err)
	s.service = svc
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) expectSupply(contract string, supply int64) {
	s.mockRepo.EXPECT().
		GetSupply(s.ctx, tokenrepo.GetSupplyInput{Contract: contract}).
		Return(&tokenrepo.GetSupplyOutput{TotalSupply: supply}, nil)
}

func (s *OrchestratorTestSuite) expectFields(contract string, tokenID int64) *ipc.OnChainFields {
	fields := testutils.CreateTestOnChainFields(tokenID)
	s.mockRepo.EXPECT().
		Get(s.ctx, tokenrepo.GetInput{Contract: contract, TokenID: tokenID}).
		Return(&tokenrepo.GetOutput{Fields: fields}, nil)
	return fields
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := token.NewOrchestrator(nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = token.NewOrchestrator(&token.Config{})
	s.Require().Error(err)
	s.Assert().Contains(err.Error(), "TokenRepo: is required")
	s.Assert().Contains(err.Error(), "Decoder: is required")
	s.Assert().Contains(err.Error(), "Labels: is required")
}

func (s *OrchestratorTestSuite) TestGetMetadataComposites() {
	s.expectSupply(ipc.ContractV1, 1000)
	fields := s.expectFields(ipc.ContractV1, 420)

	physical := ipc.PhysicalTraits{2, 5, 1, 3, 2, 4, 6, 7}
	s.mockDecoder.EXPECT().DecodePhysical(fields.DNA).Return(physical, nil)
	s.mockDecoder.EXPECT().
		DecodeAttributes(fields.AttributeSeed).
		Return(ipc.RawAttributes{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}, nil)

	out, err := s.service.GetMetadata(s.ctx, &token.GetMetadataInput{TokenID: 420})
	s.Require().NoError(err)

	s.Assert().Equal(int64(1000), out.TotalSupply)
	rec := out.Record.Record
	s.Assert().Equal(int64(420), rec.ID)
	s.Assert().Equal(6, rec.Attributes.Strength())
	s.Assert().Equal(15, rec.Attributes.Dexterity())
	s.Assert().Equal(24, rec.Attributes.Intelligence())
	s.Assert().Equal(33, rec.Attributes.Constitution())
	s.Assert().Equal(13, rec.Attributes.Luck())
	s.Assert().Equal(physical, rec.Physical)

	s.Assert().Equal("Elf", out.Record.Labels.Race)
	s.Assert().Equal("Wood Elf", out.Record.Labels.Subrace)
	s.Assert().Equal("Violet", out.Record.Labels.EyeColor)

	s.Assert().Equal(1.0, testutil.ToFloat64(s.metrics.Lookups.WithLabelValues(ipc.ContractV1, "OK")))
	s.Assert().Equal(1, testutil.CollectAndCount(s.metrics.DecodeDuration))
}

func (s *OrchestratorTestSuite) TestGetMetadataUsesRequestedContract() {
	s.expectSupply(ipc.ContractV0, 50)
	fields := s.expectFields(ipc.ContractV0, 12)
	s.mockDecoder.EXPECT().DecodePhysical(fields.DNA).Return(ipc.PhysicalTraits{1, 1, 1, 1, 1, 1, 1, 1}, nil)
	s.mockDecoder.EXPECT().DecodeAttributes(fields.AttributeSeed).Return(ipc.RawAttributes{}, nil)

	out, err := s.service.GetMetadata(s.ctx, &token.GetMetadataInput{TokenID: 12, Contract: ipc.ContractV0})
	s.Require().NoError(err)
	s.Assert().Equal(int64(50), out.TotalSupply)
}

func (s *OrchestratorTestSuite) TestGetMetadataOutOfRangeSkipsDecoding() {
	testCases := []struct {
		name    string
		tokenID int64
	}{
		{name: "beyond supply", tokenID: 5000},
		{name: "zero", tokenID: 0},
		{name: "negative", tokenID: -1},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			// no Get and no decoder expectations: any such call fails the test
			s.expectSupply(ipc.ContractV1, 1000)

			out, err := s.service.GetMetadata(s.ctx, &token.GetMetadataInput{TokenID: tc.tokenID})
			s.Require().Error(err)
			s.Assert().True(ipc.IsOutOfRangeError(err))
			s.Assert().Equal(tc.tokenID, errors.GetMeta(err)["token_id"])
			s.Assert().Equal(int64(1000), errors.GetMeta(err)["total_supply"])
			s.Assert().Nil(out)
		})
	}

	s.Assert().Equal(3.0, testutil.ToFloat64(s.metrics.Lookups.WithLabelValues(ipc.ContractV1, "OUT_OF_RANGE")))
}

func (s *OrchestratorTestSuite) TestGetMetadataDecodeErrorAborts() {
	s.expectSupply(ipc.ContractV1, 1000)
	fields := s.expectFields(ipc.ContractV1, 9)

	s.mockDecoder.EXPECT().
		DecodePhysical(fields.DNA).
		Return(ipc.PhysicalTraits{}, ipc.NewDecodeError("dna", string(fields.DNA), nil))
	s.mockDecoder.EXPECT().
		DecodeAttributes(fields.AttributeSeed).
		Return(ipc.RawAttributes{}, nil).
		AnyTimes()

	out, err := s.service.GetMetadata(s.ctx, &token.GetMetadataInput{TokenID: 9})
	s.Require().Error(err)
	s.Assert().True(ipc.IsDecodeError(err))
	s.Assert().Nil(out)
}

func (s *OrchestratorTestSuite) TestGetMetadataUnknownLabel() {
	s.expectSupply(ipc.ContractV1, 1000)
	fields := s.expectFields(ipc.ContractV1, 33)

	s.mockDecoder.EXPECT().DecodePhysical(fields.DNA).Return(ipc.PhysicalTraits{1, 2, 2, 3, 1, 2, 3, 250}, nil)
	s.mockDecoder.EXPECT().DecodeAttributes(fields.AttributeSeed).Return(ipc.RawAttributes{5, 5, 5}, nil)

	out, err := s.service.GetMetadata(s.ctx, &token.GetMetadataInput{TokenID: 33})
	s.Require().NoError(err)

	s.Assert().Equal(ipc.Labels{
		Race:       "Human",
		Subrace:    "Mediterranean",
		Gender:     "Female",
		Height:     "Average",
		Handedness: "Left",
		SkinColor:  "Fair",
		HairColor:  "Red",
		EyeColor:   metadata.UnknownLabel,
	}, out.Record.Labels)
	s.Assert().Equal(byte(250), out.Record.Record.Physical[ipc.TraitEyeColor])
	s.Assert().Equal(15, out.Record.Record.Attributes.Strength())
	s.Assert().Equal(fields.Name, out.Record.Record.Name)

	s.Assert().Equal(1.0, testutil.ToFloat64(s.metrics.LabelMisses.WithLabelValues("eye_color")))
}

func (s *OrchestratorTestSuite) TestGetMetadataResolutionErrors() {
	s.Run("supply not indexed", func() {
		s.mockRepo.EXPECT().
			GetSupply(s.ctx, tokenrepo.GetSupplyInput{Contract: ipc.ContractV1}).
			Return(nil, errors.NotFound("total supply is not indexed"))

		_, err := s.service.GetMetadata(s.ctx, &token.GetMetadataInput{TokenID: 1})
		s.Assert().True(errors.IsNotFound(err))
	})

	s.Run("token not indexed", func() {
		s.expectSupply(ipc.ContractV1, 1000)
		s.mockRepo.EXPECT().
			Get(s.ctx, tokenrepo.GetInput{Contract: ipc.ContractV1, TokenID: 2}).
			Return(nil, errors.NotFound("token 2 is not indexed"))

		_, err := s.service.GetMetadata(s.ctx, &token.GetMetadataInput{TokenID: 2})
		s.Assert().True(errors.IsNotFound(err))
	})

	s.Run("store down", func() {
		s.mockRepo.EXPECT().
			GetSupply(s.ctx, tokenrepo.GetSupplyInput{Contract: ipc.ContractV1}).
			Return(nil, context.DeadlineExceeded)

		_, err := s.service.GetMetadata(s.ctx, &token.GetMetadataInput{TokenID: 1})
		s.Assert().True(errors.IsUnavailable(err))
	})

	s.Run("nil input", func() {
		_, err := s.service.GetMetadata(s.ctx, nil)
		s.Assert().True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestUnknownContractKeepsMetricLabelsBounded() {
	// no repository expectations: unknown contracts never reach the store
	for i := 0; i < 50; i++ {
		out, err := s.service.GetMetadata(s.ctx, &token.GetMetadataInput{
			TokenID:  1,
			Contract: fmt.Sprintf("v%d-bogus", i),
		})
		s.Require().Error(err)
		s.Assert().True(errors.IsInvalidArgument(err))
		s.Assert().Contains(err.Error(), "contract: must be one of: v0, v1")
		s.Assert().Nil(out)
	}

	s.Assert().Equal(0, testutil.CollectAndCount(s.metrics.Lookups))

	_, err := s.service.RandomToken(s.ctx, &token.RandomTokenInput{Contract: "v2"})
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Empty(s.roller.sizes)
}

func (s *OrchestratorTestSuite) TestRandomToken() {
	s.expectSupply(ipc.ContractV1, 1000)

	out, err := s.service.RandomToken(s.ctx, &token.RandomTokenInput{})
	s.Require().NoError(err)
	s.Assert().Equal(int64(7), out.TokenID)
	s.Assert().Equal(int64(1000), out.TotalSupply)
	s.Assert().Equal([]int{1000}, s.roller.sizes)
}

func (s *OrchestratorTestSuite) TestRandomTokenEmptySupply() {
	s.expectSupply(ipc.ContractV0, 0)

	_, err := s.service.RandomToken(s.ctx, &token.RandomTokenInput{Contract: ipc.ContractV0})
	s.Require().Error(err)
	s.Assert().True(errors.IsOutOfRange(err))
	s.Assert().Empty(s.roller.sizes)
}
