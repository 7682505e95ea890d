package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/ipc-metadata/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.RequiredField("TokenRepo").
		Fieldf("Contract", "unknown contract %q", "v9")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Equal(
		`validation failed: Contract: unknown contract "v9"; TokenRepo: is required`,
		errors.GetMessage(err),
	)
	s.Assert().NotNil(errors.GetMeta(err)["validation_errors"])
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	s.Assert().Nil(vb.Build())
}

func (s *ValidationTestSuite) TestValidateEnum() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"v0 allowed", "v0", false},
		{"v1 allowed", "v1", false},
		{"unknown", "v2", true},
		{"empty", "", true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateEnum("contract", tc.value, []string{"v0", "v1"}, vb)
			if tc.shouldErr {
				s.Assert().Error(vb.Build())
			} else {
				s.Assert().NoError(vb.Build())
			}
		})
	}
}
