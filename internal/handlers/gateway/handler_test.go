package gateway_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/ipc-metadata/internal/entities/ipc"
	"github.com/KirkDiggler/ipc-metadata/internal/errors"
	"github.com/KirkDiggler/ipc-metadata/internal/handlers/gateway"
	"github.com/KirkDiggler/ipc-metadata/internal/orchestrators/token"
	tokenmock "github.com/KirkDiggler/ipc-metadata/internal/orchestrators/token/mock"
	"github.com/KirkDiggler/ipc-metadata/internal/pkg/metrics"
)

type GatewayTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *tokenmock.MockService
	server      *httptest.Server
}

func TestGatewayTestSuite(t *testing.T) {
	suite.Run(t, new(GatewayTestSuite))
}

func (s *GatewayTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = tokenmock.NewMockService(s.ctrl)

	reg := prometheus.NewRegistry()
	_, err := metrics.New(reg)
	s.Require().NoError(err)

	handler, err := gateway.NewHandler(&gateway.HandlerConfig{
		MetadataService: s.mockService,
		Gatherer:        reg,
	})
	s.Require().NoError(err)

	s.server = httptest.NewServer(handler.Router())
}

func (s *GatewayTestSuite) TearDownTest() {
	s.server.Close()
	s.ctrl.Finish()
}

func (s *GatewayTestSuite) get(path string) (*http.Response, map[string]any) {
	resp, err := http.Get(s.server.URL + path)
	s.Require().NoError(err)
	defer resp.Body.Close()

	var body map[string]any
	if resp.Header.Get("Content-Type") == "application/json" {
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	}
	return resp, body
}

func (s *GatewayTestSuite) TestGetMetadata() {
	s.mockService.EXPECT().
		GetMetadata(gomock.Any(), &token.GetMetadataInput{TokenID: 420, Contract: "v0"}).
		Return(&token.GetMetadataOutput{
			Record: &ipc.LabeledRecord{
				Record: ipc.TokenRecord{
					ID:         420,
					Physical:   ipc.PhysicalTraits{1, 2, 2, 3, 1, 2, 3, 4},
					Attributes: ipc.RawAttributes{3, 3, 3},
				},
				Labels: ipc.Labels{Race: "Human"},
			},
			TotalSupply: 1000,
		}, nil)

	resp, body := s.get("/v1/tokens/420?contract=v0")
	s.Assert().Equal(http.StatusOK, resp.StatusCode)
	s.Assert().Equal(float64(420), body["token_id"])
	s.Assert().Equal(float64(9), body["strength"])
	s.Assert().Equal("Human", body["labels"].(map[string]any)["race"])
}

func (s *GatewayTestSuite) TestGetMetadataErrors() {
	testCases := []struct {
		name       string
		path       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "out of range",
			path:       "/v1/tokens/5000",
			err:        ipc.NewOutOfRangeError(5000, 1000),
			wantStatus: http.StatusBadRequest,
			wantCode:   "OUT_OF_RANGE",
		},
		{
			name:       "not indexed",
			path:       "/v1/tokens/7",
			err:        errors.NotFound("token 7 is not indexed"),
			wantStatus: http.StatusNotFound,
			wantCode:   "NOT_FOUND",
		},
		{
			name:       "undecodable seed",
			path:       "/v1/tokens/8",
			err:        ipc.NewDecodeError("dna", "zz", nil),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "DATA_LOSS",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.mockService.EXPECT().GetMetadata(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			resp, body := s.get(tc.path)
			s.Assert().Equal(tc.wantStatus, resp.StatusCode)
			s.Assert().Equal(tc.wantCode, body["code"])
		})
	}
}

func (s *GatewayTestSuite) TestGetMetadataBadID() {
	resp, body := s.get("/v1/tokens/abc")
	s.Assert().Equal(http.StatusBadRequest, resp.StatusCode)
	s.Assert().Equal("INVALID_ARGUMENT", body["code"])
}

func (s *GatewayTestSuite) TestRandomToken() {
	s.mockService.EXPECT().
		RandomToken(gomock.Any(), &token.RandomTokenInput{}).
		Return(&token.RandomTokenOutput{TokenID: 12, TotalSupply: 1000}, nil)

	resp, body := s.get("/v1/tokens/random")
	s.Assert().Equal(http.StatusOK, resp.StatusCode)
	s.Assert().Equal(float64(12), body["token_id"])
}

func (s *GatewayTestSuite) TestHealthAndMetrics() {
	resp, body := s.get("/healthz")
	s.Assert().Equal(http.StatusOK, resp.StatusCode)
	s.Assert().Equal("ok", body["status"])

	resp, _ = s.get("/metrics")
	s.Assert().Equal(http.StatusOK, resp.StatusCode)
}
