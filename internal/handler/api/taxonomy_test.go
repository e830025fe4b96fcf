//go:build unit

package api_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"place-booking/internal/domain/taxonomy"
	"place-booking/internal/handler/api"
	reqdto "place-booking/internal/handler/dto/request"
	resdto "place-booking/internal/handler/dto/response"
	"place-booking/internal/handler/middleware"
	"place-booking/internal/pkg/errs"
	"place-booking/internal/usecase/commands"
	"place-booking/internal/usecase/queries"
	"place-booking/tests/common/builder"
	"place-booking/tests/common/httptest"
	"place-booking/tests/common/testutil"
	commandsmock "place-booking/tests/mock/commands"
	queriesmock "place-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type TaxonomyHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockTaxonomyCommands
	mockQueries  *queriesmock.MockTaxonomyQueries
	handler      *api.TaxonomyHandler
}

func (s *TaxonomyHandlerTestSuite) SetupSuite() {
	s.Require().NoError(reqdto.RegisterValidators())
}

func (s *TaxonomyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockTaxonomyCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockTaxonomyQueries(s.mockCtrl)
	s.handler = api.NewTaxonomyHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/locations", s.handler.CreateLocation)
	s.router.GET("/locations", s.handler.ListLocations)
	s.router.POST("/resource-types", s.handler.CreateResourceType)
	s.router.GET("/resource-types/:id/tags", s.handler.ListTagsByType)
	s.router.POST("/tags", s.handler.CreateTag)
	s.router.POST("/resources", s.handler.CreateResource)
	s.router.GET("/resources", s.handler.ListResources)
	s.router.GET("/resources/:id", s.handler.GetResource)
	s.router.PUT("/resources/:id/tags/:tagId", s.handler.AttachTag)
}

func (s *TaxonomyHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestTaxonomyHandlerSuite(t *testing.T) {
	suite.Run(t, new(TaxonomyHandlerTestSuite))
}

func (s *TaxonomyHandlerTestSuite) TestCreateResource() {
	tb := builder.NewTaxonomyBuilder()
	reqBody := tb.BuildCreateResourceRequestDTO()

	s.Run("success", func() {
		s.mockCommands.EXPECT().CreateResource(gomock.Any(), tb.ResourceName, tb.LocationID, tb.TypeID).Return(tb.Resource(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/resources", reqBody, "")

		var body resdto.ResourceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(tb.ResourceID.String(), body.ID)
		s.Equal(tb.TypeID.String(), body.TypeID)
	})

	s.Run("validation", func() {
		cases := []testCaseBooking{
			{name: "blank name", mutate: testutil.Field("name", "   "), expectCode: http.StatusBadRequest},
			{name: "name too long", mutate: testutil.Field("name", strings.Repeat("a", 256)), expectCode: http.StatusBadRequest},
			{name: "missing location", mutate: testutil.Field("location_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing type", mutate: testutil.Field("type_id", nil), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/resources", testutil.DtoMap(s.T(), reqBody, tc.mutate), "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("unknown parent is 404", func() {
		s.mockCommands.EXPECT().CreateResource(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, commands.ErrParentNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/resources", reqBody, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, "not_found")
	})
}

func (s *TaxonomyHandlerTestSuite) TestCreateResourceType() {
	s.Run("duplicate name is 409", func() {
		s.mockCommands.EXPECT().CreateResourceType(gomock.Any(), "Meeting room").
			Return(nil, errs.WithSecondary(errs.ErrDuplicateName, errs.New("resource_types_name_key")))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/resource-types",
			reqdto.CreateResourceTypeRequest{Name: "Meeting room"}, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, "duplicate_name")
	})
}

func (s *TaxonomyHandlerTestSuite) TestCreateLocation() {
	s.mockCommands.EXPECT().CreateLocation(gomock.Any(), "HQ", "1 Main Street").
		Return(taxonomy.ReconstructLocation(uuid.New(), "HQ", "1 Main Street"), nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/locations",
		reqdto.CreateLocationRequest{Name: "HQ", Address: "1 Main Street"}, "")

	var body resdto.LocationResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
	s.Equal("HQ", body.Name)
}

func (s *TaxonomyHandlerTestSuite) TestListResources() {
	tb := builder.NewTaxonomyBuilder()

	s.Run("by tag", func() {
		s.mockQueries.EXPECT().ListResources(gomock.Any(), queries.ResourceFilter{TagID: &tb.TagID}).
			Return([]*queries.ResourceView{tb.ResourceView()}, nil)

		rec := httptest.PerformQuery(s.T(), s.router, "/resources", url.Values{"tag_id": {tb.TagID.String()}}, "")

		var body []resdto.ResourceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal(tb.LocationName, body[0].LocationName)
		s.Equal(tb.TypeName, body[0].TypeName)
	})

	s.Run("malformed id is 400", func() {
		rec := httptest.PerformQuery(s.T(), s.router, "/resources", url.Values{"type_id": {"abc"}}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("no filter is 400", func() {
		s.mockQueries.EXPECT().ListResources(gomock.Any(), queries.ResourceFilter{}).Return(nil, queries.ErrInvalidResourceFilter)

		rec := httptest.PerformQuery(s.T(), s.router, "/resources", nil, "")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "validation")
	})
}

func (s *TaxonomyHandlerTestSuite) TestGetResource() {
	tb := builder.NewTaxonomyBuilder()
	detail := &queries.ResourceDetailView{ResourceView: *tb.ResourceView(), Tags: []queries.TagView{*tb.TagView()}}
	s.mockQueries.EXPECT().GetResource(gomock.Any(), tb.ResourceID).Return(detail, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources/"+tb.ResourceID.String(), nil, "")

	var body resdto.ResourceDetailResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body.Tags, 1)
	s.Equal(tb.TagName, body.Tags[0].Name)
}

func (s *TaxonomyHandlerTestSuite) TestAttachTag() {
	tb := builder.NewTaxonomyBuilder()
	path := "/resources/" + tb.ResourceID.String() + "/tags/" + tb.TagID.String()

	s.Run("linked", func() {
		s.mockCommands.EXPECT().AttachTag(gomock.Any(), tb.ResourceID, tb.TagID).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, path, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("tag of another type is 400", func() {
		s.mockCommands.EXPECT().AttachTag(gomock.Any(), tb.ResourceID, tb.TagID).Return(taxonomy.ErrTagTypeMismatch)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, path, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "different resource type")
	})
}
