package api

import (
	"net/http"

	reqdto "place-booking/internal/handler/dto/request"
	resdto "place-booking/internal/handler/dto/response"
	"place-booking/internal/handler/httperr"
	"place-booking/internal/usecase/commands"
	"place-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type TaxonomyHandler struct {
	cmds commands.TaxonomyCommands
	q    queries.TaxonomyQueries
}

func NewTaxonomyHandler(cmds commands.TaxonomyCommands, q queries.TaxonomyQueries) *TaxonomyHandler {
	return &TaxonomyHandler{cmds: cmds, q: q}
}

// @Summary Create location
// @Tags taxonomy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateLocationRequest true "Location"
// @Success 201 {object} resdto.LocationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /locations [post]
func (h *TaxonomyHandler) CreateLocation(c *gin.Context) {
	var req reqdto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	loc, err := h.cmds.CreateLocation(c.Request.Context(), req.Name, req.Address)
	if err != nil {
		httperr.AbortWithKind(c, err, "Create location failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromLocation(loc))
}

// @Summary List locations
// @Tags taxonomy
// @Produce json
// @Success 200 {array} resdto.LocationResponse
// @Router /locations [get]
func (h *TaxonomyHandler) ListLocations(c *gin.Context) {
	views, err := h.q.ListLocations(c.Request.Context())
	if err != nil {
		httperr.AbortWithKind(c, err, "Failed to list locations")
		return
	}
	c.JSON(http.StatusOK, resdto.FromLocationViews(views))
}

// @Summary Create resource type
// @Tags taxonomy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateResourceTypeRequest true "Resource type"
// @Success 201 {object} resdto.ResourceTypeResponse
// @Failure 409 {object} httperr.Response
// @Router /resource-types [post]
func (h *TaxonomyHandler) CreateResourceType(c *gin.Context) {
	var req reqdto.CreateResourceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	rt, err := h.cmds.CreateResourceType(c.Request.Context(), req.Name)
	if err != nil {
		httperr.AbortWithKind(c, err, "Create resource type failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromResourceType(rt))
}

// @Summary List resource types
// @Tags taxonomy
// @Produce json
// @Success 200 {array} resdto.ResourceTypeResponse
// @Router /resource-types [get]
func (h *TaxonomyHandler) ListResourceTypes(c *gin.Context) {
	views, err := h.q.ListResourceTypes(c.Request.Context())
	if err != nil {
		httperr.AbortWithKind(c, err, "Failed to list resource types")
		return
	}
	c.JSON(http.StatusOK, resdto.FromResourceTypeViews(views))
}

// @Summary List tags of a resource type
// @Tags taxonomy
// @Produce json
// @Param id path string true "Resource type ID"
// @Success 200 {array} resdto.TagResponse
// @Router /resource-types/{id}/tags [get]
func (h *TaxonomyHandler) ListTagsByType(c *gin.Context) {
	typeID, ok := pathID(c, "id")
	if !ok {
		return
	}
	views, err := h.q.ListTagsByType(c.Request.Context(), typeID)
	if err != nil {
		httperr.AbortWithKind(c, err, "Failed to list tags")
		return
	}
	c.JSON(http.StatusOK, resdto.FromTagViews(views))
}

// @Summary Create tag
// @Tags taxonomy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateTagRequest true "Tag"
// @Success 201 {object} resdto.TagResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /tags [post]
func (h *TaxonomyHandler) CreateTag(c *gin.Context) {
	var req reqdto.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	tag, err := h.cmds.CreateTag(c.Request.Context(), req.Name, req.ResourceTypeID)
	if err != nil {
		httperr.AbortWithKind(c, err, "Create tag failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromTag(tag))
}

// @Summary Create resource
// @Tags taxonomy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateResourceRequest true "Resource"
// @Success 201 {object} resdto.ResourceResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /resources [post]
func (h *TaxonomyHandler) CreateResource(c *gin.Context) {
	var req reqdto.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.CreateResource(c.Request.Context(), req.Name, req.LocationID, req.TypeID)
	if err != nil {
		httperr.AbortWithKind(c, err, "Create resource failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromResource(res))
}

// @Summary List resources
// @Description Exactly one of location_id, type_id, tag_id; ordered by id
// @Tags taxonomy
// @Produce json
// @Param location_id query string false "Location ID"
// @Param type_id query string false "Resource type ID"
// @Param tag_id query string false "Tag ID"
// @Success 200 {array} resdto.ResourceResponse
// @Failure 400 {object} httperr.Response
// @Router /resources [get]
func (h *TaxonomyHandler) ListResources(c *gin.Context) {
	var query reqdto.ResourceFilterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid filter", nil)
		return
	}
	locationID, typeID, tagID := query.IDs()
	views, err := h.q.ListResources(c.Request.Context(), queries.ResourceFilter{
		LocationID: locationID,
		TypeID:     typeID,
		TagID:      tagID,
	})
	if err != nil {
		httperr.AbortWithKind(c, err, "Failed to list resources")
		return
	}
	c.JSON(http.StatusOK, resdto.FromResourceViews(views))
}

// @Summary Get resource
// @Description Resource with location and type names and its tags
// @Tags taxonomy
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} resdto.ResourceDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /resources/{id} [get]
func (h *TaxonomyHandler) GetResource(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	detail, err := h.q.GetResource(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithKind(c, err, "Failed to load resource")
		return
	}
	c.JSON(http.StatusOK, resdto.FromResourceDetail(detail))
}

// @Summary Attach tag to resource
// @Description Idempotent; the tag must belong to the resource's type
// @Tags taxonomy
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param tagId path string true "Tag ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /resources/{id}/tags/{tagId} [put]
func (h *TaxonomyHandler) AttachTag(c *gin.Context) {
	resourceID, ok := pathID(c, "id")
	if !ok {
		return
	}
	tagID, ok := pathID(c, "tagId")
	if !ok {
		return
	}
	if err := h.cmds.AttachTag(c.Request.Context(), resourceID, tagID); err != nil {
		httperr.AbortWithKind(c, err, "Attach tag failed")
		return
	}
	c.Status(http.StatusNoContent)
}
