package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/platewise/v1/internal/domain/recipe"
	"github.com/platewise/v1/internal/infrastructure/http/middleware"
	"github.com/platewise/v1/internal/ports/inbound"
	apperrors "github.com/platewise/v1/pkg/errors"
	"go.uber.org/zap"
)

// RecipeHandlers handles recipe collection and matching requests
type RecipeHandlers struct {
	recipeService inbound.RecipeService
	logger        *zap.Logger
}

// NewRecipeHandlers creates a new recipe handlers instance
func NewRecipeHandlers(recipeService inbound.RecipeService, logger *zap.Logger) *RecipeHandlers {
	return &RecipeHandlers{
		recipeService: recipeService,
		logger:        logger.Named("recipe-handlers"),
	}
}

type saveRecipeRequest struct {
	Title        string                      `json:"title"`
	Ingredients  []inbound.IngredientCommand `json:"ingredients"`
	Instructions []string                    `json:"instructions"`
	Tags         []string                    `json:"tags"`
	Notes        string                      `json:"notes"`
	PrepTime     int                         `json:"prep_time"`
	CookTime     int                         `json:"cook_time"`
	Servings     int                         `json:"servings"`
	Difficulty   recipe.DifficultyLevel      `json:"difficulty"`
	Macros       *inbound.MacrosCommand      `json:"macros"`
}

type updateRecipeRequest struct {
	Title        *string                      `json:"title"`
	Ingredients  *[]inbound.IngredientCommand `json:"ingredients"`
	Instructions *[]string                    `json:"instructions"`
	Notes        *string                      `json:"notes"`
	PrepTime     *int                         `json:"prep_time"`
	CookTime     *int                         `json:"cook_time"`
	Servings     *int                         `json:"servings"`
	Difficulty   *recipe.DifficultyLevel      `json:"difficulty"`
	Macros       *inbound.MacrosCommand       `json:"macros"`
}

type importRecipeRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

type textRequest struct {
	Text string `json:"text"`
}

type tagRequest struct {
	Tag string `json:"tag"`
}

// parseFailedMessage is surfaced when text yields no ingredients, so
// callers can distinguish "could not parse" from a zero-ingredient recipe.
const parseFailedMessage = "could not identify any ingredients in the provided text"

type coverageTextResponse struct {
	*inbound.CoverageReport
	Message string `json:"message,omitempty"`
}

// Create handles POST /api/v1/recipes
func (h *RecipeHandlers) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, apperrors.NewUnauthorizedError("authentication required"))
		return
	}

	var req saveRecipeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	dto, err := h.recipeService.SaveRecipe(r.Context(), inbound.SaveRecipeCommand{
		OwnerID:      userID,
		Title:        req.Title,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Tags:         req.Tags,
		Notes:        req.Notes,
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		Servings:     req.Servings,
		Difficulty:   req.Difficulty,
		Macros:       req.Macros,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, dto)
}

// Import handles POST /api/v1/recipes/import
func (h *RecipeHandlers) Import(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, apperrors.NewUnauthorizedError("authentication required"))
		return
	}

	var req importRecipeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	dto, err := h.recipeService.ImportRecipeText(r.Context(), inbound.ImportRecipeTextCommand{
		OwnerID: userID,
		Title:   req.Title,
		Text:    req.Text,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, dto)
}

// Get handles GET /api/v1/recipes/{id}
func (h *RecipeHandlers) Get(w http.ResponseWriter, r *http.Request) {
	recipeID, err := parseID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	dto, err := h.recipeService.GetRecipeByID(r.Context(), recipeID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, dto)
}

// Update handles PUT /api/v1/recipes/{id}
func (h *RecipeHandlers) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, apperrors.NewUnauthorizedError("authentication required"))
		return
	}

	recipeID, err := parseID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	var req updateRecipeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	dto, err := h.recipeService.UpdateRecipe(r.Context(), inbound.UpdateRecipeCommand{
		RecipeID:     recipeID,
		UserID:       userID,
		Title:        req.Title,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Notes:        req.Notes,
		PrepTime:     req.PrepTime,
		CookTime:     req.CookTime,
		Servings:     req.Servings,
		Difficulty:   req.Difficulty,
		Macros:       req.Macros,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, dto)
}

// Delete handles DELETE /api/v1/recipes/{id}
func (h *RecipeHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, apperrors.NewUnauthorizedError("authentication required"))
		return
	}

	recipeID, err := parseID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.recipeService.DeleteRecipe(r.Context(), recipeID, userID); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Tag handles POST /api/v1/recipes/{id}/tags
func (h *RecipeHandlers) Tag(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, apperrors.NewUnauthorizedError("authentication required"))
		return
	}

	recipeID, err := parseID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	var req tagRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.recipeService.TagRecipe(r.Context(), recipeID, userID, req.Tag); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Untag handles DELETE /api/v1/recipes/{id}/tags/{tag}
func (h *RecipeHandlers) Untag(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, apperrors.NewUnauthorizedError("authentication required"))
		return
	}

	recipeID, err := parseID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	tag := chi.URLParam(r, "tag")

	if err := h.recipeService.UntagRecipe(r.Context(), recipeID, userID, tag); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Search handles POST /api/v1/recipes/search
func (h *RecipeHandlers) Search(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, apperrors.NewUnauthorizedError("authentication required"))
		return
	}

	var query inbound.SearchQuery
	if err := decodeJSON(r, &query); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	list, err := h.recipeService.SearchRecipes(r.Context(), userID, query)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, list)
}

// ListTags handles GET /api/v1/tags
func (h *RecipeHandlers) ListTags(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, apperrors.NewUnauthorizedError("authentication required"))
		return
	}

	tags, err := h.recipeService.ListTags(r.Context(), userID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, map[string][]string{"tags": tags})
}

// Coverage handles GET /api/v1/recipes/{id}/coverage
func (h *RecipeHandlers) Coverage(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, apperrors.NewUnauthorizedError("authentication required"))
		return
	}

	recipeID, err := parseID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	report, err := h.recipeService.CheckCoverage(r.Context(), recipeID, userID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, report)
}

// CoverageForText handles POST /api/v1/coverage/text
func (h *RecipeHandlers) CoverageForText(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, apperrors.NewUnauthorizedError("authentication required"))
		return
	}

	var req textRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	report, err := h.recipeService.CheckCoverageForText(r.Context(), userID, req.Text)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	resp := coverageTextResponse{CoverageReport: report}
	if report.TotalRequired == 0 {
		resp.Message = parseFailedMessage
	}

	writeJSON(w, h.logger, http.StatusOK, resp)
}

// Safety handles POST /api/v1/recipes/{id}/safety
func (h *RecipeHandlers) Safety(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, apperrors.NewUnauthorizedError("authentication required"))
		return
	}

	recipeID, err := parseID(r, "id")
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	var cmd inbound.SafetyCheckCommand
	if err := decodeJSON(r, &cmd); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	cmd.RecipeID = recipeID
	cmd.UserID = userID

	report, err := h.recipeService.CheckSafety(r.Context(), cmd)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, report)
}

// FilterSafe handles POST /api/v1/recipes/safe
func (h *RecipeHandlers) FilterSafe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, apperrors.NewUnauthorizedError("authentication required"))
		return
	}

	var cmd inbound.SafetyCheckCommand
	if err := decodeJSON(r, &cmd); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	cmd.UserID = userID

	list, err := h.recipeService.FilterSafeRecipes(r.Context(), userID, cmd)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, list)
}

// Parse handles POST /api/v1/parse
func (h *RecipeHandlers) Parse(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	ingredients, err := h.recipeService.ParseRecipeText(r.Context(), req.Text)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	body := map[string]interface{}{"ingredients": ingredients}
	if len(ingredients) == 0 {
		body["message"] = parseFailedMessage
	}

	writeJSON(w, h.logger, http.StatusOK, body)
}

// Detect handles POST /api/v1/detect
func (h *RecipeHandlers) Detect(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	result, err := h.recipeService.DetectRecipeContent(r.Context(), req.Text)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}

// parseID extracts and validates a UUID path parameter
func parseID(r *http.Request, param string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		return uuid.Nil, apperrors.NewValidationError(param + " must be a valid UUID")
	}
	return id, nil
}
