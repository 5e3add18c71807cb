package historyapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/maxfahl/Labyrinths/api/identity"
	"github.com/maxfahl/Labyrinths/api/mazeapi"
	dmn "github.com/maxfahl/Labyrinths/domain"
	"github.com/maxfahl/Labyrinths/service/i"
)

// HistoryController manages the saved mazes of the authenticated user.
type HistoryController struct {
	history i.HistoryKeeper
}

// NewHistoryController creates a HistoryController.
func NewHistoryController(h i.HistoryKeeper) (*HistoryController, error) {
	if h == nil {
		return nil, errors.New("history controller requires a history service")
	}
	return &HistoryController{history: h}, nil
}

// RegisterPublic registers public routes.
func (hc *HistoryController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (hc *HistoryController) RegisterProtected(route *gin.RouterGroup) {
	history := route.Group("/history")
	{
		history.POST("", hc.save)
		history.GET("", hc.list)
		history.DELETE("", hc.clear)
		history.GET("/:ID", hc.get)
		history.DELETE("/:ID", hc.delete)
	}
}

func (hc *HistoryController) save(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	var request SaveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var id uuid.UUID
	if request.ID != "" {
		id = uuid.MustParse(request.ID) // validated by binding
	}

	saved, err := hc.history.Save(ctx.Request.Context(), userID, dmn.SavedMazeConfig{
		ID:      id,
		Name:    request.Name,
		Kind:    request.Maze.Kind(),
		Options: request.Maze.Options(),
		Preview: request.Preview,
	})
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, toResponse(saved))
}

func (hc *HistoryController) list(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	items, err := hc.history.List(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "could not load history"})
		return
	}

	response := make([]SavedMazeResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toResponse(item))
	}
	ctx.JSON(http.StatusOK, gin.H{"mazes": response})
}

func (hc *HistoryController) get(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	saved, gen, err := hc.history.Get(ctx.Request.Context(), userID, id)
	if err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, DetailResponse{SavedMazeResponse: toResponse(saved), Generation: gen})
}

func (hc *HistoryController) delete(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := hc.history.Delete(ctx.Request.Context(), userID, id); err != nil {
		ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (hc *HistoryController) clear(ctx *gin.Context) {
	userID, ok := currentUser(ctx)
	if !ok {
		return
	}

	n, err := hc.history.Clear(ctx.Request.Context(), userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "could not clear history"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"deleted": n})
}

// currentUser writes a 401 and returns false when the request has no user.
func currentUser(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := identity.UserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return uuid.Nil, false
	}
	return id, true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, dmn.ErrSavedMazeNotFound):
		return http.StatusNotFound
	case errors.Is(err, dmn.ErrEmptyName),
		errors.Is(err, dmn.ErrNameTooLong),
		errors.Is(err, dmn.ErrPreviewTooLarge):
		return http.StatusBadRequest
	default:
		return mazeapi.StatusFor(err)
	}
}
