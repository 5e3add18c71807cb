package mazeapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/maxfahl/Labyrinths/maze"
	"github.com/maxfahl/Labyrinths/service"
	"github.com/maxfahl/Labyrinths/service/i"
)

// MazeController serves maze generation and the recent feed.
type MazeController struct {
	generator i.MazeGenerator
}

// NewMazeController creates a MazeController.
func NewMazeController(g i.MazeGenerator) (*MazeController, error) {
	if g == nil {
		return nil, errors.New("maze controller requires a generator")
	}
	return &MazeController{generator: g}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.generate)
		mazes.GET("/recent", mc.recent)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {}

// generate builds a maze. With ?format=text the ASCII rendering is returned
// instead of JSON.
func (mc *MazeController) generate(ctx *gin.Context) {
	var request MazeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	gen, err := mc.generator.Generate(ctx.Request.Context(), request.Kind(), request.Options())
	if err != nil {
		ctx.JSON(StatusFor(err), gin.H{"error": err.Error()})
		return
	}

	if ctx.Query("format") == "text" {
		ctx.String(http.StatusOK, gen.Maze.String())
		return
	}
	ctx.JSON(http.StatusOK, gen)
}

// recent lists the latest generation requests.
func (mc *MazeController) recent(ctx *gin.Context) {
	entries, err := mc.generator.Recent(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "recent mazes unavailable"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"mazes": entries})
}

// StatusFor maps generation errors to HTTP status codes.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, maze.ErrInvalidDimension),
		errors.Is(err, maze.ErrUnsupportedKind),
		errors.Is(err, service.ErrDimensionTooLarge):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
