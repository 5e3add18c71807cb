// Package historyapi exposes the saved maze history of the signed-in user.
package historyapi

import (
	"github.com/maxfahl/Labyrinths/api/mazeapi"
	dmn "github.com/maxfahl/Labyrinths/domain"
	"github.com/maxfahl/Labyrinths/maze"
)

// SaveRequest saves the options of a maze under a name. Sending the ID of an
// existing entry replaces it.
type SaveRequest struct {
	ID      string              `json:"id" binding:"omitempty,uuid"`
	Name    string              `json:"name" binding:"required"`
	Preview string              `json:"preview"`
	Maze    mazeapi.MazeRequest `json:"maze"`
}

// SavedMazeResponse is one history entry. Timestamp is in milliseconds since
// the Unix epoch.
type SavedMazeResponse struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Kind      maze.Kind    `json:"kind"`
	Options   maze.Options `json:"options"`
	Preview   string       `json:"preview"`
	Timestamp int64        `json:"timestamp"`
}

// DetailResponse is a history entry with its regenerated maze.
type DetailResponse struct {
	SavedMazeResponse
	Generation *dmn.Generation `json:"generation"`
}

func toResponse(s *dmn.SavedMaze) SavedMazeResponse {
	return SavedMazeResponse{
		ID:        s.ID.String(),
		Name:      s.Name,
		Kind:      s.Kind,
		Options:   s.Options,
		Preview:   s.Preview,
		Timestamp: s.Timestamp.UnixMilli(),
	}
}
